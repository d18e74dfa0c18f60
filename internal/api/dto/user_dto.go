package dto

// ProfileResp GET /api/profile 与 /api/profile/:user_id
type ProfileResp struct {
	Profile ProfileDTO `json:"profile"`
}

type ProfileDTO struct {
	ID          uint64          `json:"id"`
	UserID      uint64          `json:"user_id"`
	Bio         *string         `json:"bio"`
	User        *ProfileUserDTO `json:"user,omitempty"`
	Skills      []SkillDTO      `json:"skills"`
	Experiences []ExperienceDTO `json:"experiences"`
	Educations  []EducationDTO  `json:"educations"`
}

type ProfileUserDTO struct {
	ID        uint64  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}

type SkillDTO struct {
	ID   *uint64 `json:"id,omitempty"`
	Name string  `json:"name"`
}

type ExperienceDTO struct {
	ID      *uint64 `json:"id,omitempty"`
	Company string  `json:"company"`
	Role    string  `json:"role"`
	Years   *int    `json:"years,omitempty"`
}

type EducationDTO struct {
	ID          *uint64 `json:"id,omitempty"`
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	Year        *int    `json:"year,omitempty"`
}

// ProfileUpdateDTO PUT /api/profile，只发送非空字段
type ProfileUpdateDTO struct {
	Bio         *string         `json:"bio,omitempty"`
	Skills      []SkillDTO      `json:"skills,omitempty"`
	Experiences []ExperienceDTO `json:"experiences,omitempty"`
	Educations  []EducationDTO  `json:"educations,omitempty"`
}
