package model

// Profile 本地缓存的个人资料快照，JSON 字段与缓存格式保持一致
type Profile struct {
	AvatarURL   string       `json:"avatarUrl"`
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Location    string       `json:"location"`
	SocialLinks []SocialLink `json:"socialLinks"`
	Bio         string       `json:"bio"`
	Skills      []string     `json:"skills"`
	Experience  []Experience `json:"experience"`
	Education   []Education  `json:"education"`
	Contact     *Contact     `json:"contact,omitempty"`
}

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
}

type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// DefaultProfile 本地无缓存时展示的资料
func DefaultProfile() *Profile {
	return &Profile{
		AvatarURL: "https://randomuser.me/api/portraits/men/32.jpg",
		Name:      "John Doe",
		Title:     "Software Engineer",
		Location:  "San Francisco, CA",
		SocialLinks: []SocialLink{
			{Platform: "LinkedIn", URL: "https://linkedin.com/in/johndoe"},
			{Platform: "GitHub", URL: "https://github.com/johndoe"},
		},
		Bio:    "Passionate developer with 5+ years of experience in web and mobile applications.",
		Skills: []string{"React", "TypeScript", "Node.js", "Python"},
		Experience: []Experience{
			{Company: "TechCorp", Role: "Frontend Developer", Duration: "2019-2022", Description: "Worked on scalable web apps."},
			{Company: "Webify", Role: "Intern", Duration: "2018-2019"},
		},
		Education: []Education{
			{Institution: "Stanford University", Degree: "BSc Computer Science", Year: "2018"},
		},
		Contact: &Contact{Email: "john.doe@email.com", Phone: "123-456-7890"},
	}
}

// SocialURL 按平台名查找链接
func (p *Profile) SocialURL(platform string) string {
	for _, l := range p.SocialLinks {
		if l.Platform == platform {
			return l.URL
		}
	}
	return ""
}

// ProfilePatch 资料补丁，nil 字段保持不变，非 nil 字段整体覆盖（包括空值）
type ProfilePatch struct {
	AvatarURL   *string
	Name        *string
	Title       *string
	Location    *string
	SocialLinks *[]SocialLink
	Bio         *string
	Skills      *[]string
	Experience  *[]Experience
	Education   *[]Education
	Contact     *Contact
}

// Apply 把补丁写到 p 上
func (patch *ProfilePatch) Apply(p *Profile) {
	setIf(&p.AvatarURL, patch.AvatarURL)
	setIf(&p.Name, patch.Name)
	setIf(&p.Title, patch.Title)
	setIf(&p.Location, patch.Location)
	setIf(&p.SocialLinks, patch.SocialLinks)
	setIf(&p.Bio, patch.Bio)
	setIf(&p.Skills, patch.Skills)
	setIf(&p.Experience, patch.Experience)
	setIf(&p.Education, patch.Education)
	if patch.Contact != nil {
		c := *patch.Contact
		p.Contact = &c
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
