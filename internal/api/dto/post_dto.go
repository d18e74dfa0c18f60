package dto

// PostDTO 帖子接口返回结构
type PostDTO struct {
	ID         uint64      `json:"id"`
	Content    string      `json:"content"`
	MediaURL   *string     `json:"media_url"`
	MediaType  *string     `json:"media_type"`
	CreatedAt  string      `json:"created_at"`
	User       PostUserDTO `json:"user"`
	LikesCount int         `json:"likes_count"`
	IsLiked    bool        `json:"is_liked"`
}

type PostUserDTO struct {
	ID        uint64  `json:"id"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar_url"`
}

type PaginationDTO struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// PostListResp GET /api/posts
type PostListResp struct {
	Posts      []PostDTO     `json:"posts"`
	Pagination PaginationDTO `json:"pagination"`
}
