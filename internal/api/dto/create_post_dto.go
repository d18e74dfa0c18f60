package dto

// CreatePostDTO POST /api/posts 请求体
type CreatePostDTO struct {
	Content   string  `json:"content"`
	MediaURL  *string `json:"media_url,omitempty"`
	MediaType *string `json:"media_type,omitempty"`
}

type CreatePostResp struct {
	Message string  `json:"message"`
	Post    PostDTO `json:"post"`
}
