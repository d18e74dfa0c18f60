package dto

// LikeResp POST /api/posts/:id/like
type LikeResp struct {
	Message    string `json:"message"`
	LikesCount int    `json:"likes_count"`
	IsLiked    bool   `json:"is_liked"`
}

// ErrorResp 非 2xx 响应体
type ErrorResp struct {
	Error string `json:"error"`
}

type MessageResp struct {
	Message string `json:"message"`
}
