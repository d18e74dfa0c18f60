package model

import (
	"time"
)

// Post 服务端帖子在客户端的只读副本，仅点赞状态会被本地覆盖
type Post struct {
	ID         uint64    `json:"id"`
	Content    string    `json:"content"`
	MediaURL   *string   `json:"media_url,omitempty"`
	MediaType  *string   `json:"media_type,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	Author     Author    `json:"author"`
	LikesCount int       `json:"likes_count"`
	IsLiked    bool      `json:"is_liked"`
}

type Author struct {
	ID        uint64  `json:"id"`
	Username  string  `json:"username"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Pagination 完全来自最近一次成功的列表响应
type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

type PostPage struct {
	Posts      []*Post
	Pagination Pagination
}

// LikeState 点赞切换后的服务端状态
type LikeState struct {
	LikesCount int
	IsLiked    bool
}
