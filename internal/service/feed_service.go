package service

import (
	"Agora/internal/model"
	"Agora/internal/pkg/consts"
	"context"
	log "log/slog"
	"sync"
)

// PostLister 帖子列表与点赞的远端调用
type PostLister interface {
	ListPosts(ctx context.Context, page, perPage int) (*model.PostPage, error)
	ToggleLike(ctx context.Context, postID uint64) (*model.LikeState, error)
}

// Feed 分页帖子视图，展示内容完全来自最近一次成功的加载
type Feed struct {
	mu         sync.RWMutex
	api        PostLister
	perPage    int
	posts      []*model.Post
	pagination model.Pagination
	loading    bool
	err        error
}

func NewFeed(api PostLister, perPage int) *Feed {
	if perPage <= 0 {
		perPage = consts.DefaultPerPage
	}
	return &Feed{
		api:     api,
		perPage: perPage,
	}
}

// Load 用指定页整体替换展示内容
// 已有内容时失败只记录日志并保留旧数据，否则视图进入错误状态
func (s *Feed) Load(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	res, err := s.api.ListPosts(ctx, page, s.perPage)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		if len(s.posts) == 0 {
			s.err = err
			log.ErrorContext(ctx, "failed to load posts", "page", page, "err", err)
			return err
		}
		log.WarnContext(ctx, "failed to load posts, keeping current page", "page", page, "err", err)
		return nil
	}

	s.posts = res.Posts
	s.pagination = res.Pagination
	s.err = nil
	return nil
}

func (s *Feed) Next(ctx context.Context) error {
	s.mu.RLock()
	p := s.pagination
	s.mu.RUnlock()
	if !p.HasNext {
		return nil
	}
	return s.Load(ctx, p.Page+1)
}

func (s *Feed) Prev(ctx context.Context) error {
	s.mu.RLock()
	p := s.pagination
	s.mu.RUnlock()
	if !p.HasPrev {
		return nil
	}
	return s.Load(ctx, p.Page-1)
}

// Retry 错误视图的重试入口，从第一页重新加载
func (s *Feed) Retry(ctx context.Context) error {
	return s.Load(ctx, 1)
}

// Reload 重新加载当前页
func (s *Feed) Reload(ctx context.Context) error {
	s.mu.RLock()
	page := s.pagination.Page
	s.mu.RUnlock()
	return s.Load(ctx, page)
}

// ToggleLike 先请求服务端，成功后只更新对应 id 的帖子
func (s *Feed) ToggleLike(ctx context.Context, postID uint64) (*model.LikeState, error) {
	state, err := s.api.ToggleLike(ctx, postID)
	if err != nil {
		log.ErrorContext(ctx, "failed to like post", "post_id", postID, "err", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.ID == postID {
			p.LikesCount = state.LikesCount
			p.IsLiked = state.IsLiked
		}
	}
	return state, nil
}

// Posts 返回帖子副本
func (s *Feed) Posts() []model.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Post, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, *p)
	}
	return out
}

func (s *Feed) Pagination() model.Pagination {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pagination
}

func (s *Feed) PerPage() int {
	return s.perPage
}

// TotalPages ceil(total / perPage)
func (s *Feed) TotalPages() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int((s.pagination.Total + int64(s.perPage) - 1) / int64(s.perPage))
}

func (s *Feed) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err 视图级错误，仅在没有任何可展示内容时设置
func (s *Feed) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}
