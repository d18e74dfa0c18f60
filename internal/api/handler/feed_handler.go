package handler

import (
	"Agora/internal/job"
	"Agora/internal/model"
	"Agora/internal/pkg/cron"
	"Agora/internal/pkg/response"
	"Agora/internal/pkg/util"
	"Agora/internal/service"
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

type FeedHandler struct {
	feed       *service.Feed
	resolveURL func(string) string
	schedule   string
}

func NewFeedHandler(feed *service.Feed, resolveURL func(string) string, schedule string) *FeedHandler {
	return &FeedHandler{
		feed:       feed,
		resolveURL: resolveURL,
		schedule:   schedule,
	}
}

type feedView struct {
	Posts      []model.Post     `json:"posts"`
	Pagination model.Pagination `json:"pagination"`
	TotalPages int              `json:"total_pages"`
}

// List agora feed [--page N] [--json]
func (s *FeedHandler) List(ctx context.Context, args []string, w io.Writer) error {
	fs := newFlagSet("feed", w)
	page := fs.IntP("page", "p", 1, "page to load")
	asJSON := fs.Bool("json", false, "print raw JSON")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if err := s.feed.Load(ctx, *page); err != nil {
		return err
	}
	if *asJSON {
		return response.JSON(w, feedView{
			Posts:      s.feed.Posts(),
			Pagination: s.feed.Pagination(),
			TotalPages: s.feed.TotalPages(),
		})
	}
	s.render(w)
	return nil
}

// Watch agora feed watch [--page N]，按配置的周期刷新直到收到退出信号
func (s *FeedHandler) Watch(ctx context.Context, args []string, w io.Writer) error {
	fs := newFlagSet("feed watch", w)
	page := fs.IntP("page", "p", 1, "page to watch")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if err := s.feed.Load(ctx, *page); err != nil {
		return err
	}
	s.render(w)

	mgr := cron.NewCronManager(s.schedule, job.NewFeedRefreshJob(s.feed, func(_ context.Context, _ *service.Feed) {
		s.render(w)
	}))
	if err := cron.InitCron(mgr); err != nil {
		return fmt.Errorf("%w: %v", service.ErrInvalidArgs, err)
	}
	<-ctx.Done()
	mgr.Stop()
	return nil
}

// Like agora like POST_ID
func (s *FeedHandler) Like(ctx context.Context, args []string, w io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: agora like POST_ID", service.ErrInvalidArgs)
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	state, err := s.feed.ToggleLike(ctx, id)
	if err != nil {
		return err
	}
	verb := "unliked"
	if state.IsLiked {
		verb = "liked"
	}
	response.Success(w, "%s post %d, %d like(s)", verb, id, state.LikesCount)
	return nil
}

func (s *FeedHandler) render(w io.Writer) {
	now := time.Now()
	posts := s.feed.Posts()
	if len(posts) == 0 {
		response.Success(w, "No posts yet.")
	}
	for _, p := range posts {
		response.Success(w, "#%d @%s · %s", p.ID, p.Author.Username, util.RelativeTime(p.CreatedAt, now))
		response.Success(w, "%s", p.Content)
		if u := util.Deref(p.MediaURL); u != "" {
			response.Success(w, "[%s] %s", util.Deref(p.MediaType), s.resolveURL(u))
		}
		liked := ""
		if p.IsLiked {
			liked = " (liked)"
		}
		response.Success(w, "%d like(s)%s", p.LikesCount, liked)
		response.Success(w, "%s", strings.Repeat("-", 40))
	}

	pg := s.feed.Pagination()
	response.Success(w, "Page %d of %d", pg.Page, s.feed.TotalPages())
}
