package handler

import (
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/response"
	"Agora/internal/service"
	"context"
	"io"
	"strings"
)

type PostHandler struct {
	composer *service.Composer
}

func NewPostHandler(composer *service.Composer) *PostHandler {
	return &PostHandler{
		composer: composer,
	}
}

// CreatePost agora post [--media FILE]... [--preview] CONTENT
func (s *PostHandler) CreatePost(ctx context.Context, args []string, w io.Writer) error {
	fs := newFlagSet("post", w)
	mediaPaths := fs.StringArrayP("media", "m", nil, "attach a media file, repeatable")
	preview := fs.Bool("preview", false, "render the post without publishing it")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	files, err := openMediaFiles(*mediaPaths)
	if err != nil {
		return err
	}
	if err = s.composer.SetContent(strings.Join(fs.Args(), " ")); err != nil {
		return err
	}
	rejected, err := s.composer.AddFiles(ctx, files)
	if err != nil {
		return err
	}
	for _, r := range rejected {
		response.Success(w, "skipped: %s", r)
	}

	if *preview {
		draft := s.composer.Draft()
		response.Success(w, "%s", s.composer.Preview())
		response.Success(w, "%d/%d characters, %d attachment(s)", s.composer.CharCount(), consts.MaxContentLength, len(draft.Media))
		if s.composer.IsOverLimit() {
			response.Success(w, "over the character limit")
		}
		return s.composer.Clear(ctx)
	}

	post, err := s.composer.Submit(ctx)
	if err != nil {
		_ = s.composer.Clear(ctx)
		return err
	}
	response.Success(w, "%s (id %d)", s.composer.Notice(), post.ID)
	return nil
}
