package handler

import (
	"Agora/internal/pkg/response"
	"Agora/internal/service"
	"context"
	"io"
	"time"
)

type UserHandler struct {
	sessionSvc service.SessionService
}

func NewUserHandler(sessionSvc service.SessionService) *UserHandler {
	return &UserHandler{
		sessionSvc: sessionSvc,
	}
}

// Login agora login --token T
func (s *UserHandler) Login(ctx context.Context, args []string, w io.Writer) error {
	fs := newFlagSet("login", w)
	token := fs.StringP("token", "t", "", "bearer token issued by the server")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *token == "" && fs.NArg() == 1 {
		*token = fs.Arg(0)
	}

	sess, err := s.sessionSvc.Login(ctx, *token)
	if err != nil {
		return err
	}
	response.Success(w, "Logged in.")
	s.describe(w, sess)
	return nil
}

func (s *UserHandler) Logout(ctx context.Context, _ []string, w io.Writer) error {
	if err := s.sessionSvc.Logout(ctx); err != nil {
		return err
	}
	response.Success(w, "Logged out.")
	return nil
}

func (s *UserHandler) Whoami(ctx context.Context, _ []string, w io.Writer) error {
	sess, err := s.sessionSvc.Whoami(ctx)
	if err != nil {
		return err
	}
	s.describe(w, sess)
	return nil
}

func (s *UserHandler) describe(w io.Writer, sess *service.Session) {
	if sess.Claims == nil {
		response.Success(w, "token: opaque (%d chars)", len(sess.Token))
		return
	}
	c := sess.Claims
	if c.Subject != "" {
		response.Success(w, "subject: %s", c.Subject)
	}
	if c.Type != "" {
		response.Success(w, "type: %s", c.Type)
	}
	if c.ExpiresAt != nil {
		state := "valid"
		if c.Expired(time.Now()) {
			state = "expired"
		}
		response.Success(w, "expires: %s (%s)", c.ExpiresAt.Time.Format(time.RFC3339), state)
	}
}
