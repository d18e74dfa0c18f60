package service

import (
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/security"
	"Agora/internal/pkg/store"
	"context"
	"strings"
)

// Session 当前凭据的概要，非 JWT 凭据时 Claims 为空
type Session struct {
	Token  string
	Claims *security.TokenClaims
}

type SessionService interface {
	Login(ctx context.Context, token string) (*Session, error)
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) (*Session, error)
}

type SessionServiceImpl struct {
	store store.Store
}

func NewSessionService(st store.Store) SessionService {
	return &SessionServiceImpl{store: st}
}

// Login 保存服务端签发的凭据，之后的每次请求都会读取它
func (s *SessionServiceImpl) Login(ctx context.Context, token string) (*Session, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return nil, &ValidationError{Field: "token", Err: ErrEmptyToken}
	}
	if err := s.store.Put(ctx, consts.TokenKey, token); err != nil {
		return nil, err
	}
	return inspect(token), nil
}

func (s *SessionServiceImpl) Logout(ctx context.Context) error {
	return s.store.Remove(ctx, consts.TokenKey)
}

func (s *SessionServiceImpl) Whoami(ctx context.Context) (*Session, error) {
	token, ok, err := s.store.Get(ctx, consts.TokenKey)
	if err != nil {
		return nil, err
	}
	if !ok || token == "" {
		return nil, ErrNotLoggedIn
	}
	return inspect(token), nil
}

func inspect(token string) *Session {
	sess := &Session{Token: token}
	if claims, err := security.InspectToken(token); err == nil {
		sess.Claims = claims
	}
	return sess
}
