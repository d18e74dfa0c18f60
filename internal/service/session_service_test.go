package service

import (
	"Agora/internal/pkg/consts"
	"Agora/internal/pkg/store"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_LoginWhoamiLogout(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewSessionService(st)

	_, err := svc.Whoami(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	sess, err := svc.Login(ctx, "Bearer "+token)
	require.NoError(t, err)
	require.NotNil(t, sess.Claims)
	assert.Equal(t, "42", sess.Claims.Subject)

	stored, ok, err := st.Get(ctx, consts.TokenKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, token, stored)

	require.NoError(t, svc.Logout(ctx))
	_, err = svc.Whoami(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestSession_OpaqueToken(t *testing.T) {
	ctx := context.Background()
	svc := NewSessionService(store.NewMemoryStore())

	sess, err := svc.Login(ctx, "opaque-token")
	require.NoError(t, err)
	assert.Nil(t, sess.Claims)

	_, err = svc.Login(ctx, "   ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
