package store

import (
	"Agora/internal/api/config"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, st Store) {
	ctx := context.Background()

	_, ok, err := st.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, st.Put(ctx, "token", "abc"))
	v, ok, err := st.Get(ctx, "token")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, st.Put(ctx, "token", "def"))
	v, _, _ = st.Get(ctx, "token")
	assert.Equal(t, "def", v)

	require.NoError(t, st.Remove(ctx, "token"))
	require.NoError(t, st.Remove(ctx, "token"))
	_, ok, err = st.Get(ctx, "token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	st, err := NewFileStore(filepath.Join(t.TempDir(), "nested", "store.json"))
	require.NoError(t, err)
	exerciseStore(t, st)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	ctx := context.Background()

	first, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(ctx, "userProfile", `{"name":"Ada"}`))

	second, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok, err := second.Get(ctx, "userProfile")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"name":"Ada"}`, v)
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	st, err := NewFileStore(path)
	require.NoError(t, err)
	_, _, err = st.Get(context.Background(), "token")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	st, err := New(config.StoreConfig{Driver: "memory"})
	require.NoError(t, err)
	assert.NotNil(t, st)

	st, err = New(config.StoreConfig{Path: filepath.Join(t.TempDir(), "s.json")})
	require.NoError(t, err)
	assert.NotNil(t, st)

	_, err = New(config.StoreConfig{Driver: "etcd"})
	assert.Error(t, err)

	_, err = NewFileStore("")
	assert.Error(t, err)
}
