package session

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	expires := time.Now().Add(time.Hour).Truncate(time.Second)

	err = store.Save(ctx, []*http.Cookie{
		{Name: "session", Value: "abc123", Domain: "alpha.taustation.space", Path: "/", Expires: expires},
		{Name: "remember", Value: "1"},
	})
	require.NoError(t, err)

	cookies, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cookies, 2)

	byName := map[string]*http.Cookie{}
	for _, c := range cookies {
		byName[c.Name] = c
	}
	require.Equal(t, "abc123", byName["session"].Value)
	require.Equal(t, expires.Unix(), byName["session"].Expires.Unix())
	require.Equal(t, "1", byName["remember"].Value)
}

func TestSaveReplacesPreviousSession(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Save(ctx, []*http.Cookie{{Name: "session", Value: "old"}}))
	require.NoError(t, store.Save(ctx, []*http.Cookie{{Name: "session", Value: "new"}}))

	cookies, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cookies, 1)
	require.Equal(t, "new", cookies[0].Value)
}

func TestLoadDropsExpiredCookies(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	err = store.Save(ctx, []*http.Cookie{
		{Name: "stale", Value: "x", Expires: time.Now().Add(-time.Hour)},
		{Name: "fresh", Value: "y", Expires: time.Now().Add(time.Hour)},
	})
	require.NoError(t, err)

	cookies, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, cookies, 1)
	require.Equal(t, "fresh", cookies[0].Name)
}
