package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryDenylist(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	denylist := NewMemoryDenylist()
	denylist.now = func() time.Time { return now }

	revoked, err := denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, denylist.Revoke(ctx, "jti-1", now.Add(time.Minute)))
	revoked, err = denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.True(t, revoked)

	// past the token expiry the entry is forgotten
	denylist.now = func() time.Time { return now.Add(2 * time.Minute) }
	revoked, err = denylist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	require.False(t, revoked)
	require.Empty(t, denylist.entries)
}

func TestMemoryDenylistRevokePrunesExpired(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	denylist := NewMemoryDenylist()
	denylist.now = func() time.Time { return now }

	require.NoError(t, denylist.Revoke(ctx, "jti-old", now.Add(time.Minute)))
	require.NoError(t, denylist.Revoke(ctx, "jti-live", now.Add(time.Hour)))

	denylist.now = func() time.Time { return now.Add(10 * time.Minute) }
	require.NoError(t, denylist.Revoke(ctx, "jti-new", now.Add(time.Hour)))

	require.Len(t, denylist.entries, 2)
	require.NotContains(t, denylist.entries, "jti-old")
	revoked, err := denylist.IsRevoked(ctx, "jti-live")
	require.NoError(t, err)
	require.True(t, revoked)
}
