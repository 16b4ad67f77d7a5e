package memcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/floodrisk/forms-data/go/internal/core/ports"
	"github.com/floodrisk/forms-data/go/internal/infrastructure/memcache"
)

func TestProvision_OncePerSegment(t *testing.T) {
	e := memcache.NewEngine()
	defer e.Close()
	ctx := context.Background()

	_, err := e.Provision(ctx, "areas")
	require.NoError(t, err)
	_, err = e.Provision(ctx, "areas")
	assert.ErrorIs(t, err, ports.ErrSegmentProvisioned)

	_, err = e.Provision(ctx, "accounts")
	assert.NoError(t, err)
	_, err = e.Provision(ctx, "")
	assert.Error(t, err)
}

func TestSegment_SetGetDelete(t *testing.T) {
	e := memcache.NewEngine()
	defer e.Close()
	ctx := context.Background()
	seg, err := e.Provision(ctx, "areas")
	require.NoError(t, err)

	_, ok, err := seg.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, seg.Set(ctx, "k", []byte("v"), time.Minute))
	got, ok, err := seg.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, seg.Delete(ctx, "k"))
	_, ok, _ = seg.Get(ctx, "k")
	assert.False(t, ok)
}

func TestSegment_EntriesExpire(t *testing.T) {
	e := memcache.NewEngine()
	defer e.Close()
	ctx := context.Background()
	seg, err := e.Provision(ctx, "areas")
	require.NoError(t, err)

	require.NoError(t, seg.Set(ctx, "k", []byte("v"), 20*time.Millisecond))
	time.Sleep(40 * time.Millisecond)
	_, ok, err := seg.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSegments_AreIsolated(t *testing.T) {
	e := memcache.NewEngine()
	defer e.Close()
	ctx := context.Background()
	a, _ := e.Provision(ctx, "a")
	b, _ := e.Provision(ctx, "b")

	require.NoError(t, a.Set(ctx, "k", []byte("1"), time.Minute))
	_, ok, _ := b.Get(ctx, "k")
	assert.False(t, ok)
}

func TestProvision_AfterCloseFails(t *testing.T) {
	e := memcache.NewEngine()
	require.NoError(t, e.Close())
	_, err := e.Provision(context.Background(), "areas")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrSegmentProvisioned)
}
