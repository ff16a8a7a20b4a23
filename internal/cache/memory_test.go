package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock advances only when told to
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMemory_HitBeforeTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	m := NewMemory(time.Minute, clock.now)
	ctx := context.Background()

	assert.NoError(t, m.Set(ctx, "blog:1", []byte("payload")))

	clock.advance(59 * time.Second)
	value, ok, err := m.Get(ctx, "blog:1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("payload"), value)
}

func TestMemory_ExpiresAtTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	m := NewMemory(time.Minute, clock.now)
	ctx := context.Background()

	m.Set(ctx, "blog:1", []byte("payload"))

	clock.advance(time.Minute)
	_, ok, err := m.Get(ctx, "blog:1")
	assert.NoError(t, err)
	assert.False(t, ok)

	// The expired entry was dropped on read, not just hidden
	m.mu.Lock()
	_, stillThere := m.entries["blog:1"]
	m.mu.Unlock()
	assert.False(t, stillThere)
}

func TestMemory_SetResetsTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	m := NewMemory(time.Minute, clock.now)
	ctx := context.Background()

	m.Set(ctx, "blog:1", []byte("old"))
	clock.advance(45 * time.Second)
	m.Set(ctx, "blog:1", []byte("new"))
	clock.advance(45 * time.Second)

	value, ok, _ := m.Get(ctx, "blog:1")
	assert.True(t, ok)
	assert.Equal(t, []byte("new"), value)
}

func TestMemory_Delete(t *testing.T) {
	m := NewMemory(time.Minute, nil)
	ctx := context.Background()

	m.Set(ctx, "blog:1", []byte("payload"))
	assert.NoError(t, m.Delete(ctx, "blog:1"))

	_, ok, _ := m.Get(ctx, "blog:1")
	assert.False(t, ok)
}

func TestMemory_MissOnAbsentKey(t *testing.T) {
	m := NewMemory(time.Minute, nil)

	_, ok, err := m.Get(context.Background(), "blog:404")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDisabled_AlwaysMisses(t *testing.T) {
	var c Cache = Disabled{}
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v")))
	_, ok, err := c.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)
}
