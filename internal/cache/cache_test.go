package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoop_AlwaysMisses(t *testing.T) {
	var c Cache = Noop{}
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "k", map[string]int{"a": 1}))

	var out map[string]int
	assert.ErrorIs(t, c.GetJSON(ctx, "k", &out), ErrMiss)
	assert.Nil(t, out)
	assert.NoError(t, c.DeletePrefix(ctx, "k"))
}

func TestNewRedis_BadURL(t *testing.T) {
	_, err := NewRedis(context.Background(), "not-a-redis-url", time.Minute)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse redis url")
}
