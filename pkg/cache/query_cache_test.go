package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "posts", Key("posts"))
	assert.Equal(t, "posts:draft::go", Key("posts", "draft", "", "go"))
	assert.Equal(t, "query:public-posts:recent", storageKey(Key("public-posts", "recent")))
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "posts:all", []string{"a"}))

	var out []string
	hit, err := c.Get(ctx, "posts:all", &out)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Empty(t, out)

	assert.NoError(t, c.Invalidate(ctx, "posts", "public-posts"))
}
