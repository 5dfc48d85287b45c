package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActor(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ActorFrom(ctx))

	ctx = WithActor(ctx, "u1")
	assert.Equal(t, "u1", ActorFrom(ctx))
	assert.Equal(t, "u2", ActorFrom(WithActor(ctx, "u2")))
}
