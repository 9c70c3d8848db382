package upstream

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeadlineFallsBackToTimeout(t *testing.T) {
	before := time.Now()
	got := Deadline(context.Background(), time.Second)

	assert.True(t, got.After(before))
	assert.WithinDuration(t, before.Add(time.Second), got, 100*time.Millisecond)
}

func TestDeadlinePrefersContext(t *testing.T) {
	want := time.Now().Add(time.Minute)
	ctx, cancel := context.WithDeadline(context.Background(), want)
	defer cancel()

	assert.Equal(t, want, Deadline(ctx, time.Second))
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(204))
	assert.False(t, IsSuccess(302))
	assert.False(t, IsSuccess(500))
}
