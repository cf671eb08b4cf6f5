package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalToggleCompletion(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 45, 0, 0, time.UTC)

	g := Goal{Title: "Finish course"}
	require.False(t, g.Completed)
	require.Nil(t, g.CompletedDate)

	g.ToggleCompletion(now)
	assert.True(t, g.Completed)
	require.NotNil(t, g.CompletedDate)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), *g.CompletedDate)

	// 再翻转一次回到初始状态
	g.ToggleCompletion(now)
	assert.False(t, g.Completed)
	assert.Nil(t, g.CompletedDate)
}

func TestResourceToggleCompletion(t *testing.T) {
	r := LearningResource{Title: "Tour of Go"}

	r.ToggleCompletion()
	assert.True(t, r.IsCompleted)

	r.ToggleCompletion()
	assert.False(t, r.IsCompleted)
}

func TestDateOnly(t *testing.T) {
	ts := time.Date(2024, 6, 10, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), DateOnly(ts))

	// 已经是零点的时间保持不变
	midnight := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, midnight, DateOnly(midnight))
}
