package tour

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoardContains(t *testing.T) {
	b := NewBoard(4)
	assert.True(t, b.Contains(Point{0, 0}))
	assert.True(t, b.Contains(Point{3, 3}))
	assert.False(t, b.Contains(Point{-1, 0}))
	assert.False(t, b.Contains(Point{0, 4}))
	assert.False(t, b.Contains(Point{4, 0}))
}

func TestBoardString(t *testing.T) {
	b := NewBoard(2)
	b.mark(Point{0, 0}, 1)
	b.mark(Point{1, 1}, 4)
	assert.Equal(t, "  1  0\n  0  4\n", b.String())
}
