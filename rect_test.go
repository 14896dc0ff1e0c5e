package texatlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeArea(t *testing.T) {
	t.Parallel()

	s := Size{W: 10, H: 20}
	assert.Equal(t, int64(200), s.Area())
	assert.Equal(t, 20, s.MaxSide())
	assert.Equal(t, 10, s.MinSide())
	assert.False(t, s.Degenerate())
	assert.True(t, (Size{W: 0, H: 5}).Degenerate())
}

func TestThicknessSums(t *testing.T) {
	t.Parallel()

	th := Thickness{Left: 1, Top: 2, Right: 3, Bottom: 4}
	assert.Equal(t, 4, th.SumX())
	assert.Equal(t, 6, th.SumY())
}

func TestRectGeometry(t *testing.T) {
	t.Parallel()

	r := NewRect(10, 20, 30, 40)
	assert.Equal(t, 40, r.Right())
	assert.Equal(t, 60, r.Bottom())
	assert.Equal(t, int64(1200), r.Area())
	assert.True(t, r.Contains(10, 20))
	assert.True(t, r.Contains(39, 59))
	assert.False(t, r.Contains(40, 20))
	assert.False(t, r.Contains(10, 60))
}

func TestRectContainsRect(t *testing.T) {
	t.Parallel()

	outer := NewRect(0, 0, 100, 100)
	assert.True(t, outer.ContainsRect(NewRect(10, 10, 10, 10)))
	assert.True(t, outer.ContainsRect(outer))
	assert.False(t, outer.ContainsRect(NewRect(90, 90, 20, 20)))
	assert.False(t, outer.ContainsRect(NewRect(-1, 0, 10, 10)))
}

func TestRectIntersects(t *testing.T) {
	t.Parallel()

	a := NewRect(0, 0, 10, 10)
	assert.True(t, a.Intersects(NewRect(5, 5, 10, 10)))
	assert.False(t, a.Intersects(NewRect(10, 0, 10, 10)), "sharing only an edge is not an intersection")
	assert.False(t, a.Intersects(NewRect(20, 20, 5, 5)))
}

func TestRectEq(t *testing.T) {
	t.Parallel()

	a := NewRect(1, 2, 3, 4)
	b := NewRect(1, 2, 3, 4)
	c := NewRect(1, 2, 3, 5)
	assert.True(t, a.Eq(b))
	assert.False(t, a.Eq(c))
}

func TestCommonIntervalLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, commonIntervalLength(0, 10, 5, 15))
	assert.Equal(t, 0, commonIntervalLength(0, 10, 10, 20))
	assert.Equal(t, 0, commonIntervalLength(0, 10, 20, 30))
	assert.Equal(t, 10, commonIntervalLength(0, 10, 0, 10))
}
