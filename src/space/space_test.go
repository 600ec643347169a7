package space

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeighbourhoodSize(t *testing.T) {
	for dim := 1; dim <= MaxDimensions; dim++ {
		axes := make([]int, dim)
		for i := range axes {
			axes[i] = i*7 - 3
		}
		c := NewCoordinate(axes...)
		n := c.Neighbourhood()

		require.Len(t, n, NeighbourCount(dim), "dim %d", dim)
		seen := make(map[Coordinate]bool, len(n))
		for _, nc := range n {
			assert.NotEqual(t, c, nc, "dim %d: coordinate is its own neighbour", dim)
			assert.False(t, seen[nc], "dim %d: duplicate neighbour %v", dim, nc)
			seen[nc] = true
			for a := 0; a < dim; a++ {
				d := nc.Axis(a) - c.Axis(a)
				assert.True(t, d >= -1 && d <= 1, "dim %d: %v too far from %v", dim, nc, c)
			}
		}
	}
}

func TestNeighbourhoodOrder(t *testing.T) {
	want := []Coordinate{
		NewCoordinate(0, 1, 2), NewCoordinate(0, 1, 3), NewCoordinate(0, 1, 4),
		NewCoordinate(0, 2, 2), NewCoordinate(0, 2, 3), NewCoordinate(0, 2, 4),
		NewCoordinate(0, 3, 2), NewCoordinate(0, 3, 3), NewCoordinate(0, 3, 4),
		NewCoordinate(1, 1, 2), NewCoordinate(1, 1, 3), NewCoordinate(1, 1, 4),
		NewCoordinate(1, 2, 2), NewCoordinate(1, 2, 4),
		NewCoordinate(1, 3, 2), NewCoordinate(1, 3, 3), NewCoordinate(1, 3, 4),
		NewCoordinate(2, 1, 2), NewCoordinate(2, 1, 3), NewCoordinate(2, 1, 4),
		NewCoordinate(2, 2, 2), NewCoordinate(2, 2, 3), NewCoordinate(2, 2, 4),
		NewCoordinate(2, 3, 2), NewCoordinate(2, 3, 3), NewCoordinate(2, 3, 4),
	}
	got := NewCoordinate(1, 2, 3).Neighbourhood()
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(Coordinate{})); diff != "" {
		t.Errorf("neighbourhood mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, got, NewCoordinate(1, 2, 3).Neighbourhood(), "order must be stable between calls")
}

func TestEachNeighbourMatchesNeighbourhood(t *testing.T) {
	c := NewCoordinate(-4, 0, 9, 2)
	var got []Coordinate
	c.EachNeighbour(func(n Coordinate) { got = append(got, n) })
	assert.Equal(t, c.Neighbourhood(), got)
}

func TestCoordinate(t *testing.T) {
	c := NewCoordinate(3, -1, 0, 0)
	assert.Equal(t, 4, c.Dim())
	assert.Equal(t, -1, c.Axis(1))
	assert.Equal(t, "(3, -1, 0, 0)", c.String())
	assert.Equal(t, NewCoordinate(3, -1, 5, 0), c.With(2, 5))
	assert.Equal(t, NewCoordinate(3, -1, 0, 0), c, "With must not mutate the receiver")

	axes := c.Axes()
	axes[0] = 100
	assert.Equal(t, 3, c.Axis(0), "Axes must return a copy")

	assert.NotEqual(t, NewCoordinate(1, 2), NewCoordinate(1, 2, 0), "dimension is part of identity")
	assert.True(t, Origin(5).IsOrigin())

	assert.Panics(t, func() { NewCoordinate() })
	assert.Panics(t, func() { NewCoordinate(make([]int, MaxDimensions+1)...) })
	assert.Panics(t, func() { c.Axis(4) })
	assert.Panics(t, func() { c.Add(NewCoordinate(1, 1, 1)) })
}

func TestCompare(t *testing.T) {
	assert.Equal(t, 0, NewCoordinate(1, 2).Compare(NewCoordinate(1, 2)))
	assert.Equal(t, -1, NewCoordinate(1, 2).Compare(NewCoordinate(1, 3)))
	assert.Equal(t, 1, NewCoordinate(2, -5).Compare(NewCoordinate(1, 9)))
	assert.Equal(t, -1, NewCoordinate(9, 9).Compare(NewCoordinate(0, 0, 0)))
}

func TestSpace(t *testing.T) {
	s := FromCoordinates(3,
		NewCoordinate(1, 0, 0),
		NewCoordinate(2, 1, 0),
		NewCoordinate(0, 2, 0),
		NewCoordinate(1, 2, 0),
		NewCoordinate(2, 2, 0),
	)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 3, s.Dim())
	assert.True(t, s.Contains(NewCoordinate(2, 1, 0)))
	assert.False(t, s.Contains(NewCoordinate(2, 1, 1)))

	s.Add(NewCoordinate(1, 0, 0))
	assert.Equal(t, 5, s.Len(), "adding an active coordinate twice keeps one entry")

	assert.Equal(t, 5, s.ActiveNeighbours(NewCoordinate(1, 1, 0)))
	assert.Equal(t, 1, s.ActiveNeighbours(NewCoordinate(0, 0, 1)))

	lo, hi, ok := s.Bounds()
	require.True(t, ok)
	assert.Equal(t, NewCoordinate(0, 0, 0), lo)
	assert.Equal(t, NewCoordinate(2, 2, 0), hi)

	assert.Equal(t, []Coordinate{
		NewCoordinate(0, 2, 0),
		NewCoordinate(1, 0, 0),
		NewCoordinate(1, 2, 0),
		NewCoordinate(2, 1, 0),
		NewCoordinate(2, 2, 0),
	}, s.Coordinates())

	assert.Panics(t, func() { s.Add(NewCoordinate(1, 1)) })
}

func TestSpaceEqual(t *testing.T) {
	a := FromCoordinates(2, NewCoordinate(0, 0), NewCoordinate(1, 1))
	b := FromCoordinates(2, NewCoordinate(1, 1), NewCoordinate(0, 0))
	assert.True(t, a.Equal(b))

	b.Add(NewCoordinate(5, 5))
	assert.False(t, a.Equal(b))
	assert.False(t, New(2).Equal(New(3)))
	assert.True(t, New(4).Equal(New(4)))
}

func TestEmptyBounds(t *testing.T) {
	_, _, ok := New(3).Bounds()
	assert.False(t, ok)
}

func BenchmarkNeighbourhood(b *testing.B) {
	for _, dim := range []int{3, 4, 6} {
		c := Origin(dim)
		b.Run(c.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = c.Neighbourhood()
			}
		})
	}
}
