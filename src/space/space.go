package space

import (
	"fmt"
	"slices"
)

//Space is the set of active coordinates of one generation.
//A coordinate that is not in the set is inactive; inactive cells are never
//stored.
type Space struct {
	dim   int
	cells map[Coordinate]struct{}
}

//New returns an empty space of the given dimension.
func New(dim int) *Space {
	checkDim(dim)
	return &Space{dim: dim, cells: make(map[Coordinate]struct{})}
}

//NewWithCapacity returns an empty space sized for about n active cells.
func NewWithCapacity(dim, n int) *Space {
	checkDim(dim)
	return &Space{dim: dim, cells: make(map[Coordinate]struct{}, n)}
}

//FromCoordinates returns a space in which exactly cs are active.
func FromCoordinates(dim int, cs ...Coordinate) *Space {
	s := NewWithCapacity(dim, len(cs))
	for _, c := range cs {
		s.Add(c)
	}
	return s
}

//Dim returns the dimension of every coordinate in the space.
func (s *Space) Dim() int { return s.dim }

//Len returns the number of active cells.
func (s *Space) Len() int { return len(s.cells) }

//Contains reports whether c is active.
func (s *Space) Contains(c Coordinate) bool {
	_, ok := s.cells[c]
	return ok
}

//Add marks c as active. It panics when c has a different dimension.
func (s *Space) Add(c Coordinate) {
	if c.dim != s.dim {
		panic(fmt.Sprintf("space: adding %d-d coordinate %v to %d-d space", c.dim, c, s.dim))
	}
	s.cells[c] = struct{}{}
}

//Each calls fn for every active coordinate in unspecified order.
func (s *Space) Each(fn func(c Coordinate)) {
	for c := range s.cells {
		fn(c)
	}
}

//Coordinates returns the active coordinates sorted lexicographically.
func (s *Space) Coordinates() []Coordinate {
	out := make([]Coordinate, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	slices.SortFunc(out, Coordinate.Compare)
	return out
}

//ActiveNeighbours counts the active coordinates in c's neighbourhood.
func (s *Space) ActiveNeighbours(c Coordinate) int {
	n := 0
	for _, o := range Offsets(c.dim) {
		if s.Contains(c.Add(o)) {
			n++
		}
	}
	return n
}

//Bounds returns the per-axis inclusive minimum and maximum over all active
//coordinates. ok is false for an empty space.
func (s *Space) Bounds() (lo, hi Coordinate, ok bool) {
	for c := range s.cells {
		if !ok {
			lo, hi, ok = c, c, true
			continue
		}
		for i := 0; i < s.dim; i++ {
			lo.axes[i] = min(lo.axes[i], c.axes[i])
			hi.axes[i] = max(hi.axes[i], c.axes[i])
		}
	}
	return lo, hi, ok
}

//Equal reports whether both spaces have the same dimension and the same
//active coordinates.
func (s *Space) Equal(o *Space) bool {
	if s.dim != o.dim || len(s.cells) != len(o.cells) {
		return false
	}
	for c := range s.cells {
		if !o.Contains(c) {
			return false
		}
	}
	return true
}

func (s *Space) String() string {
	return fmt.Sprintf("space(%dd, %d active)", s.dim, len(s.cells))
}
