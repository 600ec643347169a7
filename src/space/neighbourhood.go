package space

import "sync"

var offsetCache [MaxDimensions + 1]struct {
	once    sync.Once
	offsets []Coordinate
}

//NeighbourCount returns 3^dim - 1, the size of a Moore neighbourhood.
func NeighbourCount(dim int) int {
	checkDim(dim)
	n := 1
	for i := 0; i < dim; i++ {
		n *= 3
	}
	return n - 1
}

//Offsets returns the non-zero offsets of the Moore neighbourhood in dim
//dimensions: every combination of -1, 0 and +1 per axis except the origin.
//The order is lexicographic with the first axis varying slowest.
//The returned slice is shared and must not be modified.
func Offsets(dim int) []Coordinate {
	checkDim(dim)
	e := &offsetCache[dim]
	e.once.Do(func() {
		e.offsets = buildOffsets(dim)
	})
	return e.offsets
}

//buildOffsets walks the 3^dim cartesian product as an odometer over the
//digits 0..2, last axis turning fastest.
func buildOffsets(dim int) []Coordinate {
	total := NeighbourCount(dim) + 1
	out := make([]Coordinate, 0, total-1)
	var digits [MaxDimensions]int
	for i := 0; i < total; i++ {
		c := Coordinate{dim: dim}
		for a := 0; a < dim; a++ {
			c.axes[a] = digits[a] - 1
		}
		if !c.IsOrigin() {
			out = append(out, c)
		}
		for a := dim - 1; a >= 0; a-- {
			digits[a]++
			if digits[a] < 3 {
				break
			}
			digits[a] = 0
		}
	}
	return out
}

//Neighbourhood returns the 3^D - 1 coordinates adjacent to c, in the order
//of Offsets. c itself is never included.
func (c Coordinate) Neighbourhood() []Coordinate {
	offsets := Offsets(c.dim)
	out := make([]Coordinate, len(offsets))
	for i, o := range offsets {
		out[i] = c.Add(o)
	}
	return out
}

//EachNeighbour calls fn for every coordinate of c's neighbourhood without
//allocating the neighbour list.
func (c Coordinate) EachNeighbour(fn func(n Coordinate)) {
	for _, o := range Offsets(c.dim) {
		fn(c.Add(o))
	}
}
