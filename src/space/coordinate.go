package space

import (
	"fmt"
	"strconv"
	"strings"
)

//MaxDimensions is the largest supported number of axes.
//A coordinate in MaxDimensions has 3^8 - 1 = 6560 neighbours.
const MaxDimensions = 8

//Text form of a cell, shared by the seed parser and the renderer.
const (
	ActiveChar   = '#'
	InactiveChar = '.'
)

//Coordinate is an immutable point in D-dimensional integer space.
//Axes beyond Dim are always zero, so two coordinates compare equal with ==
//exactly when they have the same dimension and the same components.
type Coordinate struct {
	dim  int
	axes [MaxDimensions]int
}

//NewCoordinate builds a coordinate from its components.
//It panics when the number of axes is outside 1..MaxDimensions.
func NewCoordinate(axes ...int) Coordinate {
	if len(axes) < 1 || len(axes) > MaxDimensions {
		panic(fmt.Sprintf("space: coordinate arity %d outside 1..%d", len(axes), MaxDimensions))
	}
	c := Coordinate{dim: len(axes)}
	copy(c.axes[:], axes)
	return c
}

//Origin returns the all-zero coordinate of the given dimension.
func Origin(dim int) Coordinate {
	checkDim(dim)
	return Coordinate{dim: dim}
}

//Dim returns the number of axes.
func (c Coordinate) Dim() int { return c.dim }

//Axis returns the i-th component.
func (c Coordinate) Axis(i int) int {
	if i < 0 || i >= c.dim {
		panic(fmt.Sprintf("space: axis %d outside 0..%d", i, c.dim-1))
	}
	return c.axes[i]
}

//Axes returns a copy of the components.
func (c Coordinate) Axes() []int {
	out := make([]int, c.dim)
	copy(out, c.axes[:c.dim])
	return out
}

//With returns a copy of c with axis i set to v.
func (c Coordinate) With(i, v int) Coordinate {
	if i < 0 || i >= c.dim {
		panic(fmt.Sprintf("space: axis %d outside 0..%d", i, c.dim-1))
	}
	c.axes[i] = v
	return c
}

//Add returns the component-wise sum. Both coordinates must share a dimension.
func (c Coordinate) Add(o Coordinate) Coordinate {
	if c.dim != o.dim {
		panic(fmt.Sprintf("space: adding %d-d coordinate to %d-d coordinate", o.dim, c.dim))
	}
	for i := 0; i < c.dim; i++ {
		c.axes[i] += o.axes[i]
	}
	return c
}

//IsOrigin reports whether every component is zero.
func (c Coordinate) IsOrigin() bool {
	return c.axes == [MaxDimensions]int{}
}

//Compare orders coordinates lexicographically, first axis most significant.
//Lower-dimensional coordinates sort before higher-dimensional ones.
func (c Coordinate) Compare(o Coordinate) int {
	if c.dim != o.dim {
		if c.dim < o.dim {
			return -1
		}
		return 1
	}
	for i := 0; i < c.dim; i++ {
		switch {
		case c.axes[i] < o.axes[i]:
			return -1
		case c.axes[i] > o.axes[i]:
			return 1
		}
	}
	return 0
}

func (c Coordinate) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < c.dim; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(c.axes[i]))
	}
	b.WriteByte(')')
	return b.String()
}

func checkDim(dim int) {
	if dim < 1 || dim > MaxDimensions {
		panic(fmt.Sprintf("space: dimension %d outside 1..%d", dim, MaxDimensions))
	}
}
