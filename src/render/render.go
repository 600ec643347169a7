package render

import (
	"fmt"
	"strings"

	"cubelife/src/space"
)

//AxisNames labels the axes of a coordinate, x first.
var AxisNames = [space.MaxDimensions]string{"x", "y", "z", "w", "v", "u", "t", "s"}

//Slice is one x/y plane of the bounding box, at fixed values of the extra
//axes (every axis after y).
type Slice struct {
	Extra []int
	Rows  []string
}

//Label returns the slice header, e.g. "z=-1, w=0". It is empty in two
//dimensions.
func (sl Slice) Label() string {
	parts := make([]string, len(sl.Extra))
	for i, v := range sl.Extra {
		parts[i] = fmt.Sprintf("%s=%d", AxisNames[i+2], v)
	}
	return strings.Join(parts, ", ")
}

//Slices walks the bounding box of the active cells. Extra axes ascend with
//the last axis varying slowest; inside a slice rows ascend in y and columns
//in x. An empty space has no slices.
func Slices(s *space.Space) []Slice {
	lo, hi, ok := s.Bounds()
	if !ok {
		return nil
	}
	dim := s.Dim()
	extra := dim - 2
	if extra < 0 {
		extra = 0
	}

	cur := lo
	var out []Slice
	for {
		sl := Slice{Extra: make([]int, extra)}
		for i := 0; i < extra; i++ {
			sl.Extra[i] = cur.Axis(i + 2)
		}
		sl.Rows = plane(s, cur, lo, hi)
		out = append(out, sl)

		//advance the odometer over the extra axes, z turning fastest
		a := 2
		for ; a < dim; a++ {
			if cur.Axis(a) < hi.Axis(a) {
				cur = cur.With(a, cur.Axis(a)+1)
				break
			}
			cur = cur.With(a, lo.Axis(a))
		}
		if a >= dim {
			return out
		}
	}
}

func plane(s *space.Space, at, lo, hi space.Coordinate) []string {
	if s.Dim() == 1 {
		return []string{row(s, at, lo.Axis(0), hi.Axis(0))}
	}
	rows := make([]string, 0, hi.Axis(1)-lo.Axis(1)+1)
	for y := lo.Axis(1); y <= hi.Axis(1); y++ {
		rows = append(rows, row(s, at.With(1, y), lo.Axis(0), hi.Axis(0)))
	}
	return rows
}

func row(s *space.Space, at space.Coordinate, x0, x1 int) string {
	var b strings.Builder
	b.Grow(x1 - x0 + 1)
	for x := x0; x <= x1; x++ {
		if s.Contains(at.With(0, x)) {
			b.WriteByte(space.ActiveChar)
		} else {
			b.WriteByte(space.InactiveChar)
		}
	}
	return b.String()
}

//Render returns the text form of s: for every slice a header line (omitted
//in two dimensions), its rows, then one blank line.
//An empty space renders as the empty string.
func Render(s *space.Space) string {
	var b strings.Builder
	for _, sl := range Slices(s) {
		if label := sl.Label(); label != "" {
			b.WriteString(label)
			b.WriteByte('\n')
		}
		for _, r := range sl.Rows {
			b.WriteString(r)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
