package universe

import "cubelife/src/space"

/*
	Engine implementation with neighbour counting optimization
	instead of looking up 3^D - 1 neighbours for every candidate, every active cell adds one to the counter
	of each of its neighbours; a cell absent from the counters has no active neighbours
*/
type scatterEngine struct{}

func (scatterEngine) Name() string { return "scatter" }

func (scatterEngine) Step(s *space.Space, r Rule) *space.Space {
	return ScatterStep(s, r)
}

//ScatterStep computes the same generation as Step by scattering neighbour counts
func ScatterStep(s *space.Space, r Rule) *space.Space {
	counts := make(map[space.Coordinate]int, sizeHint(s))
	s.Each(func(c space.Coordinate) {
		c.EachNeighbour(func(n space.Coordinate) {
			counts[n]++
		})
	})

	next := space.NewWithCapacity(s.Dim(), s.Len())
	for c, n := range counts {
		if r(Cell(s.Contains(c)), n) == Active {
			next.Add(c)
		}
	}
	//active cells without active neighbours are not in counts
	s.Each(func(c space.Coordinate) {
		if _, ok := counts[c]; !ok && r(Active, 0) == Active {
			next.Add(c)
		}
	})
	return next
}
