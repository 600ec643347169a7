package universe

import (
	"fmt"
	"sort"

	"cubelife/src/space"
)

//Engine computes the next generation of a space
//implementations read only from the given space and always return a new one
type Engine interface {
	Name() string
	Step(s *space.Space, r Rule) *space.Space
}

var engines = map[string]func(o *Options) Engine{
	"sequential": func(o *Options) Engine { return sequentialEngine{} },
	"parallel":   newParallelEngine,
	"scatter":    func(o *Options) Engine { return scatterEngine{} },
}

//Engines returns the names of the available engines, sorted
func Engines() []string {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//NewEngine creates the engine registered under o.Engine
func NewEngine(o *Options) (Engine, error) {
	f, ok := engines[o.Engine]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownEngine, o.Engine)
	}
	return f(o), nil
}

//candidates returns every coordinate whose state may change: the active cells and all their neighbours,
//each coordinate once
func candidates(s *space.Space) map[space.Coordinate]struct{} {
	cs := make(map[space.Coordinate]struct{}, sizeHint(s))
	s.Each(func(c space.Coordinate) {
		cs[c] = struct{}{}
		c.EachNeighbour(func(n space.Coordinate) {
			cs[n] = struct{}{}
		})
	})
	return cs
}

//cellNextState calculates the next state for the cell against the prior generation
func cellNextState(s *space.Space, r Rule, c space.Coordinate) Cell {
	return r(Cell(s.Contains(c)), s.ActiveNeighbours(c))
}

//sizeHint estimates the number of candidates of s without reserving the full 3^D per cell
func sizeHint(s *space.Space) int {
	return s.Len() * min(space.NeighbourCount(s.Dim())+1, 32)
}
