package universe

import "cubelife/src/space"

/*
	Sequential engine
	builds the candidate set once, then evaluates every candidate against the prior generation
	and collects the active ones into a new space
*/
type sequentialEngine struct{}

func (sequentialEngine) Name() string { return "sequential" }

func (sequentialEngine) Step(s *space.Space, r Rule) *space.Space {
	return Step(s, r)
}

//Step computes the next generation of s under r
func Step(s *space.Space, r Rule) *space.Space {
	next := space.NewWithCapacity(s.Dim(), s.Len())
	for c := range candidates(s) {
		if cellNextState(s, r, c) == Active {
			next.Add(c)
		}
	}
	return next
}
