package universe

import (
	"runtime"

	"cubelife/src/space"
	"golang.org/x/sync/errgroup"
)

/*
	Engine implementation with multithreaded computation algorithm
	the candidate set is splitted into the parts each of which is computed by individual goroutine
	workers only read the prior generation and write to their own buffer, the buffers are merged after all of them finish
*/

const (
	DefMinCandidatesPerWorker = 256 //minimum candidates for one worker
)

type parallelEngine struct {
	workers int
}

func newParallelEngine(o *Options) Engine {
	return parallelEngine{workers: o.Workers}
}

func (pe parallelEngine) Name() string { return "parallel" }

func (pe parallelEngine) Step(s *space.Space, r Rule) *space.Space {
	return ParallelStep(s, r, pe.workers)
}

//ParallelStep computes the same generation as Step using up to workers goroutines
//workers < 1 means GOMAXPROCS
func ParallelStep(s *space.Space, r Rule, workers int) *space.Space {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	cs := candidates(s)
	list := make([]space.Coordinate, 0, len(cs))
	for c := range cs {
		list = append(list, c)
	}

	perWorker := (len(list) + workers - 1) / workers
	if perWorker < DefMinCandidatesPerWorker {
		perWorker = DefMinCandidatesPerWorker
	}
	parts := make([][]space.Coordinate, 0, workers)
	for start := 0; start < len(list); start += perWorker {
		end := min(start+perWorker, len(list))
		parts = append(parts, list[start:end])
	}

	results := make([][]space.Coordinate, len(parts))
	var g errgroup.Group
	for i, part := range parts {
		i, part := i, part
		g.Go(func() error {
			results[i] = calcPart(s, r, part)
			return nil
		})
	}
	_ = g.Wait()

	live := 0
	for _, res := range results {
		live += len(res)
	}
	next := space.NewWithCapacity(s.Dim(), live)
	for _, res := range results {
		for _, c := range res {
			next.Add(c)
		}
	}
	return next
}

//calcPart returns the candidates of part that are active in the next generation
func calcPart(s *space.Space, r Rule, part []space.Coordinate) []space.Coordinate {
	var live []space.Coordinate
	for _, c := range part {
		if cellNextState(s, r, c) == Active {
			live = append(live, c)
		}
	}
	return live
}
