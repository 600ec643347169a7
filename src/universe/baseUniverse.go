package universe

import (
	"fmt"
	"time"

	"cubelife/src/space"
	"go.uber.org/zap"
)

//Universe drives a space through its generations
//it is synchronous: Step and Run return when the work is done, viewers are refreshed from the calling goroutine
type Universe struct {
	options Options
	state   Status
	rule    Rule
	engine  Engine
	seed    *space.Space
	space   *space.Space
	views   []Viewer
	logger  *zap.Logger
}

//New creates the Universe settled with the seed
//the seed is kept unchanged so the universe can be reset to it
func New(o *Options, seed *space.Space) (*Universe, error) {
	if o == nil {
		o = &DefaultUniverseOptions
	}
	opts := *o
	if opts.Dimensions == 0 {
		opts.Dimensions = DefDimensions
	}
	if opts.Engine == "" {
		opts.Engine = DefEngine
	}
	if opts.Rule == "" {
		opts.Rule = DefRule
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Generations < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGenerations, opts.Generations)
	}
	if seed.Dim() != opts.Dimensions {
		return nil, fmt.Errorf("%w: seed has %d dimensions, universe %d", ErrDimensionMismatch, seed.Dim(), opts.Dimensions)
	}

	rule, err := ParseRule(opts.Rule)
	if err != nil {
		return nil, err
	}
	engine, err := NewEngine(&opts)
	if err != nil {
		return nil, err
	}

	u := &Universe{
		options: opts,
		rule:    rule,
		engine:  engine,
		seed:    seed,
		space:   seed,
		logger:  opts.Logger.With(zap.String("engine", engine.Name()), zap.Int("dimensions", opts.Dimensions)),
	}
	u.state = u.initialStatus()
	return u, nil
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
func (u *Universe) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
	v.Register(u)
}

//Status returns current universe status represented by Status struct
func (u *Universe) Status() Status {
	return u.state
}

//Options returns current universe configuration represented by Options struct
func (u *Universe) Options() Options {
	return u.options
}

//Space returns the current generation; it must not be modified
func (u *Universe) Space() *space.Space {
	return u.space
}

//Finished reports whether the configured number of generations is done
func (u *Universe) Finished() bool {
	return u.state.IterationNum >= u.options.Generations
}

//Step does one generation, returns false if the universe has already finished
func (u *Universe) Step() bool {
	if u.Finished() {
		return false
	}
	rm := u.state.RunningMode
	u.state.RunningMode = RunningStateStep
	u.nextIteration()
	if u.Finished() {
		u.state.RunningMode = RunningStateFinished
	} else {
		u.state.RunningMode = rm
	}
	u.refreshView()
	return true
}

//Run does the remaining generations and returns the count of live cells
//the viewers are refreshed even when there is nothing left to do, so they always see the finished state
func (u *Universe) Run() int {
	if u.Finished() {
		u.refreshView()
	} else {
		u.state.RunningMode = RunningStateRun
		for u.Step() {
		}
	}
	u.logger.Info("simulation finished",
		zap.Int("generations", u.state.IterationNum),
		zap.Int("live", u.state.LiveCells),
		zap.Duration("elapsed", u.state.TotalTime))
	return u.state.LiveCells
}

//Reset returns the universe to the seed and resets all counters
func (u *Universe) Reset() {
	u.space = u.seed
	u.state = u.initialStatus()
	u.refreshView()
}

//initialStatus is the status of the seed generation, already finished when there are no generations to run
func (u *Universe) initialStatus() Status {
	st := Status{LiveCells: u.seed.Len(), RunningMode: RunningStateManual}
	if u.options.Generations == 0 {
		st.RunningMode = RunningStateFinished
	}
	return st
}

//nextIteration replaces the current space with the next generation
func (u *Universe) nextIteration() {
	start := time.Now()
	u.space = u.engine.Step(u.space, u.rule)
	u.state.IterationNum++
	u.state.LiveCells = u.space.Len()
	u.state.IterationTime = time.Since(start)
	u.state.TotalTime += u.state.IterationTime
	u.logger.Debug("generation complete",
		zap.Int("generation", u.state.IterationNum),
		zap.Int("live", u.state.LiveCells),
		zap.Duration("elapsed", u.state.IterationTime))
}

//refreshView calls Refresh event for all registered views
func (u *Universe) refreshView() {
	for _, v := range u.views {
		v.Refresh()
	}
}
