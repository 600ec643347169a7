package universe

import (
	"errors"
	"time"

	"go.uber.org/zap"
)

//Cell is the state of one coordinate; only Active cells are stored in a space
type Cell bool

const (
	Inactive Cell = false
	Active   Cell = true
)

func (c Cell) String() string {
	if c {
		return "active"
	}
	return "inactive"
}

//Options represents the Universe's configurable options
type Options struct {
	Dimensions  int
	Generations int
	Engine      string
	Workers     int         //parallel engine only, 0 means GOMAXPROCS
	Rule        string      //birth/survival notation, e.g. B3/S23
	Logger      *zap.Logger //nil means no logging
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
	TotalTime     time.Duration
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(u *Universe)
	Start()
}

//The universe running status at the concrete moment
type RunningState int

//default options
const (
	DefDimensions  = 3
	DefGenerations = 6
	DefEngine      = "sequential"
	DefRule        = "B3/S23"
)

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

func (s RunningState) String() string {
	switch s {
	case RunningStateManual:
		return "waiting"
	case RunningStateStep:
		return "stepping"
	case RunningStateRun:
		return "running"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}

var DefaultUniverseOptions = Options{
	Dimensions:  DefDimensions,
	Generations: DefGenerations,
	Engine:      DefEngine,
	Rule:        DefRule,
}

var (
	ErrUnknownEngine      = errors.New("unknown engine")
	ErrDimensionMismatch  = errors.New("seed dimension does not match universe")
	ErrInvalidGenerations = errors.New("invalid number of generations")
)
