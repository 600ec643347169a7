package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cubelife/src/render"
	"cubelife/src/seed"
	"cubelife/src/space"
	"cubelife/src/universe"
	"cubelife/src/view"
	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type EnvOptions struct {
	interactive bool
	render      bool
	progress    int
	color       bool
	verbose     bool
	template    string
	catalog     string
	seedFile    string
}

func main() {
	eo, uo := initOptions()

	logger, err := newLogger(eo.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	uo.Logger = logger

	if err := run(eo, uo, os.Stdin, os.Stdout, os.Stderr); err != nil {
		logger.Debug("run failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultUniverseOptions
	uo = &o
	eo = &EnvOptions{}
	flaggy.SetName("cubelife")
	flaggy.SetDescription("Sparse N-dimensional \"Life\" simulation")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Dimensions, "d", "dimensions", fmt.Sprintf("Number of dimensions, 2..%d", space.MaxDimensions))
	flaggy.Int(&uo.Generations, "g", "generations", "Number of generations to simulate")
	flaggy.String(&uo.Engine, "e", "engine", "Engine to use ["+strings.Join(universe.Engines(), "|")+"]")
	flaggy.Int(&uo.Workers, "j", "workers", "Workers of the parallel engine, 0 means one per CPU")
	flaggy.String(&uo.Rule, "R", "rule", "Transition rule in B/S notation")
	flaggy.String(&eo.template, "t", "template", "Seed with a named template instead of the input")
	flaggy.String(&eo.catalog, "c", "catalog", "YAML file with additional templates")
	flaggy.Bool(&eo.render, "p", "render", "Print the final generation slice by slice")
	flaggy.Int(&eo.progress, "P", "progress", "Print the status to stderr every N generations")
	flaggy.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.color, "C", "color", "Colorize the output")
	flaggy.Bool(&eo.verbose, "v", "verbose", "Log every generation")
	flaggy.AddPositionalValue(&eo.seedFile, "seed", 1, false, "File with the '#'/'.' seed pattern, stdin when omitted")

	flaggy.Parse()

	if _, err := universe.NewEngine(uo); err != nil {
		flaggy.ShowHelpAndExit("unknown engine")
	}

	return
}

//newLogger builds the production logger on stderr, debug level when verbose
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

//run loads the seed, runs the simulation and writes the result
//nothing is written to stdout when the seed is malformed
func run(eo *EnvOptions, uo *universe.Options, stdin io.Reader, stdout, stderr io.Writer) error {
	s, err := loadSeed(eo, uo.Dimensions, stdin)
	if err != nil {
		return err
	}

	u, err := universe.New(uo, s)
	if err != nil {
		return err
	}

	if eo.interactive {
		v := view.NewViewTerminal()
		u.RegisterViewer(v)
		v.Start()
		return nil
	}

	if eo.progress > 0 {
		v := view.NewConsoleOut(stderr, eo.color, eo.progress)
		u.RegisterViewer(v)
		v.Start()
	}

	count := u.Run()
	if eo.render {
		text := render.Render(u.Space())
		if eo.color {
			text = view.Colorize(aurora.NewAurora(true), text)
		}
		fmt.Fprint(stdout, text)
	}
	fmt.Fprintln(stdout, count)
	return nil
}

//loadSeed reads the seed from the file argument, the template or stdin, in this order
func loadSeed(eo *EnvOptions, dim int, stdin io.Reader) (*space.Space, error) {
	if eo.seedFile != "" {
		f, err := os.Open(eo.seedFile)
		if err != nil {
			return nil, fmt.Errorf("opening seed: %w", err)
		}
		defer f.Close()
		s, err := seed.Load(f, dim)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", eo.seedFile, err)
		}
		return s, nil
	}

	name := eo.template
	if name == "" && eo.interactive {
		name = "cubes"
	}
	if name != "" {
		catalog, err := loadCatalog(eo.catalog)
		if err != nil {
			return nil, err
		}
		tmpl, ok := catalog.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown template %q, have [%s]", name, strings.Join(catalog.Names(), "|"))
		}
		return tmpl.Seed(dim)
	}

	return seed.Load(stdin, dim)
}

func loadCatalog(path string) (universe.Catalog, error) {
	catalog := universe.DefaultCatalog()
	if path == "" {
		return catalog, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()
	extra, err := universe.LoadCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	catalog.Merge(extra)
	return catalog, nil
}
