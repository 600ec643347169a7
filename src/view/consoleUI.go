package view

import (
	"bytes"
	"fmt"
	"log"
	"strings"
	"time"

	"cubelife/src/render"
	"cubelife/src/space"
	"cubelife/src/universe"
	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal viewer
//it shows one x/y slice of the current generation at a time
type ConsoleUI struct {
	u          *universe.Universe
	g          *gocui.Gui
	k          []keyBindings
	slice      int
	liveFiller string
	deadFiller string
}

var (
	runningStateDescr = map[universe.RunningState]string{
		universe.RunningStateManual:   aurora.Colorize("waiting", aurora.BlueFg).String(),
		universe.RunningStateStep:     "do the step",
		universe.RunningStateRun:      aurora.Colorize("running", aurora.CyanFg).String(),
		universe.RunningStateFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

func NewViewTerminal() *ConsoleUI {

	var err error
	t := ConsoleUI{
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Panicln(err)
	}

	t.k = []keyBindings{
		{gocui.KeyCtrlC,
			"^C",
			"Exit",
			t.cmdQuit,
			""},
		{'n',
			"N",
			"Next generation",
			t.cmdNextRound,
			""},
		{'r',
			"R",
			"Run to the end",
			t.cmdRun,
			""},
		{'c',
			"C",
			"Reset to seed",
			t.cmdReset,
			""},
		{'[',
			"[",
			"Previous slice",
			t.cmdPrevSlice,
			""},
		{']',
			"]",
			"Next slice",
			t.cmdNextSlice,
			""},
	}
	t.g.SetManagerFunc(t.layout)

	t.initKeyBindings(t.k)

	return &t
}

func (t *ConsoleUI) initKeyBindings(k []keyBindings) {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			log.Panicln(err)
		}
	}
}

func (t *ConsoleUI) Register(u *universe.Universe) {
	t.u = u
}

func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

func (t *ConsoleUI) Refresh() {
	t.renderField()
	t.renderConfiguration()
	t.renderStatus()
}

//currentSlice returns the selected slice, clamping the selection to the slices of the current generation
func (t *ConsoleUI) currentSlice() (render.Slice, int, int) {
	slices := render.Slices(t.u.Space())
	if len(slices) == 0 {
		return render.Slice{}, 0, 0
	}
	if t.slice >= len(slices) {
		t.slice = len(slices) - 1
	}
	if t.slice < 0 {
		t.slice = 0
	}
	return slices[t.slice], t.slice, len(slices)
}

func (t *ConsoleUI) renderField() {

	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("field")
		if e != nil {
			return e
		}
		//the entire field is redrawing at once
		v.Clear()

		sl, idx, total := t.currentSlice()
		if total == 0 {
			v.Title = "Field: no active cells"
			return nil
		}
		label := sl.Label()
		if label == "" {
			label = "x/y"
		}
		v.Title = fmt.Sprintf("Field: %s (%d/%d)", label, idx+1, total)

		maxW, maxH := v.Size()
		_, _ = fmt.Fprint(v, drawSlice(sl.Rows, maxW, maxH, t.liveFiller, t.deadFiller))
		return nil
	})
}

//drawSlice renders the rows with the given fillers, cropped to maxW x maxH
//the last visible line is replaced by a warning when the slice does not fit
func drawSlice(rows []string, maxW, maxH int, live, dead string) string {
	var b bytes.Buffer
	crop := false
	if len(rows) > maxH || (len(rows) > 0 && len(rows[0]) > maxW) {
		crop = true
	}
	for i, l := range rows {
		//discard the data outside the view area
		if i >= maxH {
			break
		}
		//line feed char
		if i != 0 {
			b.WriteByte(10)
		}
		if crop && i == (maxH-1) {
			b.WriteString(aurora.Red("The slice is larger than the viewing area").BgBlack().String())
			break
		}
		for j := 0; j < len(l); j++ {
			if j >= maxW {
				break
			}
			if l[j] == space.ActiveChar {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
	}
	return b.String()
}

func (t *ConsoleUI) renderStatus() {
	s := t.u.Status()
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := t.g.View("status"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.IterationNum))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.LiveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Evaluation time", "%v", s.IterationTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", runningStateDescr[s.RunningMode]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	//it needs to call Update when calls from goroutine
	t.g.Update(func(g *gocui.Gui) error {
		c := t.u.Options()
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Dimensions", "%v", c.Dimensions))
			_, _ = fmt.Fprintln(v, t.renderProp("Generations", "%v", c.Generations))
			_, _ = fmt.Fprintln(v, t.renderProp("Engine", "%v", c.Engine))
			_, _ = fmt.Fprintln(v, t.renderProp("Rule", "%v", c.Rule))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 20

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("field")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "N-dimensional \"Life\" simulation"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = true
	}
	t.renderField()

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdNextRound(_ *gocui.View) error {
	t.u.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.u.Run()
	return nil
}

func (t *ConsoleUI) cmdReset(_ *gocui.View) error {
	t.slice = 0
	t.u.Reset()
	return nil
}

func (t *ConsoleUI) cmdPrevSlice(_ *gocui.View) error {
	t.slice--
	t.renderField()
	return nil
}

func (t *ConsoleUI) cmdNextSlice(_ *gocui.View) error {
	t.slice++
	t.renderField()
	return nil
}
