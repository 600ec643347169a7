package view

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"cubelife/src/space"
	"cubelife/src/universe"
	"github.com/logrusorgru/aurora"
)

//ConsoleOut prints the simulation progress as plain lines
type ConsoleOut struct {
	u     *universe.Universe
	w     io.Writer
	au    aurora.Aurora
	every int
}

//NewConsoleOut creates the console printer writing to w
//every is the interval in generations between progress lines, 0 prints only the summary
func NewConsoleOut(w io.Writer, colors bool, every int) *ConsoleOut {
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors), every: every}
}

func (c *ConsoleOut) Refresh() {
	st := c.u.Status()
	if st.RunningMode == universe.RunningStateFinished {
		resultData := map[string]interface{}{
			"Last generation": st.IterationNum,
			"Total time":      st.TotalTime,
			"Live cells":      st.LiveCells,
		}
		fmt.Fprintln(c.w, c.au.Bold("\nFinished:"))
		c.printHashData(resultData)
	} else if c.every > 0 && st.IterationNum%c.every == 0 {
		fmt.Fprintf(c.w, "  Generation %v: %v live cells (%v)\n",
			st.IterationNum, c.au.Green(st.LiveCells), st.IterationTime)
	}
}

func (c *ConsoleOut) Register(u *universe.Universe) {
	c.u = u
	o := c.u.Options()
	fmt.Fprintln(c.w, c.au.Bold("Running configuration:"))
	c.printHashData(map[string]interface{}{
		"Dimensions":  o.Dimensions,
		"Generations": o.Generations,
		"Engine":      o.Engine,
		"Rule":        o.Rule,
		"Seed cells":  u.Status().LiveCells,
	})
}

func (c *ConsoleOut) Start() {
	fmt.Fprintln(c.w, c.au.Cyan("\nSimulation started..."))
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", c.au.Green(propName), d[propName])
	}
}

//Colorize highlights the active cells of a rendering made by render.Render
//slice headers are printed in cyan
func Colorize(au aurora.Aurora, text string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		body := strings.TrimSuffix(line, "\n")
		switch {
		case body == "":
		case strings.ContainsRune(body, '='):
			b.WriteString(au.Cyan(body).String())
		default:
			for _, r := range body {
				if r == space.ActiveChar {
					b.WriteString(au.Green(string(r)).Bold().String())
				} else {
					b.WriteString(au.Faint(string(r)).String())
				}
			}
		}
		if strings.HasSuffix(line, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
