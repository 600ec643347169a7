package view

import (
	"bytes"
	"strings"
	"testing"

	"cubelife/src/seed"
	"cubelife/src/universe"
	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUniverse(t *testing.T) *universe.Universe {
	t.Helper()
	s, err := seed.LoadLines([]string{".#.", "..#", "###"}, 3)
	require.NoError(t, err)
	u, err := universe.New(&universe.Options{Dimensions: 3, Generations: 6}, s)
	require.NoError(t, err)
	return u
}

func TestConsoleOut(t *testing.T) {
	var buf bytes.Buffer
	u := newUniverse(t)
	c := NewConsoleOut(&buf, false, 2)
	u.RegisterViewer(c)
	c.Start()
	u.Run()

	out := buf.String()
	assert.Contains(t, out, "Running configuration:")
	assert.Contains(t, out, "  Dimensions: 3\n")
	assert.Contains(t, out, "  Rule: B3/S23\n")
	assert.Contains(t, out, "  Seed cells: 5\n")
	assert.Contains(t, out, "Simulation started...")
	assert.Contains(t, out, "  Generation 2: ")
	assert.Contains(t, out, "  Generation 4: ")
	assert.NotContains(t, out, "  Generation 3: ")
	assert.Contains(t, out, "Finished:")
	assert.Contains(t, out, "  Live cells: 112\n")
	assert.Contains(t, out, "  Last generation: 6\n")
	assert.NotContains(t, out, "\x1b[", "colors are disabled")
}

func TestColorize(t *testing.T) {
	text := "z=0\n#.\n\n"
	assert.Equal(t, text, Colorize(aurora.NewAurora(false), text))

	colored := Colorize(aurora.NewAurora(true), text)
	assert.Contains(t, colored, "\x1b[")
	assert.True(t, strings.HasSuffix(colored, "\n\n"))
}

func TestDrawSlice(t *testing.T) {
	rows := []string{"#.", ".#"}
	assert.Equal(t, "LD\nDL", drawSlice(rows, 10, 10, "L", "D"))
	assert.Equal(t, "L\nD", drawSlice(rows, 1, 10, "L", "D"))

	cropped := drawSlice([]string{"#", "#", "#"}, 5, 2, "L", "D")
	lines := strings.Split(cropped, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "L", lines[0])
	assert.Contains(t, lines[1], "larger than the viewing area")
}
