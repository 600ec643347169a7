package seed

import (
	"errors"
	"strings"
	"testing"

	"cubelife/src/space"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(".#.\n..#\n###\n"), 3)
	require.NoError(t, err)

	want := space.FromCoordinates(3,
		space.NewCoordinate(1, 0, 0),
		space.NewCoordinate(2, 1, 0),
		space.NewCoordinate(0, 2, 0),
		space.NewCoordinate(1, 2, 0),
		space.NewCoordinate(2, 2, 0),
	)
	assert.True(t, want.Equal(s), "got %v", s.Coordinates())
}

func TestLoadExtraAxesAreZero(t *testing.T) {
	s, err := LoadLines([]string{"#.", ".#"}, 6)
	require.NoError(t, err)
	assert.Equal(t, []space.Coordinate{
		space.NewCoordinate(0, 0, 0, 0, 0, 0),
		space.NewCoordinate(1, 1, 0, 0, 0, 0),
	}, s.Coordinates())
}

func TestLoadCRLFAndTrailingBlank(t *testing.T) {
	s, err := Load(strings.NewReader("#.\r\n.#\r\n\r\n\n"), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
}

func TestLoadEmptyPattern(t *testing.T) {
	s, err := LoadLines([]string{"...", "..."}, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len(), "inactive cells are never stored")
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		lines  []string
		dim    int
		line   int
		column int
	}{
		{"dimension too small", []string{"#"}, 1, 0, 0},
		{"dimension too large", []string{"#"}, space.MaxDimensions + 1, 0, 0},
		{"no rows", nil, 3, 0, 0},
		{"unknown character", []string{"...", ".x.", "..."}, 3, 2, 2},
		{"ragged row", []string{"...", "....", "..."}, 3, 2, 0},
		{"blank row inside", []string{"#..", "", "..#"}, 3, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLines(tt.lines, tt.dim)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParse))

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Line)
			assert.Equal(t, tt.column, pe.Column)
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := LoadLines([]string{"#?"}, 3)
	require.Error(t, err)
	assert.Equal(t, `seed: line 1, column 2: unexpected character '?': "#?"`, err.Error())
}

func TestLoadRowsLongerThanScannerBuffer(t *testing.T) {
	const width = 70001
	pattern := strings.Repeat(".", width-1) + "#\n" + strings.Repeat(".", width) + "\n"
	s, err := Load(strings.NewReader(pattern), 3)
	require.NoError(t, err)
	assert.Equal(t, []space.Coordinate{space.NewCoordinate(width-1, 0, 0)}, s.Coordinates())

	_, err = Load(strings.NewReader(strings.Repeat(".", width)+"\n"+strings.Repeat(".", width+1)), 3)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
}

func TestLoadNonASCII(t *testing.T) {
	_, err := LoadLines([]string{"#é."}, 3)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Line)
	assert.Equal(t, 2, pe.Column)
	assert.Contains(t, pe.Error(), "unexpected character 'é'")

	_, err = LoadLines([]string{"é#.", "..."}, 3)
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 1, pe.Column)

	//the width is counted in characters, so the error is about 'é', not the row length
	_, err = LoadLines([]string{"...", ".é."}, 3)
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 2, pe.Column)
}
