package seed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"cubelife/src/space"
)

//ErrParse is matched by every error the loader returns for a malformed seed
var ErrParse = errors.New("seed: parse error")

//ParseError describes a malformed seed
//Line and Column are 1-based, Column counts characters; zero means the error is not tied to a position
type ParseError struct {
	Line   int
	Column int
	Text   string
	Msg    string
}

func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("seed: line %d, column %d: %s: %q", e.Line, e.Column, e.Msg, e.Text)
	case e.Line > 0:
		return fmt.Sprintf("seed: line %d: %s: %q", e.Line, e.Msg, e.Text)
	default:
		return "seed: " + e.Msg
	}
}

func (e *ParseError) Is(target error) bool { return target == ErrParse }

//Load reads a seed pattern from r and embeds it into dim dimensions
//rows may be of any length
func Load(r io.Reader, dim int) (*space.Space, error) {
	var lines []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading seed: %w", err)
		}
	}
	return LoadLines(lines, dim)
}

//LoadLines parses one row per line
//rows are the y axis and characters the x axis, both counted from 0 at the top-left corner
//only '#' and '.' are accepted and every row must have the width of the first one
//trailing empty lines are ignored
func LoadLines(lines []string, dim int) (*space.Space, error) {
	if dim < 2 || dim > space.MaxDimensions {
		return nil, &ParseError{Msg: fmt.Sprintf("unsupported dimension %d, want 2..%d", dim, space.MaxDimensions)}
	}

	rows := trimRows(lines)
	if len(rows) == 0 {
		return nil, &ParseError{Msg: "empty pattern"}
	}

	s := space.New(dim)
	width := utf8.RuneCountInString(rows[0])
	axes := make([]int, dim)
	for y, row := range rows {
		if row == "" {
			return nil, &ParseError{Line: y + 1, Text: row, Msg: "blank row inside pattern"}
		}
		x := 0
		for i := 0; i < len(row); x++ {
			r, size := utf8.DecodeRuneInString(row[i:])
			i += size
			switch r {
			case space.ActiveChar:
				axes[0], axes[1] = x, y
				s.Add(space.NewCoordinate(axes...))
			case space.InactiveChar:
			default:
				return nil, &ParseError{Line: y + 1, Column: x + 1, Text: row, Msg: fmt.Sprintf("unexpected character %q", r)}
			}
		}
		if x != width {
			return nil, &ParseError{Line: y + 1, Text: row, Msg: fmt.Sprintf("row width %d, want %d", x, width)}
		}
	}
	return s, nil
}

func trimRows(lines []string) []string {
	rows := make([]string, len(lines))
	for i, l := range lines {
		rows[i] = strings.TrimSuffix(l, "\r")
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return rows
}
