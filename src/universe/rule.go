package universe

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

//Rule computes the next state of a cell from its current state and the number of its active neighbours
//rules must be pure: the engines may call them concurrently and in any order
type Rule func(current Cell, activeNeighbours int) Cell

var ErrInvalidRule = errors.New("invalid rule")

//Conway is the default rule: survival on 2 or 3 active neighbours, birth on exactly 3
func Conway(current Cell, activeNeighbours int) Cell {
	switch {
	case current == Active && (activeNeighbours == 2 || activeNeighbours == 3):
		return Active
	case current == Inactive && activeNeighbours == 3:
		return Active
	}
	return Inactive
}

//ParseRule parses the life-like birth/survival notation, e.g. "B3/S23".
//Counts are single digits unless separated by commas, so "S2,3,10" allows
//the larger neighbour counts of higher dimensions. The parts may come in
//either order and are case-insensitive. B0 is rejected: birth without
//neighbours would activate the whole unbounded space.
func ParseRule(notation string) (Rule, error) {
	var birth, survive map[int]bool
	parts := strings.Split(strings.TrimSpace(notation), "/")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w %q: want B<counts>/S<counts>", ErrInvalidRule, notation)
	}
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("%w %q: empty part", ErrInvalidRule, notation)
		}
		counts, err := parseCounts(p[1:])
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidRule, notation, err)
		}
		switch p[0] {
		case 'B', 'b':
			if birth != nil {
				return nil, fmt.Errorf("%w %q: birth given twice", ErrInvalidRule, notation)
			}
			birth = counts
		case 'S', 's':
			if survive != nil {
				return nil, fmt.Errorf("%w %q: survival given twice", ErrInvalidRule, notation)
			}
			survive = counts
		default:
			return nil, fmt.Errorf("%w %q: part %q must start with B or S", ErrInvalidRule, notation, p)
		}
	}
	if birth[0] {
		return nil, fmt.Errorf("%w %q: B0 is not supported on an unbounded space", ErrInvalidRule, notation)
	}
	return func(current Cell, n int) Cell {
		if current == Active {
			return Cell(survive[n])
		}
		return Cell(birth[n])
	}, nil
}

func parseCounts(s string) (map[int]bool, error) {
	counts := map[int]bool{}
	if s == "" {
		return counts, nil
	}
	var fields []string
	if strings.Contains(s, ",") {
		fields = strings.Split(s, ",")
	} else {
		fields = strings.Split(s, "")
	}
	for _, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad neighbour count %q", f)
		}
		counts[n] = true
	}
	return counts, nil
}
