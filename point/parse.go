package point

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseLine parses a single "x,y,z" triple. Surrounding whitespace, on the line
// and around each field, is ignored.
//
// Errors: ErrArity, ErrCoordinate, ErrRange (all wrapped with the offending text).
func ParseLine(s string) (Point, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: %q has %d field(s)", ErrArity, s, len(fields))
	}

	var c [3]int64
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return Point{}, fmt.Errorf("%w: %q", ErrCoordinate, f)
		}
		if v > MaxCoordinate || v < -MaxCoordinate {
			return Point{}, fmt.Errorf("%w: %d", ErrRange, v)
		}
		c[i] = v
	}

	return Point{X: c[0], Y: c[1], Z: c[2]}, nil
}

// Parse reads one point per line from r, skipping blank lines.
// The first malformed line aborts parsing; its 1-based line number is included
// in the returned error, which still matches the sentinel via errors.Is.
func Parse(r io.Reader) ([]Point, error) {
	var pts []Point
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		p, err := ParseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("point: read input: %w", err)
	}

	return pts, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]Point, error) {
	return Parse(strings.NewReader(s))
}
