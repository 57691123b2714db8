package point

import (
	"errors"
	"strconv"
)

// MaxCoordinate bounds the magnitude of every coordinate. With |c| ≤ 2^29 a
// per-axis delta fits in 2^30, so dx²+dy²+dz² < 2^63 and never overflows int64.
const MaxCoordinate int64 = 1 << 29

var (
	// ErrArity indicates a line that does not contain exactly three fields.
	ErrArity = errors.New("point: expected three comma-separated coordinates")
	// ErrCoordinate indicates a field that is not a base-10 integer.
	ErrCoordinate = errors.New("point: coordinate is not an integer")
	// ErrRange indicates a coordinate whose magnitude exceeds MaxCoordinate.
	ErrRange = errors.New("point: coordinate out of range")
	// ErrNoInput indicates that none of the candidate input paths exist.
	ErrNoInput = errors.New("point: no input file found")
)

// DefaultCandidates lists the input paths probed by Locate when the caller
// supplies none, in priority order.
var DefaultCandidates = []string{
	"inputs/day08/input.txt",
	"input/day08.txt",
	"inputs/day08.txt",
}

// Point is a position in 3-D integer space.
type Point struct {
	X, Y, Z int64
}

// String renders p as "x,y,z", the same form ParseLine accepts.
func (p Point) String() string {
	b := make([]byte, 0, 32)
	b = strconv.AppendInt(b, p.X, 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, p.Y, 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, p.Z, 10)

	return string(b)
}
