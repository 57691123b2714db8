package pairs

import (
	"math"

	"github.com/katalvlaran/agglom/point"
)

// maxRoot is floor(sqrt(MaxInt64)); stepping past it would overflow r*r.
const maxRoot int64 = 3037000499

// ISqrt returns floor(sqrt(n)) exactly. The float estimate is corrected in both
// directions, so the result never depends on float64 rounding. Panics if n < 0.
func ISqrt(n int64) int64 {
	if n < 0 {
		panic("pairs: ISqrt of negative number")
	}
	r := int64(math.Sqrt(float64(n)))
	if r > maxRoot {
		r = maxRoot
	}
	for r*r > n {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= n {
		r++
	}

	return r
}

// SquaredDistance returns dx²+dy²+dz² between a and b.
// Inputs within ±point.MaxCoordinate cannot overflow.
func SquaredDistance(a, b point.Point) int64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	return dx*dx + dy*dy + dz*dz
}

// Distance returns the floor of the Euclidean distance between a and b.
func Distance(a, b point.Point) int64 {
	return ISqrt(SquaredDistance(a, b))
}
