package pairs

import (
	"errors"
	"fmt"
)

// ErrNegativeWorkers indicates a negative worker count passed to BuildParallel.
var ErrNegativeWorkers = errors.New("pairs: worker count must be non-negative")

// Pair is a candidate merge: two point indexes with I < J and their integer distance.
type Pair struct {
	I, J int   // indexes into the point slice, I < J
	Dist int64 // floor(sqrt(dx²+dy²+dz²))
}

// String renders the pair as "(i,j)=dist".
func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)=%d", p.I, p.J, p.Dist)
}

// Count returns the number of unordered pairs over n points, C(n,2).
func Count(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}
