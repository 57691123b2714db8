package pairs

import "sort"

// Sort orders ps ascending by Dist. The sort is stable, so pairs at equal
// distance keep their relative input order; no other field is compared.
func Sort(ps []Pair) {
	sort.SliceStable(ps, func(i, j int) bool {
		return ps[i].Dist < ps[j].Dist
	})
}

// Order is the global merge order: a sorted pair sequence consumed front to back.
// It is not safe for concurrent use.
type Order struct {
	pairs []Pair
	next  int
}

// NewOrder copies ps, sorts the copy with Sort and returns it as an Order.
// The caller's slice is left untouched.
func NewOrder(ps []Pair) *Order {
	sorted := make([]Pair, len(ps))
	copy(sorted, ps)
	Sort(sorted)

	return &Order{pairs: sorted}
}

// Next consumes and returns the front pair. ok is false once the order is exhausted.
func (o *Order) Next() (p Pair, ok bool) {
	if o.next >= len(o.pairs) {
		return Pair{}, false
	}
	p = o.pairs[o.next]
	o.next++

	return p, true
}

// Peek returns the front pair without consuming it.
func (o *Order) Peek() (Pair, bool) {
	if o.next >= len(o.pairs) {
		return Pair{}, false
	}

	return o.pairs[o.next], true
}

// Consumed reports how many pairs Next has handed out.
func (o *Order) Consumed() int { return o.next }

// Remaining reports how many pairs are still to be consumed.
func (o *Order) Remaining() int { return len(o.pairs) - o.next }

// Len reports the total number of pairs in the order.
func (o *Order) Len() int { return len(o.pairs) }

// Pairs exposes the full sorted sequence, consumed or not. Callers must not modify it.
func (o *Order) Pairs() []Pair { return o.pairs }
