package partition

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Partition is the cluster registry over point indexes 0..N-1.
type Partition struct {
	owner   []ClusterID
	members map[ClusterID]*roaring.Bitmap
	nextID  ClusterID
	merged  int // points with an owner
}

// New returns an empty Partition over n points, all unmerged.
func New(n int) *Partition {
	if n < 0 {
		panic(fmt.Sprintf("partition: negative size %d", n))
	}
	owner := make([]ClusterID, n)
	for i := range owner {
		owner[i] = NoCluster
	}

	return &Partition{
		owner:   owner,
		members: make(map[ClusterID]*roaring.Bitmap),
	}
}

// N returns the number of points the partition was created for.
func (p *Partition) N() int { return len(p.owner) }

// Find returns the cluster of point i, or (NoCluster, false) if i is unmerged.
// Panics if i is out of range.
func (p *Partition) Find(i int) (ClusterID, bool) {
	p.check(i)
	id := p.owner[i]

	return id, id != NoCluster
}

// Union puts points a and b into the same cluster and reports which case applied.
// After Union(a, b) with a != b, Find(a) == Find(b).
// Panics if either index is out of range.
func (p *Partition) Union(a, b int) Outcome {
	p.check(a)
	p.check(b)
	if a == b {
		return Unchanged
	}

	ca, cb := p.owner[a], p.owner[b]
	switch {
	case ca == NoCluster && cb == NoCluster:
		id := p.nextID
		p.nextID++
		bm := roaring.New()
		bm.Add(uint32(a))
		bm.Add(uint32(b))
		p.members[id] = bm
		p.owner[a], p.owner[b] = id, id
		p.merged += 2
		return Created

	case ca == NoCluster:
		p.join(a, cb)
		return Extended

	case cb == NoCluster:
		p.join(b, ca)
		return Extended

	case ca == cb:
		return Unchanged

	default:
		p.absorb(ca, cb)
		return Merged
	}
}

// join adds unmerged point i to cluster id.
func (p *Partition) join(i int, id ClusterID) {
	p.members[id].Add(uint32(i))
	p.owner[i] = id
	p.merged++
}

// absorb combines clusters x and y. The smaller one (or, on a size tie, the
// one with the higher id) is retired and its members re-pointed.
func (p *Partition) absorb(x, y ClusterID) {
	keep, drop := x, y
	sk, sd := p.members[keep].GetCardinality(), p.members[drop].GetCardinality()
	if sd > sk || (sd == sk && drop < keep) {
		keep, drop = drop, keep
	}

	gone := p.members[drop]
	it := gone.Iterator()
	for it.HasNext() {
		p.owner[it.Next()] = keep
	}
	p.members[keep].Or(gone)
	delete(p.members, drop)
}

// Members materializes the point indexes of cluster id in ascending order.
// It returns nil for an unknown or retired id.
func (p *Partition) Members(id ClusterID) []int {
	bm, ok := p.members[id]
	if !ok {
		return nil
	}
	raw := bm.ToArray()
	out := make([]int, len(raw))
	for k, v := range raw {
		out[k] = int(v)
	}

	return out
}

// Size returns the number of points in cluster id, 0 for an unknown id.
func (p *Partition) Size(id ClusterID) int {
	bm, ok := p.members[id]
	if !ok {
		return 0
	}

	return int(bm.GetCardinality())
}

// Len returns the number of live clusters.
func (p *Partition) Len() int { return len(p.members) }

// Unmerged returns the number of points that belong to no cluster.
func (p *Partition) Unmerged() int { return len(p.owner) - p.merged }

// Clusters returns the live cluster ids in ascending order.
func (p *Partition) Clusters() []ClusterID {
	ids := make([]ClusterID, 0, len(p.members))
	for id := range p.members {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Sizes returns the sizes of all live clusters, largest first.
func (p *Partition) Sizes() []int {
	sizes := make([]int, 0, len(p.members))
	for _, bm := range p.members {
		sizes = append(sizes, int(bm.GetCardinality()))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// Largest returns the size of the biggest live cluster, 0 when there is none.
func (p *Partition) Largest() int {
	best := 0
	for _, bm := range p.members {
		if s := int(bm.GetCardinality()); s > best {
			best = s
		}
	}

	return best
}

// Complete reports whether a single cluster holds all N points.
// An empty partition (N == 0) is never complete.
func (p *Partition) Complete() bool {
	return len(p.members) == 1 && p.merged == len(p.owner)
}

// Groups materializes every live cluster, ordered by ClusterID.
func (p *Partition) Groups() [][]int {
	ids := p.Clusters()
	out := make([][]int, len(ids))
	for k, id := range ids {
		out[k] = p.Members(id)
	}

	return out
}

func (p *Partition) check(i int) {
	if i < 0 || i >= len(p.owner) {
		panic(fmt.Sprintf("partition: point index %d out of range [0,%d)", i, len(p.owner)))
	}
}
