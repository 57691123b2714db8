package partition_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/agglom/partition"
)

// checkInvariants asserts the registry invariants: every point has at most one
// owner, owners agree with membership sets, live sets are disjoint, and the
// clustered points plus the unmerged ones add up to N.
func checkInvariants(t *testing.T, p *partition.Partition) {
	t.Helper()

	seen := make(map[int]partition.ClusterID)
	total := 0
	for _, id := range p.Clusters() {
		members := p.Members(id)
		require.Len(t, members, p.Size(id))
		require.GreaterOrEqual(t, len(members), 2, "live cluster %d smaller than a pair", id)
		for _, m := range members {
			prev, dup := seen[m]
			require.False(t, dup, "point %d in clusters %d and %d", m, prev, id)
			seen[m] = id

			owner, ok := p.Find(m)
			require.True(t, ok)
			require.Equal(t, id, owner, "point %d owner mismatch", m)
		}
		total += len(members)
	}
	for i := 0; i < p.N(); i++ {
		if _, ok := seen[i]; !ok {
			_, has := p.Find(i)
			require.False(t, has, "point %d has an owner but no membership", i)
		}
	}
	require.Equal(t, p.N(), total+p.Unmerged())
	require.Equal(t, len(p.Clusters()), p.Len())
}

// TestUnion_Cases walks through all four branches of Union.
func TestUnion_Cases(t *testing.T) {
	p := partition.New(6)
	assert.Equal(t, 6, p.Unmerged())
	assert.Zero(t, p.Len())

	// 1. neither point has a cluster.
	assert.Equal(t, partition.Created, p.Union(0, 1))
	// 2. exactly one has a cluster, from either side.
	assert.Equal(t, partition.Extended, p.Union(2, 1))
	assert.Equal(t, partition.Created, p.Union(3, 4))
	assert.Equal(t, partition.Extended, p.Union(3, 5))
	assert.Equal(t, 2, p.Len())
	// 4. same cluster.
	assert.Equal(t, partition.Unchanged, p.Union(0, 2))
	// 3. different clusters.
	assert.Equal(t, partition.Merged, p.Union(2, 5))

	assert.Equal(t, 1, p.Len())
	assert.Zero(t, p.Unmerged())
	assert.True(t, p.Complete())
	id, ok := p.Find(4)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, p.Members(id))
	checkInvariants(t, p)
}

// TestUnion_SelfPair never turns a single point into a cluster.
func TestUnion_SelfPair(t *testing.T) {
	p := partition.New(2)
	assert.Equal(t, partition.Unchanged, p.Union(1, 1))
	_, ok := p.Find(1)
	assert.False(t, ok)
	assert.Equal(t, 2, p.Unmerged())
}

// TestUnion_AbsorbsSmaller keeps the id of the larger cluster and retires the other.
func TestUnion_AbsorbsSmaller(t *testing.T) {
	p := partition.New(7)
	p.Union(0, 1) // id 0, size 2
	p.Union(2, 3) // id 1
	p.Union(2, 4)
	p.Union(2, 5) // id 1, size 4

	small, _ := p.Find(0)
	large, _ := p.Find(2)
	require.NotEqual(t, small, large)

	assert.Equal(t, partition.Merged, p.Union(0, 5))
	got, _ := p.Find(0)
	assert.Equal(t, large, got)
	assert.Nil(t, p.Members(small), "absorbed id must be retired")
	assert.Zero(t, p.Size(small))
	assert.Equal(t, 6, p.Size(large))
	assert.False(t, p.Complete(), "point 6 is still unmerged")
	checkInvariants(t, p)
}

// TestUnion_TieKeepsLowerID absorbs the higher id when sizes are equal.
func TestUnion_TieKeepsLowerID(t *testing.T) {
	p := partition.New(4)
	p.Union(0, 1) // id 0
	p.Union(2, 3) // id 1
	p.Union(3, 1)

	for i := 0; i < 4; i++ {
		id, ok := p.Find(i)
		require.True(t, ok)
		assert.Equal(t, partition.ClusterID(0), id)
	}
}

// TestSizesAndGroups reports clusters largest-first and groups by id.
func TestSizesAndGroups(t *testing.T) {
	p := partition.New(8)
	p.Union(5, 6)
	p.Union(0, 1)
	p.Union(0, 2)
	p.Union(3, 4)
	p.Union(3, 7)
	p.Union(4, 2) // merges {0,1,2} with {3,4,7}

	assert.Equal(t, []int{6, 2}, p.Sizes())
	assert.Equal(t, 6, p.Largest())
	want := [][]int{{5, 6}, {0, 1, 2, 3, 4, 7}}
	if diff := cmp.Diff(want, p.Groups()); diff != "" {
		t.Errorf("Groups mismatch (-want +got):\n%s", diff)
	}
}

// TestEmpty covers the zero-point partition.
func TestEmpty(t *testing.T) {
	p := partition.New(0)
	assert.Zero(t, p.Len())
	assert.Zero(t, p.Unmerged())
	assert.Zero(t, p.Largest())
	assert.Empty(t, p.Sizes())
	assert.Empty(t, p.Groups())
	assert.False(t, p.Complete())
}

// TestPanics rejects out-of-range indexes and negative sizes.
func TestPanics(t *testing.T) {
	p := partition.New(3)
	assert.Panics(t, func() { p.Union(0, 3) })
	assert.Panics(t, func() { p.Union(-1, 0) })
	assert.Panics(t, func() { p.Find(3) })
	assert.Panics(t, func() { partition.New(-1) })
}

// TestOutcomeString names every outcome.
func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "unchanged", partition.Unchanged.String())
	assert.Equal(t, "created", partition.Created.String())
	assert.Equal(t, "extended", partition.Extended.String())
	assert.Equal(t, "merged", partition.Merged.String())
	assert.Equal(t, "unknown", partition.Outcome(42).String())
}

// TestRandomUnions_Invariants hammers the registry with random unions and checks
// the invariants after every step against a naive reference labelling.
func TestRandomUnions_Invariants(t *testing.T) {
	const n = 60
	r := rand.New(rand.NewSource(2024))
	p := partition.New(n)

	// label[i] is a naive component label; -1 means "never merged".
	label := make([]int, n)
	for i := range label {
		label[i] = -1
	}
	nextLabel := 0

	for step := 0; step < 400; step++ {
		a, b := r.Intn(n), r.Intn(n)
		p.Union(a, b)

		if a != b {
			switch la, lb := label[a], label[b]; {
			case la == -1 && lb == -1:
				label[a], label[b] = nextLabel, nextLabel
				nextLabel++
			case la == -1:
				label[a] = lb
			case lb == -1:
				label[b] = la
			case la != lb:
				for i := range label {
					if label[i] == lb {
						label[i] = la
					}
				}
			}
		}

		checkInvariants(t, p)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				ci, oki := p.Find(i)
				cj, okj := p.Find(j)
				same := oki && okj && ci == cj
				want := label[i] != -1 && label[i] == label[j]
				require.Equal(t, want, same, "step %d: points %d,%d", step, i, j)
			}
		}
	}
}
