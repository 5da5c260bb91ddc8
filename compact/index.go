package compact

import (
	"sort"

	"github.com/katalvlaran/bellman/mdp"
)

// indexMap is a bijection between state values and dense integer indices.
//
// Two strategies share one type:
//   - less == nil: unordered — values take indices in insertion order and
//     are found by equality scan, O(n) per operation.
//   - less != nil: ordered — values are kept sorted under less and found
//     by binary search, O(log n) lookup, O(n) insert (shift).
//
// The map is mutated only during Build, before any successor triple is
// recorded; indices are stable from then on.
type indexMap struct {
	less   func(a, b mdp.State) bool
	values []mdp.State
}

func newIndexMap(less func(a, b mdp.State) bool) *indexMap {
	return &indexMap{less: less}
}

// len returns the number of indexed values.
func (m *indexMap) len() int { return len(m.values) }

// at returns the value at index i. i must be in [0, len).
func (m *indexMap) at(i int) mdp.State { return m.values[i] }

// lookup returns the index of v, or false when v is not indexed.
func (m *indexMap) lookup(v mdp.State) (int, bool) {
	if m.less == nil {
		for i, have := range m.values {
			if have == v {
				return i, true
			}
		}

		return 0, false
	}

	i := m.search(v)
	if i < len(m.values) && !m.less(v, m.values[i]) {
		return i, true
	}

	return 0, false
}

// insert adds v if absent. It returns v's index and whether v was newly
// inserted. Ordered insertion shifts the indices of greater values, which
// is why Build indexes every state before recording any triple.
func (m *indexMap) insert(v mdp.State) (int, bool) {
	if m.less == nil {
		if i, ok := m.lookup(v); ok {
			return i, false
		}
		m.values = append(m.values, v)

		return len(m.values) - 1, true
	}

	i := m.search(v)
	if i < len(m.values) && !m.less(v, m.values[i]) {
		return i, false
	}

	// Open a slot at position i, keeping the slice sorted.
	m.values = append(m.values, nil)
	copy(m.values[i+1:], m.values[i:])
	m.values[i] = v

	return i, true
}

// search returns the smallest index i with !less(values[i], v),
// i.e. the insertion position of v under the total order.
func (m *indexMap) search(v mdp.State) int {
	return sort.Search(len(m.values), func(i int) bool {
		return !m.less(m.values[i], v)
	})
}
