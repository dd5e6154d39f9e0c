// Package backtrace reconstructs a path from the parent links recorded by a
// breadth-first search.
//
// Parents are stored in a dense []int indexed by cell or node index.
// NoParent marks "never discovered" and the search root, so index 0 is a
// valid parent like any other.
package backtrace

import (
	"errors"
	"fmt"
)

// NoParent marks an index without a predecessor.
const NoParent = -1

var (
	// ErrUnreachable indicates that goal was never discovered from start.
	ErrUnreachable = errors.New("backtrace: goal unreachable from start")

	// ErrOutOfRange indicates start or goal outside the parent slice.
	ErrOutOfRange = errors.New("backtrace: index out of range")
)

// NewParents returns a parent slice of length n filled with NoParent.
func NewParents(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = NoParent
	}
	return p
}

// Walk follows parent links from goal back to start and returns the path in
// start→goal order, both ends included.
//
// The walk fails with ErrUnreachable when the chain stops at NoParent before
// reaching start, or when it is longer than len(parent) (a corrupt, cyclic
// parent table).
//
// Complexity: O(path length).
func Walk(parent []int, start, goal int) ([]int, error) {
	n := len(parent)
	if start < 0 || start >= n || goal < 0 || goal >= n {
		return nil, fmt.Errorf("%w: start=%d goal=%d len=%d", ErrOutOfRange, start, goal, n)
	}

	path := []int{goal}
	for cur := goal; cur != start; {
		prev := parent[cur]
		if prev == NoParent {
			return nil, ErrUnreachable
		}
		if prev < 0 || prev >= n || len(path) > n {
			return nil, fmt.Errorf("%w: corrupt parent link %d→%d", ErrUnreachable, cur, prev)
		}
		path = append(path, prev)
		cur = prev
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
