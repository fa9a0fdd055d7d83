// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"strconv"

	"github.com/avawg/densub/core"
)

// idAt returns the decimal-string vertex ID for insertion index i.
func idAt(i int) string {
	return strconv.Itoa(i)
}

// addVertices adds n vertices "0".."n-1" to g via idAt.
func addVertices(g *core.Graph, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(idAt(i)); err != nil {
			return fmt.Errorf("AddVertex(%s): %w", idAt(i), err)
		}
	}
	return nil
}

// Complete builds the complete simple graph K_n (n >= 1): every unordered
// pair {i,j}, i<j, connected by an unweighted edge.
func Complete(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("Complete: n=%d < min=1: %w", n, ErrTooFewVertices)
	}

	g := core.NewGraph()
	if err := addVertices(g, n); err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, err := g.AddEdge(idAt(i), idAt(j), 0); err != nil {
				return nil, fmt.Errorf("Complete: AddEdge(%s→%s): %w", idAt(i), idAt(j), err)
			}
		}
	}
	return g, nil
}

// Cycle builds an n-vertex simple cycle C_n (n >= 3): edges i->(i+1)%n.
func Cycle(n int) (*core.Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("Cycle: n=%d < min=3: %w", n, ErrTooFewVertices)
	}

	g := core.NewGraph()
	if err := addVertices(g, n); err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}

	for i := 0; i < n; i++ {
		u, v := idAt(i), idAt((i+1)%n)
		if _, err := g.AddEdge(u, v, 0); err != nil {
			return nil, fmt.Errorf("Cycle: AddEdge(%s→%s): %w", u, v, err)
		}
	}
	return g, nil
}

// Path builds a simple path P_n (n >= 2): edges (i-1)->i for i=1..n-1.
func Path(n int) (*core.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("Path: n=%d < min=2: %w", n, ErrTooFewVertices)
	}

	g := core.NewGraph()
	if err := addVertices(g, n); err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}

	for i := 1; i < n; i++ {
		u, v := idAt(i-1), idAt(i)
		if _, err := g.AddEdge(u, v, 0); err != nil {
			return nil, fmt.Errorf("Path: AddEdge(%s→%s): %w", u, v, err)
		}
	}
	return g, nil
}
