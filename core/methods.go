package core

// AddVertex inserts id into the graph if absent, assigning it the next dense
// index. If the vertex already exists this is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.byID[id]; ok {
		return nil
	}

	v := &Vertex{ID: id, Index: len(g.vertices)}
	g.vertices = append(g.vertices, v)
	g.byID[id] = v
	g.adjacency = append(g.adjacency, make(map[int]struct{}))

	return nil
}

// AddEdge inserts an undirected edge between from and to, auto-adding either
// endpoint if missing. Self-loops are rejected (ErrSelfLoop). A repeated
// (from, to) pair is coalesced into the existing edge and reported via the
// first return value (added) being false, matching the "parallel edges coalesced"
// contract of §3 - the edge list is a set, not a multiset.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (added bool, err error) {
	if from == "" || to == "" {
		return false, ErrEmptyVertexID
	}
	if from == to {
		return false, ErrSelfLoop
	}
	if !g.weighted && weight != 0 {
		return false, ErrBadWeight
	}

	if err := g.AddVertex(from); err != nil {
		return false, err
	}
	if err := g.AddVertex(to); err != nil {
		return false, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	fi, ti := g.byID[from].Index, g.byID[to].Index
	if _, exists := g.adjacency[fi][ti]; exists {
		return false, nil
	}

	g.adjacency[fi][ti] = struct{}{}
	g.adjacency[ti][fi] = struct{}{}

	return true, nil
}

// Weighted reports whether the graph was constructed with WithWeighted.
func (g *Graph) Weighted() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weighted
}

// HasVertex reports whether id is present in the graph.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.byID[id]
	return ok
}

// Index returns the dense index for id, and false if id is not present.
func (g *Graph) Index(id string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.byID[id]
	if !ok {
		return 0, false
	}
	return v.Index, true
}

// NumVertices returns |V|.
func (g *Graph) NumVertices() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// NumEdges returns |E|.
func (g *Graph) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, nbrs := range g.adjacency {
		total += len(nbrs)
	}
	return total / 2
}

// Vertices returns every vertex in index order (0..|V|-1). The returned
// slice is a fresh copy of the internal slice header; callers must not
// mutate the pointed-to Vertex values.
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// VertexAt returns the vertex at dense index i.
func (g *Graph) VertexAt(i int) *Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.vertices[i]
}

// NeighborIndices returns the neighbours of the vertex at index u as dense
// indices, unordered.
//
// Complexity: O(deg(u)).
func (g *Graph) NeighborIndices(u int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs := g.adjacency[u]
	out := make([]int, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	return out
}

// HasEdgeIdx reports whether u and v (dense indices) are adjacent.
func (g *Graph) HasEdgeIdx(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]
	return ok
}

// Degree returns the degree of the vertex at dense index u.
func (g *Graph) Degree(u int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[u])
}

// Induced returns a new Graph containing exactly the vertices in ids and the
// edges of the receiver with both endpoints in ids. Used by the driver to
// materialise G[S*] (§4.7 step 4).
func (g *Graph) Induced(ids []string) *Graph {
	sub := NewGraph()
	if g.weighted {
		sub.weighted = true
	}

	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
		_ = sub.AddVertex(id)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, v := range g.vertices {
		if _, ok := keep[v.ID]; !ok {
			continue
		}
		for w := range g.adjacency[v.Index] {
			other := g.vertices[w]
			if other.Index <= v.Index {
				continue // each undirected edge emitted once
			}
			if _, ok := keep[other.ID]; !ok {
				continue
			}
			_, _ = sub.AddEdge(v.ID, other.ID, 0)
		}
	}

	return sub
}
