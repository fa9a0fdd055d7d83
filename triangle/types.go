package triangle

// Triangle is an ordered triple of dense vertex indices with A < B < C,
// matching the total order on V induced by core.Graph's insertion-order
// indexing.
type Triangle struct {
	A, B, C int
}

// EdgeKey identifies an undirected edge by its two dense vertex indices,
// stored with U < V so it can key a map regardless of discovery order.
type EdgeKey struct {
	U, V int
}

func newTriangle(x, y, z int) Triangle {
	if x > y {
		x, y = y, x
	}
	if y > z {
		y, z = z, y
	}
	if x > y {
		x, y = y, x
	}
	return Triangle{A: x, B: y, C: z}
}

func newEdgeKey(u, v int) EdgeKey {
	if u > v {
		u, v = v, u
	}
	return EdgeKey{U: u, V: v}
}
