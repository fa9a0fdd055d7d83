package maxflow

import "math"

// EdmondsKarp computes the maximum flow from s to t by repeated BFS
// shortest-path augmentation.
//
// Complexity: O(V · E²).
func EdmondsKarp(net *Network, s, t int) (value float64, sourceSide []bool) {
	for {
		path, bottleneck := bfsAugmentingPath(net, s, t)
		if path == nil || bottleneck <= 0 {
			break
		}
		for _, e := range path {
			net.Push(e, bottleneck)
		}
		value += bottleneck
	}

	return value, MinCut(net, s)
}

// bfsAugmentingPath finds the shortest (fewest-edge) s→t path over
// positive-residual edges, returning the edge-index path and its
// bottleneck residual capacity. Returns (nil, 0) if no such path exists.
func bfsAugmentingPath(net *Network, s, t int) ([]int, float64) {
	parentEdge := make([]int, net.NumNodes())
	for i := range parentEdge {
		parentEdge[i] = -1
	}
	visited := make([]bool, net.NumNodes())
	visited[s] = true

	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == t {
			break
		}
		for _, e := range net.Successors(u) {
			if net.Residual(e) <= 0 {
				continue
			}
			v := net.EdgeTo(e)
			if visited[v] {
				continue
			}
			visited[v] = true
			parentEdge[v] = e
			queue = append(queue, v)
		}
	}

	if !visited[t] {
		return nil, 0
	}

	var path []int
	bottleneck := math.Inf(1)
	for v := t; v != s; {
		e := parentEdge[v]
		path = append([]int{e}, path...)
		if r := net.Residual(e); r < bottleneck {
			bottleneck = r
		}
		v = net.to[rev(e)]
	}

	return path, bottleneck
}
