package maxflow

import "math"

// activeQueue abstracts the selection rule over active (excess > 0,
// non-terminal) vertices: FIFO uses a plain queue, HLPP a max-heap keyed
// on height. Re-insertion is lazy: a height recorded at push time may be
// stale by pop time, which changes processing order but not correctness.
type activeQueue interface {
	push(v, height int)
	pop() (int, bool)
	empty() bool
}

// preflowPush is the engine shared by PushRelabelFIFO and PushRelabelHLPP:
// both run the identical initialisation, push, relabel, and gap-heuristic
// steps and differ only in how the active-vertex set is ordered.
func preflowPush(net *Network, s, t int, active activeQueue) (float64, []bool) {
	n := net.NumNodes()
	height := reverseBFSHeights(net, t, n)

	if height[s] < 0 {
		return 0, MinCut(net, s)
	}
	height[s] = n
	for v := 0; v < n; v++ {
		if height[v] < 0 {
			height[v] = n + 1
		}
	}

	excess := make([]float64, n)
	gap := make([]int, 2*n+2)

	enqueueIfNewlyActive := func(v int) {
		if v != s && v != t && excess[v] == 0 {
			active.push(v, height[v])
		}
	}

	pushEdge := func(e int) {
		u := net.to[rev(e)]
		v := net.EdgeTo(e)
		flow := math.Min(excess[u], net.Residual(e))
		if flow <= 0 {
			return
		}
		enqueueIfNewlyActive(v)
		net.Push(e, flow)
		excess[u] -= flow
		excess[v] += flow
	}

	relabel := func(u int) {
		minHeight := 2 * n
		for _, e := range net.Successors(u) {
			if net.Residual(e) <= 0 {
				continue
			}
			if h := height[net.EdgeTo(e)]; h < minHeight {
				minHeight = h
			}
		}
		height[u] = minHeight + 1
	}

	gapHeuristic := func(h int) {
		for v := 0; v < n; v++ {
			if v != s && h < height[v] && height[v] <= n {
				height[v] = n + 1
			}
		}
		for i := h + 1; i <= n; i++ {
			gap[i] = 0
		}
	}

	discharge := func(u int) {
		for excess[u] > 0 {
			for _, e := range net.Successors(u) {
				v := net.EdgeTo(e)
				if height[u] == height[v]+1 && net.Residual(e) > 0 {
					pushEdge(e)
					if excess[u] == 0 {
						break
					}
				}
			}
			if excess[u] > 0 {
				h := height[u]
				relabel(u)
				gap[h]--
				gap[height[u]]++
				if h < n && gap[h] == 0 {
					gapHeuristic(h)
				}
			}
		}
	}

	excess[s] = math.Inf(1)
	for _, e := range net.Successors(s) {
		pushEdge(e)
	}

	for v := 0; v < n; v++ {
		if v != s && v != t {
			gap[height[v]]++
		}
	}

	for !active.empty() {
		u, ok := active.pop()
		if !ok {
			break
		}
		discharge(u)
	}

	return excess[t], MinCut(net, s)
}

// reverseBFSHeights assigns height[v] = distance from t in the reverse
// direction over edges whose forward capacity is positive (the residual
// graph before any push has occurred). Unreached vertices get height -1,
// resolved by the caller into the n+1 fallback.
func reverseBFSHeights(net *Network, t, n int) []int {
	predecessors := make([][]int, n)
	for e := 0; e < len(net.to); e += 2 {
		if net.forwardCapacity[e] <= 0 {
			continue
		}
		v := net.to[e]
		u := net.to[e^1]
		predecessors[v] = append(predecessors[v], u)
	}

	height := make([]int, n)
	for i := range height {
		height[i] = -1
	}
	height[t] = 0

	queue := []int{t}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, u := range predecessors[v] {
			if height[u] < 0 {
				height[u] = height[v] + 1
				queue = append(queue, u)
			}
		}
	}

	return height
}
