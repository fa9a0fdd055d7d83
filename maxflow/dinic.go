package maxflow

import "math"

// Dinic computes the maximum flow from s to t via repeated level-graph
// construction and blocking-flow DFS with a current-arc pointer.
//
// Complexity: O(V² · E).
func Dinic(net *Network, s, t int) (value float64, sourceSide []bool) {
	n := net.NumNodes()
	level := make([]int, n)
	iter := make([]int, n)

	for buildLevelGraph(net, s, t, level) {
		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := dinicDFS(net, s, t, math.Inf(1), level, iter)
			if pushed <= 0 {
				break
			}
			value += pushed
		}
	}

	return value, MinCut(net, s)
}

// buildLevelGraph runs a BFS from s over positive-residual edges,
// assigning level[v] = BFS distance from s (or -1 if unreached). Reports
// whether t was reached.
func buildLevelGraph(net *Network, s, t int, level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[s] = 0

	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range net.Successors(u) {
			if net.Residual(e) <= 0 {
				continue
			}
			v := net.EdgeTo(e)
			if level[v] != -1 {
				continue
			}
			level[v] = level[u] + 1
			queue = append(queue, v)
		}
	}

	return level[t] != -1
}

// dinicDFS finds one blocking-flow augmentation bounded by limit, using
// iter as a per-node current-arc pointer so repeated calls never re-scan
// an exhausted prefix of a node's successor list.
func dinicDFS(net *Network, u, t int, limit float64, level []int, iter []int) float64 {
	if u == t {
		return limit
	}

	succ := net.Successors(u)
	for ; iter[u] < len(succ); iter[u]++ {
		e := succ[iter[u]]
		if net.Residual(e) <= 0 {
			continue
		}
		v := net.EdgeTo(e)
		if level[v] != level[u]+1 {
			continue
		}

		bound := limit
		if r := net.Residual(e); r < bound {
			bound = r
		}
		pushed := dinicDFS(net, v, t, bound, level, iter)
		if pushed > 0 {
			net.Push(e, pushed)
			return pushed
		}
		level[v] = -1
	}

	return 0
}
