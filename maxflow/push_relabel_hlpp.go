package maxflow

import "container/heap"

// PushRelabelHLPP computes the maximum flow from s to t by discharging
// the highest-labelled active vertex first, via a max-heap keyed on
// height. Ties are broken arbitrarily.
//
// Complexity: O(V² · √E).
func PushRelabelHLPP(net *Network, s, t int) (value float64, sourceSide []bool) {
	q := &hlppActiveQueue{}
	heap.Init(q)
	return preflowPush(net, s, t, q)
}

type hlppEntry struct {
	vertex, height int
}

// hlppActiveQueue is a max-heap on height, implementing container/heap
// directly so (*hlppActiveQueue) satisfies activeQueue via push/pop
// wrappers around heap.Push/heap.Pop.
type hlppActiveQueue struct {
	entries []hlppEntry
}

func (q *hlppActiveQueue) Len() int { return len(q.entries) }

func (q *hlppActiveQueue) Less(i, j int) bool {
	return q.entries[i].height > q.entries[j].height
}

func (q *hlppActiveQueue) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
}

func (q *hlppActiveQueue) Push(x any) {
	q.entries = append(q.entries, x.(hlppEntry))
}

func (q *hlppActiveQueue) Pop() any {
	old := q.entries
	n := len(old)
	e := old[n-1]
	q.entries = old[:n-1]
	return e
}

func (q *hlppActiveQueue) push(v, height int) {
	heap.Push(q, hlppEntry{vertex: v, height: height})
}

func (q *hlppActiveQueue) pop() (int, bool) {
	if q.Len() == 0 {
		return 0, false
	}
	e := heap.Pop(q).(hlppEntry)
	return e.vertex, true
}

func (q *hlppActiveQueue) empty() bool {
	return q.Len() == 0
}
