package maxflow

// PushRelabelFIFO computes the maximum flow from s to t by discharging
// the front of a FIFO active-vertex queue.
//
// Complexity: O(V³).
func PushRelabelFIFO(net *Network, s, t int) (value float64, sourceSide []bool) {
	return preflowPush(net, s, t, &fifoActiveQueue{})
}

type fifoActiveQueue struct {
	items []int
}

func (q *fifoActiveQueue) push(v, _ int) {
	q.items = append(q.items, v)
}

func (q *fifoActiveQueue) pop() (int, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}

func (q *fifoActiveQueue) empty() bool {
	return len(q.items) == 0
}
