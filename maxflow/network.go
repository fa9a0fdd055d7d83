package maxflow

import "fmt"

// Network is a dense integer-indexed directed multigraph: nodes are
// 0..NumNodes()-1, and edges are added in forward/reverse pairs that share
// an index — edge 2i is the forward direction, edge 2i+1 its paired
// reverse, so rev(e) = e^1.
//
// Capacity and consumed flow are stored as separate parallel slices rather
// than a single mutated residual value, so ResetFlow can clear flow state
// between binary-search iterations without touching topology or constant
// capacities (s→c, c→v). residual(e) = forwardCapacity[e] - sentFlow[e] +
// sentFlow[rev(e)].
type Network struct {
	numNodes        int
	to              []int
	forwardCapacity []float64
	sentFlow        []float64
	adjacency       [][]int
}

// NewNetwork allocates a Network over n nodes with no edges.
func NewNetwork(n int) *Network {
	return &Network{
		numNodes:  n,
		adjacency: make([][]int, n),
	}
}

// NumNodes returns the node count the Network was allocated with.
func (net *Network) NumNodes() int {
	return net.numNodes
}

// NumEdges returns the number of forward/reverse edge pairs added so far.
func (net *Network) NumEdges() int {
	return len(net.to) / 2
}

// AddEdge adds a forward edge from→to with the given capacity and its
// paired reverse edge with zero capacity, returning the forward edge's
// index. Capacity must be nonnegative.
func (net *Network) AddEdge(from, to int, capacity float64) (int, error) {
	if capacity < 0 {
		return 0, fmt.Errorf("maxflow: AddEdge(%d→%d, cap=%g): %w", from, to, capacity, ErrNegativeCapacity)
	}

	fwd := len(net.to)
	net.to = append(net.to, to, from)
	net.forwardCapacity = append(net.forwardCapacity, capacity, 0)
	net.sentFlow = append(net.sentFlow, 0, 0)
	net.adjacency[from] = append(net.adjacency[from], fwd)
	net.adjacency[to] = append(net.adjacency[to], fwd+1)

	return fwd, nil
}

// SetForwardCapacity rewrites the forward capacity of edge e in place,
// leaving its reverse pair and all flow state untouched. Used by the
// reduction package's Update step to retarget v→t edges to a new λ.
func (net *Network) SetForwardCapacity(e int, capacity float64) {
	net.forwardCapacity[e] = capacity
}

// Successors returns the edge indices outgoing from node u (both original
// forward edges and the reverse pairs of edges into u).
func (net *Network) Successors(u int) []int {
	return net.adjacency[u]
}

// EdgeTo returns the destination node of edge e.
func (net *Network) EdgeTo(e int) int {
	return net.to[e]
}

// rev returns the paired edge index of e.
func rev(e int) int {
	return e ^ 1
}

// Residual returns the remaining residual capacity of edge e.
func (net *Network) Residual(e int) float64 {
	return net.forwardCapacity[e] - net.sentFlow[e] + net.sentFlow[rev(e)]
}

// Push records a flow of amount across edge e. It does not validate amount
// against Residual(e); callers are expected to push at most Residual(e).
func (net *Network) Push(e int, amount float64) {
	net.sentFlow[e] += amount
}

// ResetFlow zeroes all sent-flow state, leaving topology and forward
// capacities untouched. Called before every densest-subgraph binary-search
// iteration's flow solve.
func (net *Network) ResetFlow() {
	for i := range net.sentFlow {
		net.sentFlow[i] = 0
	}
}
