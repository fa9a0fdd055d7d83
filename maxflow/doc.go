// Package maxflow implements the residual-network representation and the
// four interchangeable maximum-flow engines that drive the densest-
// subgraph reduction: Edmonds–Karp, Dinic, and push–relabel in its FIFO
// and highest-label (HLPP) variants.
//
// The key algorithms offered are:
//
//   - Edmonds–Karp
//
//   - Method: breadth-first search for shortest (fewest-edge) augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Dinic
//
//   - Method: level graph construction + blocking flow via DFS with a current-arc pointer.
//
//   - Time:   O(V² · E).
//
//   - Push–relabel FIFO
//
//   - Method: discharge the front of a FIFO active-vertex queue; gap heuristic prunes stranded heights.
//
//   - Time:   O(V³).
//
//   - Push–relabel HLPP
//
//   - Method: discharge the highest-labelled active vertex via a max-heap.
//
//   - Time:   O(V² · √E).
//
// # Graph support
//
// All four engines operate on *Network, a dense integer-indexed directed
// graph built once per densest-subgraph solve (see the reduction package).
// Capacities and flow are float64: the reduction's v→t capacity is a
// bisected density threshold λ, which is rational but not generally an
// integer after the first iteration.
//
// # Residual model
//
// Every edge is added as a forward/reverse pair sharing an index: edge 2i
// is forward, edge 2i+1 is its reverse, so rev(e) = e^1. Capacity and flow
// are stored as separate parallel slices (forwardCapacity, sentFlow) rather
// than mutating a single residual-capacity array in place, so that
// ResetFlow can clear flow state between binary-search iterations without
// rebuilding the network's topology or constant edges.
//
// # API
//
// The four engines share one signature:
//
//	func EdmondsKarp(net *Network, s, t int) (value float64, sourceSide []bool)
//	func Dinic(net *Network, s, t int) (value float64, sourceSide []bool)
//	func PushRelabelFIFO(net *Network, s, t int) (value float64, sourceSide []bool)
//	func PushRelabelHLPP(net *Network, s, t int) (value float64, sourceSide []bool)
//
// sourceSide[v] is true iff v is reachable from s in the terminal residual
// network — the source side of a minimum s-t cut. Push–relabel is the
// recommended engine: the reduction graph is dense at the source side
// (every clique fans out to every member vertex), which is exactly the
// shape push–relabel's gap heuristic prunes well.
package maxflow
