package maxflow

import "fmt"

// Solver identifies one of the four interchangeable max-flow engines.
type Solver int

const (
	// PushRelabelHLPPSolver is the recommended default: the reduction
	// graph is dense at the source side, which favours HLPP's highest-
	// label discharge order.
	PushRelabelHLPPSolver Solver = iota
	PushRelabelFIFOSolver
	DinicSolver
	EdmondsKarpSolver
)

// ErrUnknownSolver indicates a Solver value outside the four defined ones.
var ErrUnknownSolver = fmt.Errorf("maxflow: unknown solver")

// Func returns the (net, s, t) -> (value, sourceSide) function for solver,
// or an error if solver is not one of the four defined constants.
func (solver Solver) Func() (func(net *Network, s, t int) (float64, []bool), error) {
	switch solver {
	case PushRelabelHLPPSolver:
		return PushRelabelHLPP, nil
	case PushRelabelFIFOSolver:
		return PushRelabelFIFO, nil
	case DinicSolver:
		return Dinic, nil
	case EdmondsKarpSolver:
		return EdmondsKarp, nil
	default:
		return nil, fmt.Errorf("maxflow: Solver(%d): %w", int(solver), ErrUnknownSolver)
	}
}

// Solve runs the requested solver over net from s to t, returning the
// max-flow value and the source side of a minimum cut.
func Solve(net *Network, s, t int, solver Solver) (float64, []bool, error) {
	if s < 0 || s >= net.NumNodes() {
		return 0, nil, ErrSourceNotFound
	}
	if t < 0 || t >= net.NumNodes() {
		return 0, nil, ErrSinkNotFound
	}

	fn, err := solver.Func()
	if err != nil {
		return 0, nil, err
	}

	value, sourceSide := fn(net, s, t)
	return value, sourceSide, nil
}
