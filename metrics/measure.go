package metrics

import (
	"math"

	"github.com/avawg/densub/core"
	"github.com/avawg/densub/triangle"
)

// Report summarises a Graph's density.
type Report struct {
	NumVertices     int
	EdgeDensity     float64
	TriangleDensity float64
}

// Measure computes EdgeDensity and TriangleDensity for g, each truncated
// to two decimal places. EdgeDensity is 0 for n<=1 and TriangleDensity is
// 0 for n<=2, since both denominators are zero there.
func Measure(g *core.Graph) Report {
	n := g.NumVertices()
	m := g.NumEdges()
	t := len(triangle.Enumerate(g))

	report := Report{NumVertices: n}

	if n > 1 {
		report.EdgeDensity = truncate2(float64(m) / (float64(n) * float64(n-1) / 2))
	}
	if n > 2 {
		report.TriangleDensity = truncate2(float64(t) / (float64(n) * float64(n-1) * float64(n-2) / 6))
	}

	return report
}

func truncate2(x float64) float64 {
	return math.Trunc(x*100) / 100
}
