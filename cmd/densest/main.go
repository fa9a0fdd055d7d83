// Command densest runs densest-subgraph extraction over every edge-list
// file in a directory and prints one density summary line per dataset.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avawg/densub/densest"
	"github.com/avawg/densub/metrics"
	"github.com/avawg/densub/reader"
)

func main() {
	dir := flag.String("dir", "./data", "directory of edge-list files to process")
	k := flag.Int("k", 2, "clique size: 2 for edge density, 3 for triangle density")
	flag.Parse()

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("densest: reading %s: %v", *dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		run(*dir, entry.Name(), *k)
	}
}

// datasetName strips the file extension from an edge-list filename to
// produce the label used in the summary line.
func datasetName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func run(dir, name string, k int) {
	dataset := datasetName(name)
	path := filepath.Join(dir, name)

	g, err := reader.ReadEdgeList(path)
	if err != nil {
		log.Fatalf("densest: %s: %v", name, err)
	}

	start := time.Now()
	sub, err := densest.Solve(g, k)
	elapsed := time.Since(start)
	if err != nil {
		log.Fatalf("densest: %s: %v", name, err)
	}

	report := metrics.Measure(sub)
	log.Printf(
		"datasets_name=%s edge_density=%.2f triangle_density=%.2f number_of_nodes=%d run_time_ms=%.2f",
		dataset, report.EdgeDensity, report.TriangleDensity, report.NumVertices,
		float64(elapsed.Microseconds())/1000,
	)
}
