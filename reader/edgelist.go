package reader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/avawg/densub/core"
)

// DefaultSeparator is the column separator ReadEdgeList uses when none is
// given explicitly.
const DefaultSeparator = "\t"

// ReadEdgeList loads an undirected Graph from path using DefaultSeparator.
func ReadEdgeList(path string) (*core.Graph, error) {
	return ReadEdgeListSeparator(path, DefaultSeparator)
}

// ReadEdgeListSeparator loads an undirected Graph from path, one edge per
// line as "<u><sep><v>" or "<u><sep><v><sep><weight>". Blank lines and
// lines whose first character is "#" are skipped. Self-loops (u == v) are
// dropped silently rather than surfaced as an error. The weight column, if
// present, must parse as an integer but is otherwise discarded: every edge
// is added unweighted, since no density computation in this module reads
// edge weight.
func ReadEdgeListSeparator(path, separator string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}
	defer f.Close()

	g := core.NewGraph()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cols := strings.Split(line, separator)
		if len(cols) < 2 {
			return nil, fmt.Errorf("reader: line %d: %w", lineNo, ErrMalformedLine)
		}
		u, v := cols[0], cols[1]
		if len(cols) > 2 {
			if _, err := strconv.Atoi(cols[2]); err != nil {
				return nil, fmt.Errorf("reader: line %d: %w", lineNo, ErrMalformedLine)
			}
		}

		if u == v {
			continue
		}
		if _, err := g.AddEdge(u, v, 0); err != nil {
			return nil, fmt.Errorf("reader: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reader: %w", err)
	}

	return g, nil
}
