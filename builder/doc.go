// Package builder constructs the three deterministic unweighted fixture
// graphs the triangle, metrics and densest test suites exercise:
// complete graphs K_n, cycles C_n, and paths P_n. Vertex IDs are decimal
// strings assigned in insertion order ("0", "1", ...).
package builder
