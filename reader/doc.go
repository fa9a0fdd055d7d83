// Package reader loads a Graph from a tab-separated edge-list file: one
// edge per line, "<u><sep><v>" or "<u><sep><v><sep><weight>", blank lines
// and lines starting with "#" ignored. Self-loops are dropped rather than
// rejected, matching how the reference edge-list format tolerates them.
package reader
