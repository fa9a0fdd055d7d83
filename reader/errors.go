package reader

import "errors"

// ErrMalformedLine indicates a non-blank, non-comment line did not split
// into at least two columns, or its optional weight column did not parse
// as an integer.
var ErrMalformedLine = errors.New("reader: malformed edge-list line")
