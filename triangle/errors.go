package triangle

import "errors"

// ErrUnsupportedK indicates a clique size other than 2 or 3 was requested.
var ErrUnsupportedK = errors.New("triangle: k must be 2 or 3")
