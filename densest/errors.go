package densest

import "errors"

// ErrInvalidK indicates a k outside {2, 3} was requested.
var ErrInvalidK = errors.New("densest: k must be 2 or 3")
