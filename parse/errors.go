package parse

import "errors"

// errPastEnd is returned by Parser.Step when asked to advance past the
// InputEnd sentinel. It is a caller bug (every rule must check
// Current() before stepping) and is never expected to surface to
// Parse's return value.
var errPastEnd = errors.New("parse: step past input end")
