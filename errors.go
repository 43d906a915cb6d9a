package txt2html

import "errors"

// Sentinel errors for library operations.
//
// Hook errors are never wrapped: Convert returns exactly what a hook returned.
var (
	ErrUnknownStage = errors.New("unknown hook stage")
	ErrNilHook      = errors.New("hook cannot be nil")
	ErrReadSource   = errors.New("failed to read source text")
)
