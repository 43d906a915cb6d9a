package hooks

import "errors"

// Sentinel errors for hook resolution and execution.
var (
	ErrUnknownHook    = errors.New("unknown hook")
	ErrInvalidHookRef = errors.New("invalid hook reference")
	ErrHookCommand    = errors.New("hook command failed")
	ErrHookTimeout    = errors.New("hook command timed out")
	ErrSnippetRender  = errors.New("failed to render snippet")
)
