package txt2html

import "fmt"

// Hook transforms the text of a stage. Hooks of a stage are composed in
// registration order: each receives the full output of the previous one.
// A returned error aborts the conversion and is passed to the caller as is.
type Hook func(text string) (string, error)

// Registry maps each Stage to its ordered hooks.
//
// A Registry is populated once, before conversion. NewConverter copies it,
// so registering more hooks afterwards never affects an existing Converter.
// The zero value is an empty, usable registry.
type Registry struct {
	hooks map[Stage][]Hook
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{hooks: make(map[Stage][]Hook)}
}

// Register appends hooks to the chain of stage.
// Returns ErrUnknownStage for an invalid stage and ErrNilHook if any hook is
// nil; on error the registry is left unchanged.
func (r *Registry) Register(stage Stage, hooks ...Hook) error {
	if !stage.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStage, stage)
	}
	for i, h := range hooks {
		if h == nil {
			return fmt.Errorf("%w: stage %s, position %d", ErrNilHook, stage, i)
		}
	}
	if r.hooks == nil {
		r.hooks = make(map[Stage][]Hook)
	}
	r.hooks[stage] = append(r.hooks[stage], hooks...)
	return nil
}

// Hooks returns a copy of the hook chain of stage, nil when empty.
func (r *Registry) Hooks(stage Stage) []Hook {
	if r == nil || len(r.hooks[stage]) == 0 {
		return nil
	}
	out := make([]Hook, len(r.hooks[stage]))
	copy(out, r.hooks[stage])
	return out
}

// Len returns the total number of hooks across all stages.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, hs := range r.hooks {
		n += len(hs)
	}
	return n
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	if r == nil {
		return c
	}
	for stage, hs := range r.hooks {
		c.hooks[stage] = append([]Hook(nil), hs...)
	}
	return c
}
