package hook

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Stage identifies a pipeline stage hooks can attach to.
type Stage string

const (
	// BeforeProcess runs before a request's main processing.
	BeforeProcess Stage = "before_process"
	// BeforeRespond runs before the response is written.
	BeforeRespond Stage = "before_respond"
	// BeforeCreate runs before a session is created.
	BeforeCreate Stage = "before_create"
	// BeforeDelete runs before a session is deleted.
	BeforeDelete Stage = "before_delete"
)

// Func is a hook callback. It receives the accumulated value from the
// previous hook and returns a possibly modified value. Returning ErrHalt
// stops the remaining pipeline for the stage; any other error is fatal for
// the request and propagates to the caller.
type Func func(ctx context.Context, v any) (any, error)

type registration struct {
	extension string
	fn        Func
}

// Registry holds hooks contributed by extension modules. Build it once at
// startup configuration time; registration after dispatch has begun is safe
// but not the intended use.
type Registry struct {
	mu      sync.RWMutex
	stages  map[Stage][]registration
	lookups map[string]registration
}

// NewRegistry creates an empty extension registry.
func NewRegistry() *Registry {
	return &Registry{
		stages:  make(map[Stage][]registration),
		lookups: make(map[string]registration),
	}
}

// Register attaches a broadcast hook for the given stage on behalf of an
// extension. Hooks fire in registration order; multiple extensions may
// register for the same stage and all of them run.
func (r *Registry) Register(extension string, stage Stage, fn Func) {
	if fn == nil {
		panic(fmt.Sprintf("hook: nil hook registered by extension %q for stage %q", extension, stage))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages[stage] = append(r.stages[stage], registration{extension: extension, fn: fn})
}

// RegisterLookup attaches a named value resolver. Unlike broadcast hooks,
// a later registration under the same name overrides an earlier one.
func (r *Registry) RegisterLookup(extension, name string, fn Func) {
	if fn == nil {
		panic(fmt.Sprintf("hook: nil lookup registered by extension %q under name %q", extension, name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups[name] = registration{extension: extension, fn: fn}
}

// Dispatch invokes every hook registered for stage in registration order,
// threading v through each call. The returned bool reports whether a hook
// halted the pipeline. An unregistered stage is a no-op: v comes back
// unchanged.
func (r *Registry) Dispatch(ctx context.Context, stage Stage, v any) (any, bool, error) {
	r.mu.RLock()
	hooks := r.stages[stage]
	r.mu.RUnlock()

	for _, h := range hooks {
		next, err := h.fn(ctx, v)
		if errors.Is(err, ErrHalt) {
			if next != nil {
				v = next
			}
			return v, true, nil
		}
		if err != nil {
			return v, false, fmt.Errorf("hook: extension %q at stage %q: %w", h.extension, stage, err)
		}
		v = next
	}

	return v, false, nil
}

// Lookup resolves the named function, applying last-registration-wins
// override semantics. Returns ErrLookupNotFound when nothing is registered
// under the name.
func (r *Registry) Lookup(name string) (Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.lookups[name]
	if !ok {
		return nil, ErrLookupNotFound
	}
	return reg.fn, nil
}

// Resolve looks up the named function and invokes it in one step.
func (r *Registry) Resolve(ctx context.Context, name string, v any) (any, error) {
	fn, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return fn(ctx, v)
}

// Extensions returns the extension identifiers registered for a stage, in
// registration order. Intended for introspection and tests.
func (r *Registry) Extensions(stage Stage) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.stages[stage]))
	for _, h := range r.stages[stage] {
		out = append(out, h.extension)
	}
	return out
}
