// Package hook provides an extension registry and dispatcher that lets
// independently authored modules inject behavior into a shared
// request-processing pipeline without the core knowing about them.
//
// Extensions register callbacks at composition time, each tagged with a
// pipeline stage. The registry is built once at startup and is read-only
// during dispatch.
//
// Two dispatch semantics coexist, and the distinction matters:
//
//   - Broadcast stages (Dispatch): every hook registered for the stage runs
//     in registration order, threading an accumulating value through each
//     call. Name collisions never skip a hook, so side effects from earlier
//     extensions are preserved. A hook may return ErrHalt to short-circuit
//     the remaining pipeline.
//
//   - Named lookups (Lookup): value-returning resolvers keyed by name, where
//     a later registration overrides an earlier one of the same name.
//
// Usage:
//
//	reg := hook.NewRegistry()
//	reg.Register("audit", hook.BeforeCreate, func(ctx context.Context, v any) (any, error) {
//	    log.Printf("creating session: %v", v)
//	    return v, nil
//	})
//	reg.RegisterLookup("i18n", "error_message", localizedMessage)
//
//	v, halted, err := reg.Dispatch(ctx, hook.BeforeCreate, payload)
//
// An unregistered stage is a no-op dispatch. Hook errors propagate to the
// caller; extensions are not sandboxed against each other.
package hook
