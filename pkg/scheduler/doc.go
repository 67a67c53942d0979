// Package scheduler binds a unit of deferred work to an external scheduler.
//
// A Task is registered at most once:
//   - six scheduling modes (now, delayed, repeating; each sync or async)
//     all go through one registration path
//   - the identifier returned by the Scheduler is stored and never changes
//   - Cancel forwards to the Scheduler but keeps the identifier, so a
//     cancelled Task cannot be scheduled again
//
// Payloads registered with an async mode run outside the scheduler's
// primary context and must not touch state only safe to mutate there.
package scheduler
