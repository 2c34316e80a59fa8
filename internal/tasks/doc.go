// Package tasks defines the provisioning task model and the concrete task
// catalog.
//
// A task is one named, idempotent unit of provisioning work with a declared
// execution order. Tasks are registered explicitly at startup into a
// Registry, resolved into an ordered plan by the provision package, and
// executed against a shared run Context. Re-running a task whose goal state
// already holds returns Skipped without side effects.
package tasks
