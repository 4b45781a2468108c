// Package commands contains the action dispatchers, the only components
// that pair a domain validation with a store write.
//
// Each handler takes the caller's session explicitly, validates the action
// locally (entity invariants for submission, the transition authority for
// status changes), and only then writes to the store. A validation failure
// returns the domain error untouched and performs no write, so there is
// never partial state. Writes are not atomic across clients; races on the
// same order resolve through the monotonic transition graph, and callers
// re-observe current status before retrying after any failure.
package commands
