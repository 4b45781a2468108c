// Package services contains stateless domain services for the order
// lifecycle.
//
// TransitionAuthority decides whether a concrete (order, requested status,
// role) triple may proceed; the role view functions compute the subset of
// orders each role works with. Both are pure: they never touch the store,
// which keeps them deterministic and independently testable. Persisting an
// authorized transition is the dispatcher's job.
package services
