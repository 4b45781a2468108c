// Package queries contains the one-shot read side: role-scoped order views
// and the menu catalog.
//
// Each handler pushes the role's predicate down to the store (ScopeFor) so
// the store pre-filters by owner or status, then re-derives the pure domain
// view over the result for deterministic ordering. Screens that need live
// data use a watch.Feed with the same scope and view instead.
package queries
