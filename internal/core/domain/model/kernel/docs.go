// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds primitives that carry no business meaning of their own but
// enforce invariants every aggregate relies on, such as identifier validity.
// Types in this package are immutable and safe for concurrent use.
package kernel
