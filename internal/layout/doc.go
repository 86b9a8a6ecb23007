// Package layout implements the bus seat-layout configuration engine: the
// floor/cell grid model, seat numbering, resize-with-preservation, tool
// driven cell transitions and the derived statistics an operator sees while
// designing a bus.
//
// The package performs no I/O. Every mutating operation takes the current
// Floor or Layout value and returns a fresh one; inputs are never modified,
// so callers can treat engine state as an immutable snapshot per user
// action. Validation failures are reported through the sentinel errors in
// errors.go with the original state left untouched.
package layout
