// Package screens contains overlay flows rendered on top of the form.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (option pickers)
// - modal-specific presentation and interaction wiring
//
// Not allowed here:
// - form state transitions and key registry ownership
// - low-level widget/layout primitives
package screens
