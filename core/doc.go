// Package core contains app-wide contracts shared by the form UI.
//
// Allowed here:
// - message contracts, the screen stack, and the key registry
// - shared state machines used across screens (for example picker logic)
// - theme loading and the styles derived from it
//
// Not allowed here:
// - concrete screen/modal rendering implementations
// - low-level widget rendering primitives
// - form state and validation (internal/orderform)
package core
