// Package widgets contains dumb render primitives for the order form.
//
// Allowed here:
// - stateless drawing helpers (section panels, side-by-side layout, popup overlay)
//
// Not allowed here:
// - key handling, form state, or scope logic
package widgets
