// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (bordered boxes, padding)
//
// Not allowed here:
// - key handling, timer state transitions, or layout policy
package widgets
