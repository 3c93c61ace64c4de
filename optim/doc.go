// Package optim declares the constraints of a thermodynamics-based flux
// analysis problem and keeps them synchronized with a solver-backed
// optimization problem.
//
// A Constraint is a thin adapter over one named row of a Problem. It
// derives a problem-wide name from its kind prefix and the identifier of
// the entity it is attached to, registers the row on first construction,
// and reattaches to the existing row on subsequent constructions with the
// same name. The mathematical content always lives in the problem; the
// adapter reads and writes it through the row name.
//
// The package is not safe for concurrent use: registration is
// check-then-create against the problem's shared row collection, and
// problems are expected to be assembled from a single goroutine.
package optim
