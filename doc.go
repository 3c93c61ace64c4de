// Package gotfa provides building blocks for thermodynamics-based
// metabolic flux analysis (TFA) optimization problems.
//
// The optim subpackage declares the linear constraints of a TFA problem
// and keeps them registered with a solver-backed problem object.
package gotfa

import (
	"github.com/blang/semver/v4"
)

// Version of the gotfa library. Recorded in problem snapshots and checked
// when a snapshot is read back.
var Version = semver.MustParse("0.1.0")
