// SPDX-License-Identifier: MIT
// Package: dicebalance/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with %w at the failing call, never at definition.

package builder

import "errors"

// ErrUnknownKind indicates a catalog name or Kind value outside D4..D20.
var ErrUnknownKind = errors.New("builder: unknown die kind")

// ErrConstructFailed indicates a catalog shell could not be assembled into a
// valid descriptor (graph insertion or antipode derivation failed).
var ErrConstructFailed = errors.New("builder: construction failed")
