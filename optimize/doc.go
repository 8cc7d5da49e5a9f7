// SPDX-License-Identifier: MIT
// Package optimize finds the best-balanced face numbering of a die.
//
// Optimize walks every candidate of weights.LockedOne, scores it with
// die.Spread (the population standard deviation of corner averages) and
// keeps the smallest. A strictly smaller spread replaces the optimum, so
// among equal spreads the first enumerated candidate wins; the parallel
// mode (WithWorkers) folds per-worker optima by (spread, ordinal) and gives
// the same answer.
//
// The winning vector is assigned to the die. Progress is logged through
// klog at V(1) (start and result) and V(2) (WithProgress ticks), and each
// search runs inside an OpenTelemetry span named "optimize.Optimize".
package optimize
