// Package planner decides the order in which a shopper visits an unordered
// set of stops, starting from a fixed entry cell. It produces an open path
// (no return to the entry).
//
// Strategies:
//
//   - NearestNeighbor (default): greedy, repeatedly walk to the closest
//     unvisited stop. Ties go to the stop that comes first in the input.
//     Complexity: O(n²) distance evaluations.
//
//   - NearestNeighborTwoOpt: the greedy order refined by deterministic
//     first-improvement 2-opt on the open path (segment reversal).
//     Complexity: O(iter·n²).
//
//   - Exact: Held-Karp dynamic programming over subsets, optimal for the
//     supplied distance. Limited to MaxExactStops stops.
//     Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//
// Distance:
//
// By default stops are compared by Manhattan distance, a straight-line proxy
// that ignores shelves. WithDistance plugs in any symmetric metric, for
// example true walking distance; pairs that cannot reach each other should
// report Unreachable.
//
// The nearest-neighbor order is an approximation, not a Travelling-Salesman
// solution: when shelves make straight-line distance a poor proxy the total
// walk can be longer than optimal.
//
// Errors:
//
//   - ErrTooManyStops:    Exact was asked to order more than MaxExactStops stops.
//   - ErrUnknownStrategy: the Strategy value is not one of the constants.
//   - ErrOptionViolation: an invalid Option was supplied.
package planner
