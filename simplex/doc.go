// Package simplex enumerates candidate dye blends.
//
// A Composition is a tuple of six non-negative fractions, one per dye, that
// sums to 1. A Grid is every Composition whose coordinates are taken from the
// uniform axis linspace(0, 1, N), in the lexicographic order of the 6-D
// meshgrid (first dye slowest, last dye fastest).
//
// Two membership filters are available:
//
//   - Lattice (default): keep tuples whose integer axis indices sum to N−1.
//     This is the tolerance-free statement of "the fractions sum to 1" and
//     never loses a point to floating-point rounding. The walk prunes
//     impossible prefixes, so it visits only members.
//   - Exact: keep tuples whose floating-point sum v1+v2+...+v6 (left to
//     right) equals 1.0 exactly. For many N this drops points that are on the
//     simplex mathematically; it exists to reproduce that behavior on demand.
//
// The grid size grows as C(N+4, 5). Each streams members without
// materializing them; All builds the full slice.
package simplex
