// SPDX-License-Identifier: MIT
// Package rbf implements radial basis function interpolation over scattered
// nodes in R^d.
//
// An Interpolant is f(x) = Σ_j w_j · φ(‖x − n_j‖, ε), where the weights solve
// (Φ − s·I)·w = y on the training nodes. With smoothing s = 0 the
// interpolant reproduces every training value.
//
// A Model holds one interpolant per output channel (one per wavelength in a
// pigment search) sharing the same nodes and kernel. The kernel matrix Φ is
// therefore factored once with LU and reused for every channel, and Eval
// computes the basis vector φ(x) once and contracts it with the W×M weight
// matrix.
//
// Kernels follow the conventional RBF family:
//
//	InverseMultiquadric  1/√((r/ε)²+1)   (default)
//	Multiquadric         √((r/ε)²+1)
//	Gaussian             exp(−(r/ε)²)
//	Linear               r
//	Cubic                r³
//	ThinPlate            r²·ln r
//
// The default ε is the geometric-mean node spacing: with edges the non-zero
// per-dimension extents of the node cloud and M the node count,
// ε = (Π edges / M)^(1/len(edges)).
//
// Determinism: fixed loop orders, no randomness. Models are immutable after
// construction and safe for concurrent Eval.
package rbf
