// Package pipeline wires the search stages into one run:
//
//	irradiance samples ─► spectrum.Reference (fit, grid, normalize)
//	empirical dataset  ─► rbf.Model ─► response.Evaluator
//	simplex.Grid ─► search.Run ─► optima ─► Report ─► Sinks
//
// A Report is the in-memory outcome of a run. Sinks consume it: the CLI
// prints a text summary and the render package draws plots.
package pipeline
