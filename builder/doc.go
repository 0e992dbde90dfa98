// Package builder is the library of graph constructors that supply a
// core.Multigraph to the solve package: complete, wheel, hanging tree,
// extended hanging tree, friendship, balloon (path/cycle/family),
// hypercube, double n-gon, loopy star, Petersen, m-by-n grid,
// cycle-with-loops, and a file loader.
//
// One constructor per file, a shared sentinel-error catalogue, parameters
// validated before any work begins. Each constructor returns a fresh
// *core.Multigraph directly rather than mutating a shared, mode-flagged
// graph instance.
//
// Every constructor validates its parameters before doing any work and
// returns a sentinel error (see errors.go) rather than panicking.
package builder
