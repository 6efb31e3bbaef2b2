// Package assignment solves the linear assignment problem: given a cost
// for every (row, column) pairing, find the one-to-one matching of rows
// to columns with minimum total cost.
//
// 🚀 What is assignment?
//
//	A small, dependency-light library built around one algorithm done well:
//		• Hungarian method (Kuhn–Munkres) with dual potentials and
//		  successive shortest augmenting paths — O(n³), exact
//		• Rectangular inputs handled by transparent zero-padding
//		• Optional fork-join matrix construction for large inputs
//
// ✨ Why choose assignment?
//
//   - Minimal API – one Solve call, flat row-major input, plain []int out
//   - Deterministic – same input, same total cost, no hidden randomness
//   - Pure Go – no cgo, no solver binaries to ship
//   - Stateless – nothing retained between calls, safe for concurrent use
//
// All algorithmic content lives in one subpackage:
//
//	assign/ — cost-matrix padding, the Hungarian solver, result projection
//
// Quick ASCII example:
//
//	       jobs →   J0  J1  J2
//	    worker W0 [  1   2   3 ]
//	    worker W1 [  4   5   6 ]      Solve → W0→J0, W1→J1, W2→J2
//	    worker W2 [  7   8   9 ]      total = 1+5+9 = 15
//
// Dive into assign/doc.go and examples/ for full walkthroughs.
//
//	go get github.com/martijnenco/assignment/assign
package assignment
