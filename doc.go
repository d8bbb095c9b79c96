// Package mutinfo computes pairwise mutual information between the rows of
// a numeric expression matrix.
//
// Each row ("gene") is discretized into quantile bins derived from its own
// sorted values, and the mutual information between two rows is the plug-in
// estimate over the joint and marginal bin frequencies, in nats. All
// unordered row pairs, including each row paired with itself, are evaluated
// independently in parallel and assembled into a symmetric table.
//
// Basic usage:
//
//	scores, err := mutinfo.PairwiseMI(matrix, genes, mutinfo.DefaultConfig())
//	// scores["g1"]["g2"] == scores["g2"]["g1"]
//	// scores["g1"]["g1"] is the entropy of g1's binned distribution
//
// For an index-keyed dense result suitable for downstream linear algebra:
//
//	sym, err := mutinfo.PairwiseMIMatrix(matrix, mutinfo.DefaultConfig())
//
// # Determinism
//
// Pair evaluation order never affects a score: frequency accumulation uses
// fixed-order dense counters, so repeated runs with any worker count produce
// bit-identical tables.
package mutinfo
