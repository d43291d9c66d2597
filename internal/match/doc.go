// Package match pairs tear-edge signatures by nearest-neighbor search.
//
// A Collection maps unique names to signatures and remembers insertion
// order; that order is load-bearing, because equal-distance ties resolve
// to the first-inserted candidate. A MatchSet records the symmetric
// best-match relation between names. The Matcher owns one of each and
// implements the comparison operations: incremental comparison of one new
// signature against the collection, and batch resolution over the whole
// collection.
//
// All operations are synchronous, in-memory computations. A Matcher and
// the state it owns assume a single mutating caller; concurrent use
// requires external serialization of Build, Compare, and the resolve
// methods.
package match
