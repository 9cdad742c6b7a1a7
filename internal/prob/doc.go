// Package prob estimates the probability that the top-ranked result of a
// distributed search is missed when each of several workers returns only a
// bounded number of results from a common pool.
//
// Two models are provided. The uniform model treats each worker's results as
// an independent uniform k-subset of the n candidates, giving the closed form
// (C(n-1,k)/C(n,k))^w. The exact model distributes the top n results over the
// w workers uniformly at random and counts, with exact big-integer
// arithmetic, the share assignments in which some worker holds more of the
// top results than it returns.
//
// The package is a pure consumer of the multiset engine; it holds no state
// between calls beyond the engine's internal caches.
package prob
