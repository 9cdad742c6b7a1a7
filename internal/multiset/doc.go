// Package multiset implements exact combinatorics over multisets: factorials,
// binomial and multinomial coefficients, integer partition counts, and lazy
// enumeration of multiplicity profiles.
//
// All counts are computed with math/big; results never wrap or truncate.
// A Calculator carries internal read-through caches (factorial prefix
// products, partition counts) that are safe for concurrent use. The caches
// are invisible to callers: inputs fully determine outputs, and returned
// values are always fresh copies that the caller may mutate.
package multiset
