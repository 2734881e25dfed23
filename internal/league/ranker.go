// Package league holds the standings and season-identity logic of the league hub:
// final-rank ordering, division grouping, co-owner merging, season-over-season
// roster matching and preseason ranking. Everything here works on fully
// materialized values and performs no I/O.
package league

import "slices"

// CompareFinalRank orders two final ranks for sorting. Lower ranks come first
// and a missing rank (nil or non-positive) sorts after any present rank. Two
// missing ranks compare equal so a stable sort keeps their input order.
//
// Every rank-ordered view in the hub sorts through this function.
func CompareFinalRank(a, b *int) int {
	aOK := hasRank(a)
	bOK := hasRank(b)

	switch {
	case aOK && bOK:
		switch {
		case *a < *b:
			return -1
		case *a > *b:
			return 1
		}
		return 0
	case aOK:
		return -1
	case bOK:
		return 1
	}
	return 0
}

// SortByFinalRank stable-sorts items in place using CompareFinalRank on the
// rank extracted by rank.
func SortByFinalRank[T any](items []T, rank func(T) *int) {
	slices.SortStableFunc(items, func(a, b T) int {
		return CompareFinalRank(rank(a), rank(b))
	})
}

func hasRank(r *int) bool {
	return r != nil && *r > 0
}

func intPtr(v int) *int {
	return &v
}
