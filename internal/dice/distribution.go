package dice

import "sort"

// Bucket pairs one achievable total with its exact outcome count and
// probability.
type Bucket struct {
	Total   int
	Count   int64   // combinations summing to Total
	Percent float64 // Count / Outcomes * 100, unrounded
}

// Distribution is the exact probability distribution of a Spec, computed by
// exhaustive enumeration rather than sampling.
//
// Invariant: Buckets is ascending by Total; bucket counts sum to Outcomes;
// bucket totals form the contiguous range
// [Count+Modifier, Count*Sides+Modifier].
type Distribution struct {
	Spec     Spec
	Outcomes int64 // Sides^Count, total equally likely combinations
	Buckets  []Bucket
}

// Enumerate walks every Sides^Count combination of die faces and tallies the
// modifier-adjusted totals. It is a pure function of spec: repeated calls
// yield identical results.
//
// The walk is O(Sides^Count). Exactness, not feasibility, is the contract;
// typical tabletop pools (count <= ~6, sides <= ~20) stay cheap, and the
// parse bound of 255 on count and sides keeps the int64 tallies safe.
//
// Precondition: spec must come from Parse (Count >= 1, Sides >= 1).
func Enumerate(spec Spec) Distribution {
	counts := make(map[int]int64)

	var walk func(remaining, sum int)
	walk = func(remaining, sum int) {
		if remaining == 0 {
			counts[sum]++
			return
		}
		for face := 1; face <= spec.Sides; face++ {
			walk(remaining-1, sum+face)
		}
	}
	walk(spec.Count, spec.Modifier)

	totals := make([]int, 0, len(counts))
	var outcomes int64
	for total, n := range counts {
		totals = append(totals, total)
		outcomes += n
	}
	sort.Ints(totals)

	buckets := make([]Bucket, len(totals))
	for i, total := range totals {
		n := counts[total]
		buckets[i] = Bucket{
			Total:   total,
			Count:   n,
			Percent: float64(n) / float64(outcomes) * 100,
		}
	}

	return Distribution{Spec: spec, Outcomes: outcomes, Buckets: buckets}
}
