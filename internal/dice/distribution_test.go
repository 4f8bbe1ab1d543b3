package dice_test

import (
	"math"
	"testing"

	"github.com/cory-johannsen/roll/internal/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestEnumerate_TwoD6 verifies the canonical 2d6 distribution: 36 outcomes,
// total 7 most likely at 6/36, totals 2 and 12 least likely at 1/36.
func TestEnumerate_TwoD6(t *testing.T) {
	d := dice.Enumerate(dice.MustParse("2d6"))

	assert.Equal(t, int64(36), d.Outcomes)
	require.Len(t, d.Buckets, 11, "2d6 must yield totals 2 through 12")

	byTotal := make(map[int]dice.Bucket, len(d.Buckets))
	for _, b := range d.Buckets {
		byTotal[b.Total] = b
	}

	assert.Equal(t, int64(6), byTotal[7].Count)
	assert.InDelta(t, 100.0*6/36, byTotal[7].Percent, 1e-9)
	assert.Equal(t, int64(1), byTotal[2].Count)
	assert.InDelta(t, 100.0*1/36, byTotal[2].Percent, 1e-9)
	assert.Equal(t, int64(1), byTotal[12].Count)
	assert.InDelta(t, 100.0*1/36, byTotal[12].Percent, 1e-9)

	for _, b := range d.Buckets {
		assert.LessOrEqual(t, b.Count, byTotal[7].Count,
			"total 7 must be the mode of 2d6")
	}
}

// TestEnumerate_SingleDie verifies 1dS is uniform at 100/S percent per face.
func TestEnumerate_SingleDie(t *testing.T) {
	d := dice.Enumerate(dice.MustParse("1d6"))

	assert.Equal(t, int64(6), d.Outcomes)
	require.Len(t, d.Buckets, 6)
	for i, b := range d.Buckets {
		assert.Equal(t, i+1, b.Total)
		assert.Equal(t, int64(1), b.Count)
		assert.InDelta(t, 100.0/6, b.Percent, 1e-9)
	}
}

// TestEnumerate_OneSidedDie verifies the degenerate 3d1 spec: a single
// certain total.
func TestEnumerate_OneSidedDie(t *testing.T) {
	d := dice.Enumerate(dice.MustParse("3d1+2"))

	assert.Equal(t, int64(1), d.Outcomes)
	require.Len(t, d.Buckets, 1)
	assert.Equal(t, 5, d.Buckets[0].Total)
	assert.InDelta(t, 100.0, d.Buckets[0].Percent, 1e-9)
}

// TestEnumerate_ModifierShiftsTotals verifies a modifier translates every
// total without changing counts or percentages.
func TestEnumerate_ModifierShiftsTotals(t *testing.T) {
	plain := dice.Enumerate(dice.MustParse("2d6"))
	shifted := dice.Enumerate(dice.MustParse("2d6-4"))

	require.Len(t, shifted.Buckets, len(plain.Buckets))
	for i, b := range plain.Buckets {
		assert.Equal(t, b.Total-4, shifted.Buckets[i].Total)
		assert.Equal(t, b.Count, shifted.Buckets[i].Count)
		assert.InDelta(t, b.Percent, shifted.Buckets[i].Percent, 1e-12)
	}
}

// TestEnumerate_Property verifies for arbitrary small specs: percentages sum
// to 100 within 1e-9 relative, totals are a contiguous ascending range, and
// counts sum to Sides^Count.
func TestEnumerate_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 4).Draw(rt, "count")
		sides := rapid.IntRange(1, 8).Draw(rt, "sides")
		modifier := rapid.IntRange(-10, 10).Draw(rt, "modifier")

		spec := dice.Spec{Raw: "test", Count: count, Sides: sides, Modifier: modifier}
		d := dice.Enumerate(spec)

		want := int64(math.Pow(float64(sides), float64(count)))
		assert.Equal(rt, want, d.Outcomes, "Outcomes must equal Sides^Count")

		var mass float64
		var combos int64
		for i, b := range d.Buckets {
			mass += b.Percent
			combos += b.Count
			assert.Equal(rt, count+modifier+i, b.Total,
				"totals must be contiguous and ascending")
		}
		assert.Equal(rt, d.Outcomes, combos, "bucket counts must sum to Outcomes")
		assert.InDelta(rt, 100.0, mass, 1e-9, "probability mass must be 100%%")

		first := d.Buckets[0].Total
		last := d.Buckets[len(d.Buckets)-1].Total
		assert.Equal(rt, count+modifier, first)
		assert.Equal(rt, count*sides+modifier, last)
	})
}

// TestEnumerate_Idempotent verifies Enumerate is a pure function: repeated
// calls yield identical results.
func TestEnumerate_Idempotent(t *testing.T) {
	spec := dice.MustParse("3d6+1")
	first := dice.Enumerate(spec)
	second := dice.Enumerate(spec)
	assert.Equal(t, first, second)
}

// TestEnumerate_Symmetry verifies an unmodified pool is symmetric around its
// mean: bucket i and bucket len-1-i carry equal counts.
func TestEnumerate_Symmetry(t *testing.T) {
	d := dice.Enumerate(dice.MustParse("3d8"))
	n := len(d.Buckets)
	for i := 0; i < n/2; i++ {
		assert.Equal(t, d.Buckets[i].Count, d.Buckets[n-1-i].Count,
			"bucket %d and %d must mirror", i, n-1-i)
	}
}
