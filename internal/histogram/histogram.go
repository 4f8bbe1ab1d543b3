// Package histogram renders exact dice distributions as text histograms.
package histogram

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/cory-johannsen/roll/internal/dice"
)

// barChar is the glyph used for the proportional bar.
const barChar = "#"

// Bar returns the proportional bar for a percentage: one character per two
// percentage points, rounded to nearest, with a minimum of one character for
// any non-zero percentage.
//
// Precondition: percent >= 0.
func Bar(percent float64) string {
	if percent <= 0 {
		return ""
	}
	n := int(math.Round(percent / 2))
	if n < 1 {
		n = 1
	}
	return strings.Repeat(barChar, n)
}

// Render writes one line per achievable total: the total, its percentage to
// two decimal places, and the proportional bar. Percentages are rounded for
// display only; d itself stays unrounded.
//
// Precondition: d must come from dice.Enumerate.
func Render(w io.Writer, d dice.Distribution) error {
	for _, b := range d.Buckets {
		if _, err := fmt.Fprintf(w, "%3d  %6.2f%%  %s\n", b.Total, b.Percent, Bar(b.Percent)); err != nil {
			return fmt.Errorf("rendering histogram for %s: %w", d.Spec, err)
		}
	}
	return nil
}
