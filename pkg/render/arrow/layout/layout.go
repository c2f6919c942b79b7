// Package layout places arrow glyphs along a canvas axis. Two schemes are
// provided: even spacing across a span for flow patterns, and a split into
// two opposing groups around a center gap for spread patterns. All
// arithmetic floors consistently, so positions are deterministic and stay
// inside the margin-inset span, except when the count is so large that the
// minimum one-pixel spacing overflows it.
package layout

import "math"

// EvenSpaced returns n positions along a span, inset by margin on both ends.
// Positions sit at margin + (i+1)*spacing with spacing equal to the usable
// span divided by n+1, so the first and last arrows keep clear of the
// margins. The spacing floor of 1 means a count far beyond the usable span
// walks past the far margin instead of stacking every arrow on one pixel.
func EvenSpaced(span, margin, n int) []int {
	avail := span - 2*margin
	spacing := avail / (n + 1)
	if spacing < 1 {
		spacing = 1
	}

	positions := make([]int, n)
	for i := range positions {
		positions[i] = margin + (i+1)*spacing
	}
	return positions
}

// Split holds the axis positions of the two opposing spread groups. Near is
// the group closer to the axis origin (left or top), Far the other one.
type Split struct {
	Near []int
	Far  []int
}

// SplitGroups places n/2 arrows on each side of a center gap sized as a
// fraction of the usable span (margin span/8 on both ends). Odd counts
// truncate: n=5 places two arrows per side and drops the fifth.
func SplitGroups(span, n int, gapRatio float64) Split {
	perSide := n / 2
	margin := span / 8
	avail := span - 2*margin

	gap := float64(avail) * gapRatio
	side := math.Floor((float64(avail) - gap) / 2)

	var spacing float64
	if perSide > 1 {
		spacing = math.Floor(side / float64(perSide+1))
	} else {
		spacing = math.Floor(side / 2)
	}

	nearStart := float64(margin)
	farStart := float64(span/2) + math.Floor(gap/2)

	s := Split{
		Near: make([]int, perSide),
		Far:  make([]int, perSide),
	}
	for i := 0; i < perSide; i++ {
		s.Near[i] = int(nearStart + float64(i+1)*spacing)
		s.Far[i] = int(farStart + float64(i+1)*spacing)
	}
	return s
}
