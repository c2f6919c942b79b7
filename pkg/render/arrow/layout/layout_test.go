package layout

import (
	"testing"
)

func TestEvenSpaced(t *testing.T) {
	tests := []struct {
		name   string
		span   int
		margin int
		n      int
		want   []int
	}{
		{"three across default span", 100, 20, 3, []int{35, 50, 65}},
		{"single arrow centers", 100, 20, 1, []int{50}},
		{"five on wide span", 200, 40, 5, []int{60, 80, 100, 120, 140}},
		{"two arrows", 100, 20, 2, []int{40, 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvenSpaced(tt.span, tt.margin, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("EvenSpaced() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("position %d = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEvenSpacedInvariants(t *testing.T) {
	spans := []int{60, 100, 150, 300, 1000}
	counts := []int{1, 2, 3, 4, 7, 12}

	for _, span := range spans {
		for _, n := range counts {
			margin := span / 5
			got := EvenSpaced(span, margin, n)

			if len(got) != n {
				t.Fatalf("span=%d n=%d: got %d positions", span, n, len(got))
			}
			for i, p := range got {
				if p < margin || p > span-margin {
					t.Errorf("span=%d n=%d: position %d = %d outside [%d, %d]",
						span, n, i, p, margin, span-margin)
				}
				if i > 0 && p <= got[i-1] {
					t.Errorf("span=%d n=%d: positions not strictly increasing: %v", span, n, got)
				}
			}
		}
	}
}

func TestEvenSpacedOverflowCount(t *testing.T) {
	// Twenty arrows on a 6px usable span floor the spacing at one pixel.
	// Positions stay distinct and increasing but walk past the far margin.
	got := EvenSpaced(10, 2, 20)
	if len(got) != 20 {
		t.Fatalf("got %d positions, want 20", len(got))
	}
	for i, p := range got {
		if p != 2+i+1 {
			t.Errorf("position %d = %d, want %d", i, p, 2+i+1)
		}
	}
	if last := got[len(got)-1]; last <= 10-2 {
		t.Errorf("last position = %d, expected overflow past %d", last, 10-2)
	}
}

func TestSplitGroups(t *testing.T) {
	tests := []struct {
		name     string
		span     int
		n        int
		gapRatio float64
		wantNear []int
		wantFar  []int
	}{
		{
			name: "default vertical spread",
			span: 150, n: 6, gapRatio: 0.2,
			wantNear: []int{29, 40, 51},
			wantFar:  []int{97, 108, 119},
		},
		{
			name: "default spotlight spread",
			span: 100, n: 4, gapRatio: 0.2,
			wantNear: []int{22, 32},
			wantFar:  []int{67, 77},
		},
		{
			name: "wide horizontal spread",
			span: 300, n: 6, gapRatio: 0.2,
			wantNear: []int{59, 81, 103},
			wantFar:  []int{194, 216, 238},
		},
		{
			name: "minimum count single per side",
			span: 300, n: 2, gapRatio: 0.2,
			wantNear: []int{82},
			wantFar:  []int{217},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitGroups(tt.span, tt.n, tt.gapRatio)
			assertPositions(t, "near", got.Near, tt.wantNear)
			assertPositions(t, "far", got.Far, tt.wantFar)
		})
	}
}

func assertPositions(t *testing.T, label string, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s = %v, want %v", label, got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %d, want %d", label, i, got[i], want[i])
		}
	}
}

func TestSplitGroupsOddCountTruncates(t *testing.T) {
	// Five arrows place two per side; the fifth is dropped.
	got := SplitGroups(100, 5, 0.2)
	if len(got.Near) != 2 || len(got.Far) != 2 {
		t.Errorf("n=5: got %d near + %d far, want 2 + 2", len(got.Near), len(got.Far))
	}

	four := SplitGroups(100, 4, 0.2)
	for i := range four.Near {
		if got.Near[i] != four.Near[i] || got.Far[i] != four.Far[i] {
			t.Errorf("n=5 positions differ from n=4: %v vs %v", got, four)
		}
	}
}

func TestSplitGroupsGapInvariant(t *testing.T) {
	spans := []int{80, 100, 150, 300}
	counts := []int{2, 4, 6, 8}
	ratios := []float64{0.1, 0.2, 0.3, 0.4}

	for _, span := range spans {
		for _, n := range counts {
			for _, ratio := range ratios {
				got := SplitGroups(span, n, ratio)

				margin := span / 8
				avail := span - 2*margin
				gap := float64(avail) * ratio
				gapLo := float64(span)/2 - gap/2
				gapHi := float64(span)/2 + gap/2

				for _, p := range got.Near {
					if float64(p) >= gapLo {
						t.Errorf("span=%d n=%d ratio=%.1f: near position %d inside gap [%.1f, %.1f]",
							span, n, ratio, p, gapLo, gapHi)
					}
					if p < margin {
						t.Errorf("span=%d n=%d ratio=%.1f: near position %d before margin %d",
							span, n, ratio, p, margin)
					}
				}
				for _, p := range got.Far {
					if float64(p) <= gapHi {
						t.Errorf("span=%d n=%d ratio=%.1f: far position %d inside gap [%.1f, %.1f]",
							span, n, ratio, p, gapLo, gapHi)
					}
					if p > span-margin {
						t.Errorf("span=%d n=%d ratio=%.1f: far position %d past margin %d",
							span, n, ratio, p, span-margin)
					}
				}
			}
		}
	}
}
