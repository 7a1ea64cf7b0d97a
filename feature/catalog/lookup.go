package catalog

import "bolt-manager/feature/geometry"

// maxGripLength bounds the grip-to-length lookup sampling range.
const maxGripLength = 600

// gripStep returns the sampling resolution for a grip length: fine steps
// for small grips where a millimeter matters, coarser further out.
func gripStep(lg int) int {
	switch {
	case lg < 23:
		return 2
	case lg < 100:
		return 5
	default:
		return 10
	}
}

// LengthForGrip selects the smallest customary bolt length that clears the
// grip: the bolt must span the grip itself, the head/nut height twice and
// the washer thickness twice, so lmin = LG + 2K + 2U. The selected length
// is strictly greater than lmin; false means no customary length of this
// diameter is long enough.
func LengthForGrip(g geometry.Bolt, gripLength float64) (float64, bool) {
	lmin := gripLength + 2*g.K + 2*g.U
	for _, l := range g.Lengths {
		if l > lmin {
			return l, true
		}
	}
	return 0, false
}

// NearestNominal assigns an integer diameter to the nearest registered
// nominal diameter. Between two neighbors the lower wins ties: the upper
// neighbor is only chosen when strictly closer.
func NearestNominal(bolts []geometry.Bolt, d int) int {
	best := bolts[0].D
	bestDist := abs(d - best)
	for _, g := range bolts[1:] {
		if dist := abs(d - g.D); dist < bestDist {
			best = g.D
			bestDist = dist
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
