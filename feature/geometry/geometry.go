package geometry

import (
	"fmt"
	"math"
)

// Bolt holds the base parameters and derived dimensions for one nominal
// diameter of the ISO metric coarse-thread series. All dimensions are in
// millimeters, angles in degrees. Values are computed once at table
// construction and never mutated afterwards.
type Bolt struct {
	// D is the nominal diameter (e.g. 12 for M12).
	D int
	// P is the thread pitch.
	P float64
	// S is the wrench size across flats.
	S float64
	// K is the head (and nut) height.
	K float64
	// A is the maximum head-to-thread distance.
	A float64
	// DU1 is the washer clearance-hole diameter.
	DU1 float64
	// DU2 is the washer outer diameter.
	DU2 float64
	// U is the washer thickness.
	U float64
	// DH1, DH2, DH3 are the fine/medium/coarse clearance-hole diameters.
	DH1 float64
	DH2 float64
	DH3 float64
	// DGL is the default grip length used by assembly generation.
	DGL float64
	// Lengths is the ascending set of customary bolt lengths for this diameter.
	Lengths []float64

	// D2 is the effective pitch diameter, D - (3*sqrt(3)/8)*P.
	D2 float64
	// H is the thread height, (sqrt(3)/2)*P.
	H float64
	// C is the nominal circumference, pi*D.
	C float64
	// Beta is the thread helix angle in degrees, atan2(P, C).
	Beta float64
	// B2, B3, B4 are the minimum thread lengths 2D+6, 2D+12 and 2D+25.
	B2 float64
	B3 float64
	B4 float64
}

// Thread is the lighter-weight sibling of Bolt carrying only the
// thread-facing attributes needed for procedural texture parameters.
type Thread struct {
	// D is the nominal diameter.
	D int
	// P is the thread pitch.
	P float64
	// U is the nominal circumference, pi*D.
	U float64
	// Beta is the thread helix angle in degrees, atan2(P, U).
	Beta float64
}

// derive fills in the computed fields from the base parameters.
func (b *Bolt) derive() {
	b.D2 = float64(b.D) - (3.0*math.Sqrt(3.0)/8.0)*b.P
	b.H = (math.Sqrt(3.0) / 2.0) * b.P
	b.C = math.Pi * float64(b.D)
	b.Beta = math.Atan2(b.P, b.C) * 180.0 / math.Pi
	b.B2 = 2.0*float64(b.D) + 6.0
	b.B3 = 2.0*float64(b.D) + 12.0
	b.B4 = 2.0*float64(b.D) + 25.0
}

// Thread returns the thread-facing view of the bolt geometry.
func (b Bolt) Thread() Thread {
	return Thread{D: b.D, P: b.P, U: b.C, Beta: b.Beta}
}

// Name returns the metric designation, e.g. "M12".
func (b Bolt) Name() string {
	return fmt.Sprintf("M%d", b.D)
}

// Name returns the metric designation, e.g. "M12".
func (t Thread) Name() string {
	return fmt.Sprintf("M%d", t.D)
}
