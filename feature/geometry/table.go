package geometry

import (
	"fmt"
	"sync"
)

// ErrUnknownDiameter is returned when a lookup targets a diameter that is
// not part of the registered series.
var ErrUnknownDiameter = fmt.Errorf("geometry: unknown nominal diameter")

// lengthSeries is the customary bolt length series. Per-diameter length sets
// are contiguous slices of this series bounded by minLen/maxLen.
var lengthSeries = []float64{
	6, 8, 10, 12, 16, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 80, 90,
	100, 110, 120, 130, 140, 150, 160, 180, 200, 220, 240, 260, 280, 300,
	320, 340, 360, 380, 400, 420, 440, 460, 480, 500,
}

// boltSpec is one row of the hand-curated base parameter table.
// Sources: ISO 261 (pitch), ISO 4014/4017 (wrench size, head height,
// head-to-thread distance), ISO 7089 (washer), ISO 273 (clearance holes).
type boltSpec struct {
	d              int
	p, s, k, a     float64
	du1, du2, u    float64
	dh1, dh2, dh3  float64
	dgl            float64
	minLen, maxLen float64
}

var boltSpecs = []boltSpec{
	{3, 0.5, 5.5, 2.0, 1.5, 3.2, 7, 0.5, 3.2, 3.4, 3.6, 20, 6, 60},
	{4, 0.7, 7, 2.8, 2.1, 4.3, 9, 0.8, 4.3, 4.5, 4.8, 25, 8, 80},
	{5, 0.8, 8, 3.5, 2.4, 5.3, 10, 1.0, 5.3, 5.5, 5.8, 30, 10, 100},
	{6, 1.0, 10, 4.0, 3.0, 6.4, 12, 1.6, 6.4, 6.6, 7.0, 35, 10, 150},
	{8, 1.25, 13, 5.3, 3.75, 8.4, 16, 1.6, 8.4, 9, 10, 45, 12, 200},
	{10, 1.5, 16, 6.4, 4.5, 10.5, 20, 2.0, 10.5, 11, 12, 60, 16, 240},
	{12, 1.75, 18, 7.5, 5.25, 13, 24, 2.5, 13, 13.5, 14.5, 100, 10, 300},
	{14, 2.0, 21, 8.8, 6.0, 15, 28, 2.5, 15, 15.5, 16.5, 100, 20, 300},
	{16, 2.0, 24, 10.0, 6.0, 17, 30, 3.0, 17, 17.5, 18.5, 110, 20, 320},
	{18, 2.5, 27, 11.5, 7.5, 19, 34, 3.0, 19, 20, 21, 120, 25, 360},
	{20, 2.5, 30, 12.5, 7.5, 21, 37, 3.0, 21, 22, 24, 130, 25, 400},
	{22, 2.5, 34, 14.0, 7.5, 23, 39, 3.0, 23, 24, 26, 140, 30, 400},
	{24, 3.0, 36, 15.0, 9.0, 25, 44, 4.0, 25, 26, 28, 150, 30, 400},
	{27, 3.0, 41, 17.0, 9.0, 28, 50, 4.0, 28, 30, 32, 160, 35, 400},
	{30, 3.5, 46, 18.7, 10.5, 31, 56, 4.0, 31, 33, 35, 180, 40, 500},
	{33, 3.5, 50, 21.0, 10.5, 34, 60, 5.0, 34, 36, 38, 200, 45, 500},
	{36, 4.0, 55, 22.5, 12.0, 37, 66, 5.0, 37, 39, 42, 220, 50, 500},
	{39, 4.0, 60, 25.0, 12.0, 40, 72, 6.0, 40, 42, 45, 240, 50, 500},
	{42, 4.5, 65, 26.0, 13.5, 43, 78, 7.0, 43, 45, 48, 260, 55, 500},
	{45, 4.5, 70, 28.0, 13.5, 46, 85, 7.0, 46, 48, 52, 280, 60, 500},
	{48, 5.0, 75, 30.0, 15.0, 50, 92, 8.0, 50, 52, 56, 300, 60, 500},
	{52, 5.0, 80, 33.0, 15.0, 54, 98, 8.0, 54, 56, 62, 320, 65, 500},
	{56, 5.5, 85, 35.0, 16.5, 58, 105, 9.0, 58, 62, 66, 340, 70, 500},
	{64, 6.0, 95, 40.0, 18.0, 66, 115, 9.0, 66, 70, 74, 380, 80, 500},
}

// table is the constructed registry: bolts in insertion order plus a
// diameter index for lookups.
type table struct {
	bolts   []Bolt
	threads []Thread
	byD     map[int]int
}

// newTable builds the registry from the curated parameter rows. A duplicate
// diameter in the table is a programming error and panics.
func newTable() *table {
	t := &table{byD: make(map[int]int, len(boltSpecs))}
	for _, s := range boltSpecs {
		if _, dup := t.byD[s.d]; dup {
			panic(fmt.Sprintf("geometry: duplicate nominal diameter M%d in table", s.d))
		}
		b := Bolt{
			D: s.d, P: s.p, S: s.s, K: s.k, A: s.a,
			DU1: s.du1, DU2: s.du2, U: s.u,
			DH1: s.dh1, DH2: s.dh2, DH3: s.dh3,
			DGL:     s.dgl,
			Lengths: lengthsBetween(s.minLen, s.maxLen),
		}
		b.derive()
		t.byD[s.d] = len(t.bolts)
		t.bolts = append(t.bolts, b)
		t.threads = append(t.threads, b.Thread())
	}
	return t
}

// lengthsBetween slices the customary length series to [min, max] inclusive.
func lengthsBetween(min, max float64) []float64 {
	out := make([]float64, 0, len(lengthSeries))
	for _, l := range lengthSeries {
		if l >= min && l <= max {
			out = append(out, l)
		}
	}
	return out
}

var (
	tableOnce sync.Once
	singleton *table
)

func registry() *table {
	tableOnce.Do(func() {
		singleton = newTable()
	})
	return singleton
}

// Bolts returns the full bolt geometry registry in insertion order.
// The registry is built once on first access and is read-only thereafter;
// callers must not mutate the returned slice.
func Bolts() []Bolt {
	return registry().bolts
}

// Threads returns the thread geometry registry in insertion order.
func Threads() []Thread {
	return registry().threads
}

// BoltFor returns the bolt geometry for the given nominal diameter.
func BoltFor(d int) (Bolt, error) {
	t := registry()
	i, ok := t.byD[d]
	if !ok {
		return Bolt{}, fmt.Errorf("%w: M%d", ErrUnknownDiameter, d)
	}
	return t.bolts[i], nil
}

// ThreadFor returns the thread geometry for the given nominal diameter.
func ThreadFor(d int) (Thread, error) {
	t := registry()
	i, ok := t.byD[d]
	if !ok {
		return Thread{}, fmt.Errorf("%w: M%d", ErrUnknownDiameter, d)
	}
	return t.threads[i], nil
}
