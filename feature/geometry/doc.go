// Package geometry provides the static registry of ISO metric bolt and
// thread geometries.
//
// Each entry is keyed by nominal diameter (M3 through M64, coarse-thread
// series) and combines hand-curated base parameters from the relevant ISO
// tables with dimensions derived once at construction (pitch diameter,
// thread height, circumference, helix angle, minimum thread lengths).
//
// # Registry Semantics
//
// The registry is built lazily on first access and lives for the process
// lifetime. Accessors always return fully constructed, logically identical
// entries; a duplicate diameter in the curated table is a programming error
// and panics during construction. Callers treat the returned slices as
// read-only.
//
// # Usage
//
//	for _, b := range geometry.Bolts() {
//	    fmt.Println(b.Name(), b.D2, b.Beta)
//	}
//
//	b, err := geometry.BoltFor(12)
package geometry
