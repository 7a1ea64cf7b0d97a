package catalog

import (
	"fmt"
	"strings"

	"bolt-manager/core/naming"
	"bolt-manager/core/utils"
	"bolt-manager/feature/geometry"
)

// Header type tags consumed by the downstream CAD importer. Length-typed
// columns carry their unit; everything else is tagged as opaque.
const (
	tagLength = "##LENGTH##MILLIMETERS"
	tagOther  = "##OTHER##"
)

// shankMinLength is the threshold above which a shank-bearing variant of a
// bolt or assembly exists: shorter bolts are threaded along their full
// length and have no plain shank section.
const shankMinLength = 50.0

func headerRow(delim string, fields ...string) string {
	return strings.Join(fields, delim)
}

func row(delim string, fields ...string) string {
	return strings.Join(fields, delim)
}

func num(v float64) string {
	return utils.FormatNumber(v)
}

// RenderBoltTypes renders the bolt type catalog: one row per geometry,
// customary length, shank variant and material. Shank rows exist only for
// lengths above the shank threshold.
func RenderBoltTypes(bolts []geometry.Bolt, materials []string, delim string) string {
	var b strings.Builder
	b.WriteString(headerRow(delim,
		"Name"+tagOther,
		"Diameter"+tagLength,
		"Length"+tagLength,
		"Shank"+tagOther,
		"Material"+tagOther,
		"ThreadMaterial"+tagOther,
	))
	b.WriteByte('\n')

	for _, g := range bolts {
		for _, length := range g.Lengths {
			for _, shank := range []bool{false, true} {
				if shank && length <= shankMinLength {
					continue
				}
				for _, material := range materials {
					b.WriteString(row(delim,
						boltName(g.D, length, shank),
						num(float64(g.D)),
						num(length),
						shankFlag(shank),
						material,
						naming.Material(material, g.D),
					))
					b.WriteByte('\n')
				}
			}
		}
	}
	return b.String()
}

// RenderAssemblyTypes renders the assembly type catalog. Assemblies are
// keyed by the geometry's default grip length rather than enumerated
// lengths; the bolt length is selected with the grip rule.
func RenderAssemblyTypes(bolts []geometry.Bolt, materials []string, delim string) string {
	var b strings.Builder
	b.WriteString(headerRow(delim,
		"Name"+tagOther,
		"Diameter"+tagLength,
		"GripLength"+tagLength,
		"Length"+tagLength,
		"Shank"+tagOther,
		"Material"+tagOther,
		"ThreadMaterial"+tagOther,
	))
	b.WriteByte('\n')

	for _, g := range bolts {
		length, ok := LengthForGrip(g, g.DGL)
		if !ok {
			continue
		}
		for _, shank := range []bool{false, true} {
			if shank && g.DGL <= shankMinLength {
				continue
			}
			for _, material := range materials {
				b.WriteString(row(delim,
					assemblyName(g.D, g.DGL, shank),
					num(float64(g.D)),
					num(g.DGL),
					num(length),
					shankFlag(shank),
					material,
					naming.Material(material, g.D),
				))
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}

// RenderGripLengths renders the grip-to-length lookup: for each geometry
// and each sampled grip length, the smallest customary bolt length that
// clears the grip plus head and washer. Grip lengths without a long enough
// customary length are omitted.
func RenderGripLengths(bolts []geometry.Bolt, delim string) string {
	var b strings.Builder
	b.WriteString(headerRow(delim,
		"Diameter"+tagLength,
		"GripLength"+tagLength,
		"Length"+tagLength,
	))
	b.WriteByte('\n')

	for _, g := range bolts {
		for lg := 0; lg <= maxGripLength; lg++ {
			if lg%gripStep(lg) != 0 {
				continue
			}
			length, ok := LengthForGrip(g, float64(lg))
			if !ok {
				continue
			}
			b.WriteString(row(delim,
				num(float64(g.D)),
				num(float64(lg)),
				num(length),
			))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderDiameterBands renders the banding of every integer diameter in the
// covered range onto its nearest registered nominal diameter.
func RenderDiameterBands(bolts []geometry.Bolt, delim string) string {
	var b strings.Builder
	b.WriteString(headerRow(delim,
		"Diameter"+tagLength,
		"NominalDiameter"+tagLength,
	))
	b.WriteByte('\n')

	first := bolts[0].D
	last := bolts[len(bolts)-1].D
	for d := first; d <= last; d++ {
		b.WriteString(row(delim,
			num(float64(d)),
			num(float64(NearestNominal(bolts, d))),
		))
		b.WriteByte('\n')
	}
	return b.String()
}

func boltName(d int, length float64, shank bool) string {
	name := fmt.Sprintf("Bolt M%dx%s", d, num(length))
	if shank {
		name += " with Shank"
	}
	return name
}

func assemblyName(d int, grip float64, shank bool) string {
	name := fmt.Sprintf("Assembly M%d Grip %s", d, num(grip))
	if shank {
		name += " with Shank"
	}
	return name
}

func shankFlag(shank bool) string {
	if shank {
		return "1"
	}
	return "0"
}
