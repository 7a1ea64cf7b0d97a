package catalog

import (
	"html"
	"strings"

	"bolt-manager/feature/geometry"
)

// parameterColumns is the fixed column order of the parameter dump, shared
// by the delimited and HTML renderings.
var parameterColumns = []string{
	"Name", "D", "P", "S", "K", "A",
	"DU1", "DU2", "U", "DH1", "DH2", "DH3", "DGL",
	"D2", "H", "C", "Beta", "B2", "B3", "B4",
	"Lengths",
}

func parameterValues(g geometry.Bolt) []string {
	lengths := make([]string, len(g.Lengths))
	for i, l := range g.Lengths {
		lengths[i] = num(l)
	}
	return []string{
		g.Name(),
		num(float64(g.D)), num(g.P), num(g.S), num(g.K), num(g.A),
		num(g.DU1), num(g.DU2), num(g.U), num(g.DH1), num(g.DH2), num(g.DH3), num(g.DGL),
		num(g.D2), num(g.H), num(g.C), num(g.Beta), num(g.B2), num(g.B3), num(g.B4),
		strings.Join(lengths, " "),
	}
}

// RenderParameters renders one delimited row per geometry listing all base
// and derived fields.
func RenderParameters(bolts []geometry.Bolt, delim string) string {
	var b strings.Builder

	header := make([]string, len(parameterColumns))
	for i, col := range parameterColumns {
		tag := tagLength
		if col == "Name" || col == "Lengths" || col == "Beta" {
			tag = tagOther
		}
		header[i] = col + tag
	}
	b.WriteString(strings.Join(header, delim))
	b.WriteByte('\n')

	for _, g := range bolts {
		b.WriteString(strings.Join(parameterValues(g), delim))
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderParametersHTML renders the parameter dump as an HTML table with the
// same column order as the delimited variant.
func RenderParametersHTML(bolts []geometry.Bolt) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head><title>Bolt Geometry Parameters</title></head>\n<body>\n")
	b.WriteString("<table border=\"1\">\n<tr>")
	for _, col := range parameterColumns {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(col))
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n")

	for _, g := range bolts {
		b.WriteString("<tr>")
		for _, v := range parameterValues(g) {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(v))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n</body>\n</html>\n")
	return b.String()
}
