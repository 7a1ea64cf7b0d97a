package catalog

import (
	"strings"
	"testing"

	"bolt-manager/feature/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderParameters(t *testing.T) {
	bolts := geometry.Bolts()
	out := RenderParameters(bolts, ";")
	lines := tableLines(t, out)

	// One row per registered geometry.
	assert.Len(t, lines[1:], len(bolts))

	header := strings.Split(lines[0], ";")
	require.Len(t, header, len(parameterColumns))
	assert.Equal(t, "Name##OTHER##", header[0])
	assert.Equal(t, "D##LENGTH##MILLIMETERS", header[1])
	assert.Equal(t, "Lengths##OTHER##", header[len(header)-1])

	// Beta is an angle and must not carry the length tag.
	var betaHeader string
	for _, h := range header {
		if strings.HasPrefix(h, "Beta") {
			betaHeader = h
		}
	}
	assert.Equal(t, "Beta##OTHER##", betaHeader)

	for i, g := range bolts {
		fields := strings.Split(lines[1+i], ";")
		require.Len(t, fields, len(parameterColumns))
		assert.Equal(t, g.Name(), fields[0])

		// Lengths are space-joined inside the last field.
		assert.Len(t, strings.Fields(fields[len(fields)-1]), len(g.Lengths))
	}
}

func TestRenderParametersHTML(t *testing.T) {
	bolts := geometry.Bolts()
	out := RenderParametersHTML(bolts)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Equal(t, len(bolts)+1, strings.Count(out, "<tr>"))
	assert.Equal(t, len(parameterColumns), strings.Count(out, "<th>"))
	assert.Equal(t, len(bolts)*len(parameterColumns), strings.Count(out, "<td>"))
	assert.Contains(t, out, "<td>M12</td>")
}
