package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientAppearance() *Asset {
	return &Asset{
		Name:   "Appearance",
		Schema: "prism",
		Properties: []Property{
			StringProp("description", "hot rolled"),
			DoubleProp("glossiness", 0.25),
			AssetProp(PropBump, &Asset{
				Name:   "Thread Pattern",
				Schema: SchemaGradient,
				Properties: []Property{
					DoubleProp(PropScaleX, 1.75),
					DoubleProp(PropScaleY, 37.7),
					BoolProp(PropRepeatX, true),
				},
			}),
		},
	}
}

func TestFormatProperty(t *testing.T) {
	tests := []struct {
		name string
		prop Property
		want string
	}{
		{"String", StringProp("description", "hot rolled"), "description=hot rolled (string)"},
		{"Double", DoubleProp("glossiness", 0.25), "glossiness=0.25 (double)"},
		{"DoubleWhole", DoubleProp(PropScaleX, 2), "scale_x=2 (double)"},
		{"Boolean", BoolProp(PropRepeatX, true), "repeat_x=true (boolean)"},
		{"Reference", RefProp("base", "mat-7"), "base=->mat-7 (reference)"},
		{"Asset", AssetProp(PropBump, &Asset{Name: "Thread", Schema: SchemaGradient}), "bump=Thread[gradient] (asset)"},
		{"NilAsset", AssetProp(PropBump, nil), "bump=<nil asset> (asset)"},
		{"List", ListProp("tints", []Property{DoubleProp("r", 1), DoubleProp("g", 0.5)}), "tints=[r=1 (double), g=0.5 (double)] (list)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatProperty(tt.prop))
		})
	}
}

func TestDumpAsset(t *testing.T) {
	lines := DumpAsset(gradientAppearance())
	require.NotEmpty(t, lines)

	assert.Equal(t, "Appearance[prism]", lines[0])
	assert.Contains(t, lines, "  bump=Thread Pattern[gradient] (asset)")
	// Nested texture parameters are indented one level deeper.
	assert.Contains(t, lines, "    scale_x=1.75 (double)")

	assert.Nil(t, DumpAsset(nil))
}

func TestAssetPropertyAccess(t *testing.T) {
	app := gradientAppearance()

	bump := app.AssetProperty(PropBump)
	require.NotNil(t, bump)
	assert.Equal(t, SchemaGradient, bump.Schema)

	assert.Nil(t, app.AssetProperty("missing"))
	// Non-asset kinds are not returned as assets.
	assert.Nil(t, app.AssetProperty("description"))

	p, ok := bump.Property(PropScaleX)
	require.True(t, ok)
	assert.Equal(t, 1.75, p.Num)
}

func TestSetPropertyReplacesInPlace(t *testing.T) {
	app := gradientAppearance()
	bump := app.AssetProperty(PropBump)
	before := len(bump.Properties)

	bump.SetProperty(DoubleProp(PropScaleX, 2.5))
	assert.Len(t, bump.Properties, before)
	p, _ := bump.Property(PropScaleX)
	assert.Equal(t, 2.5, p.Num)

	bump.SetProperty(DoubleProp(PropAngle, 3.2))
	assert.Len(t, bump.Properties, before+1)
}

func TestCloneIsDeep(t *testing.T) {
	original := &Material{
		ID:         "1",
		Name:       "Steel - Bolt Thread Template",
		DocumentID: "doc-1",
		Appearance: gradientAppearance(),
	}

	clone := original.Clone()
	clone.Appearance.AssetProperty(PropBump).SetProperty(DoubleProp(PropScaleX, 99))

	p, _ := original.Appearance.AssetProperty(PropBump).Property(PropScaleX)
	assert.Equal(t, 1.75, p.Num, "clone mutation leaked into original")
}

func TestApplyEdits(t *testing.T) {
	t.Run("TargetsBumpAsset", func(t *testing.T) {
		m := &Material{Name: "x", Appearance: gradientAppearance()}
		ApplyEdits(m, []Property{
			DoubleProp(PropScaleX, 2.0),
			DoubleProp(PropAngle, 3.19),
		})

		bump := m.Appearance.AssetProperty(PropBump)
		sx, _ := bump.Property(PropScaleX)
		assert.Equal(t, 2.0, sx.Num)
		angle, _ := bump.Property(PropAngle)
		assert.Equal(t, 3.19, angle.Num)
	})

	t.Run("FallsBackToAppearanceRoot", func(t *testing.T) {
		m := &Material{Name: "x", Appearance: &Asset{Name: "Appearance"}}
		ApplyEdits(m, []Property{DoubleProp(PropScaleX, 2.0)})

		p, ok := m.Appearance.Property(PropScaleX)
		assert.True(t, ok)
		assert.Equal(t, 2.0, p.Num)
	})

	t.Run("NilAppearanceIsNoop", func(t *testing.T) {
		m := &Material{Name: "x"}
		ApplyEdits(m, []Property{DoubleProp(PropScaleX, 2.0)})
		assert.Nil(t, m.Appearance)
	})
}
