package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialName(t *testing.T) {
	assert.Equal(t, "Steel - Bolt Thread M12", Material("Steel", 12))
	assert.Equal(t, "Stainless Steel - Bolt Thread M6", Material("Stainless Steel", 6))
}

func TestTemplateName(t *testing.T) {
	assert.Equal(t, "Steel - Bolt Thread Template", Template("Steel"))
}

func TestCategoryRoundTrip(t *testing.T) {
	categories := []string{
		"Steel",
		"Stainless Steel",
		"Brass",
		"Steel - Galvanized", // inner " - " is not the delimiter sequence
		"ACME 4140",
	}
	for _, category := range categories {
		got, err := Category(Template(category))
		require.NoError(t, err, category)
		assert.Equal(t, category, got)
	}
}

func TestCategoryRejectsNonConforming(t *testing.T) {
	names := []string{
		"",
		"Steel",
		"Steel - Bolt Thread M12",          // derived, not a template
		"Steel - Bolt Thread Template II",  // trailing garbage
		"Steel - Bolt Thread TemplateX",    // no partial matches
		" - Bolt Thread Template",          // empty category
		"prefix Steel - Bolt Thread Template suffix",
	}
	for _, name := range names {
		_, err := Category(name)
		assert.Error(t, err, "name %q", name)
	}
}

func TestDecode(t *testing.T) {
	category, d, err := Decode("Stainless Steel - Bolt Thread M36")
	require.NoError(t, err)
	assert.Equal(t, "Stainless Steel", category)
	assert.Equal(t, 36, d)

	_, _, err = Decode("Stainless Steel - Bolt Thread Template")
	assert.Error(t, err)
	_, _, err = Decode("Steel - Bolt Thread M")
	assert.Error(t, err)
	_, _, err = Decode("Steel - Bolt Thread M12 old")
	assert.Error(t, err)
}

func TestDecodeRoundTrip(t *testing.T) {
	category, d, err := Decode(Material("Brass", 64))
	require.NoError(t, err)
	assert.Equal(t, "Brass", category)
	assert.Equal(t, 64, d)
}
