package naming

import (
	"fmt"
	"regexp"
	"strconv"
)

// The material library encodes category, diameter and role in material
// names. " - Bolt Thread" is the delimiter sequence separating the category
// from the role; categories containing it cannot round-trip and are
// rejected by the decoder's anchored patterns.
const (
	delimiter      = " - Bolt Thread"
	templateSuffix = delimiter + " Template"
)

// TemplatePattern matches template material names, anchored.
// The capture group is the category.
var TemplatePattern = regexp.MustCompile(`^(.+) - Bolt Thread Template$`)

// MaterialPattern matches derived thread material names, anchored.
// The capture groups are the category and the nominal diameter.
var MaterialPattern = regexp.MustCompile(`^(.+) - Bolt Thread M(\d+)$`)

// FindTemplates is the store search pattern for template materials.
const FindTemplates = `.+ - Bolt Thread Template`

// FindMaterials is the store search pattern for derived thread materials.
const FindMaterials = `.+ - Bolt Thread M\d+`

// Material returns the canonical name of the derived thread material for a
// category and nominal diameter, e.g. "Steel - Bolt Thread M12".
func Material(category string, d int) string {
	return fmt.Sprintf("%s%s M%d", category, delimiter, d)
}

// Template returns the canonical template name for a category,
// e.g. "Steel - Bolt Thread Template".
func Template(category string) string {
	return category + templateSuffix
}

// Category extracts the category from a template name. A name that does not
// conform to the template pattern is an error, never a best-effort guess.
func Category(templateName string) (string, error) {
	m := TemplatePattern.FindStringSubmatch(templateName)
	if m == nil {
		return "", fmt.Errorf("name %q does not match the template naming convention", templateName)
	}
	return m[1], nil
}

// Decode extracts the category and diameter from a derived material name.
func Decode(materialName string) (string, int, error) {
	m := MaterialPattern.FindStringSubmatch(materialName)
	if m == nil {
		return "", 0, fmt.Errorf("name %q does not match the thread material naming convention", materialName)
	}
	d, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, fmt.Errorf("name %q carries an invalid diameter: %w", materialName, err)
	}
	return m[1], d, nil
}
