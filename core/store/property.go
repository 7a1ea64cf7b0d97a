package store

import (
	"fmt"
	"strings"

	"bolt-manager/core/utils"
)

// FormatProperty renders a single property as "name=value (kind)" for
// diagnostic traces. List items are rendered inline; nested assets render
// their name and schema only (see DumpAsset for full trees).
func FormatProperty(p Property) string {
	var value string
	switch p.Kind {
	case KindString:
		value = p.Str
	case KindDouble:
		value = utils.FormatNumber(p.Num)
	case KindBoolean:
		value = utils.ToString(p.Bool)
	case KindReference:
		value = "->" + p.Ref
	case KindAsset:
		if p.Asset == nil {
			value = "<nil asset>"
		} else {
			value = fmt.Sprintf("%s[%s]", p.Asset.Name, p.Asset.Schema)
		}
	case KindList:
		parts := make([]string, 0, len(p.List))
		for _, item := range p.List {
			parts = append(parts, FormatProperty(item))
		}
		value = "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprintf("%s=%s (%s)", p.Name, value, p.Kind)
}

// DumpAsset renders one line per property of the asset tree, indented by
// nesting depth. Used by the template validation trace; this is the explicit
// serializer over the property variants, no reflection involved.
func DumpAsset(a *Asset) []string {
	if a == nil {
		return nil
	}
	lines := []string{fmt.Sprintf("%s[%s]", a.Name, a.Schema)}
	dumpProperties(a.Properties, 1, &lines)
	return lines
}

func dumpProperties(props []Property, depth int, lines *[]string) {
	indent := strings.Repeat("  ", depth)
	for _, p := range props {
		*lines = append(*lines, indent+FormatProperty(p))
		if p.Kind == KindAsset && p.Asset != nil {
			dumpProperties(p.Asset.Properties, depth+1, lines)
		}
	}
}
