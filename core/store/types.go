package store

// Kind identifies the variant held by a Property. The set mirrors the
// property kinds the host CAD material layer actually exposes.
type Kind int

const (
	// KindString holds a plain text value.
	KindString Kind = iota
	// KindDouble holds a floating point value (millimeters or degrees).
	KindDouble
	// KindBoolean holds a flag.
	KindBoolean
	// KindReference holds an identifier pointing at another record.
	KindReference
	// KindAsset holds a nested appearance asset.
	KindAsset
	// KindList holds an ordered list of properties.
	KindList
)

// String returns the kind label used in diagnostic traces.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindDouble:
		return "double"
	case KindBoolean:
		return "boolean"
	case KindReference:
		return "reference"
	case KindAsset:
		return "asset"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Property is a tagged variant over the property kinds of the host store.
// Exactly one value field is meaningful, selected by Kind.
type Property struct {
	// Name is the property identifier within its asset.
	Name string `json:"name"`
	// Kind selects the active variant.
	Kind Kind `json:"kind"`

	Str   string     `json:"str,omitempty"`
	Num   float64    `json:"num,omitempty"`
	Bool  bool       `json:"bool,omitempty"`
	Ref   string     `json:"ref,omitempty"`
	Asset *Asset     `json:"asset,omitempty"`
	List  []Property `json:"list,omitempty"`
}

// StringProp builds a string property.
func StringProp(name, value string) Property {
	return Property{Name: name, Kind: KindString, Str: value}
}

// DoubleProp builds a double property.
func DoubleProp(name string, value float64) Property {
	return Property{Name: name, Kind: KindDouble, Num: value}
}

// BoolProp builds a boolean property.
func BoolProp(name string, value bool) Property {
	return Property{Name: name, Kind: KindBoolean, Bool: value}
}

// RefProp builds a reference property.
func RefProp(name, target string) Property {
	return Property{Name: name, Kind: KindReference, Ref: target}
}

// AssetProp builds a nested asset property.
func AssetProp(name string, asset *Asset) Property {
	return Property{Name: name, Kind: KindAsset, Asset: asset}
}

// ListProp builds a list property.
func ListProp(name string, items []Property) Property {
	return Property{Name: name, Kind: KindList, List: items}
}

// Asset is a named, schema-tagged property bag. Appearance assets and their
// nested texture assets are both represented this way.
type Asset struct {
	// Name is the asset display name.
	Name string `json:"name"`
	// Schema declares the asset type (e.g. the gradient texture schema).
	Schema string `json:"schema"`
	// Properties is the ordered property list.
	Properties []Property `json:"properties,omitempty"`
}

// Property returns the named property and whether it exists.
func (a *Asset) Property(name string) (Property, bool) {
	if a == nil {
		return Property{}, false
	}
	for _, p := range a.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// AssetProperty returns the nested asset held by the named property, or nil
// if the property is absent or of a different kind.
func (a *Asset) AssetProperty(name string) *Asset {
	p, ok := a.Property(name)
	if !ok || p.Kind != KindAsset {
		return nil
	}
	return p.Asset
}

// SetProperty replaces the named property in place, appending when absent.
func (a *Asset) SetProperty(p Property) {
	for i := range a.Properties {
		if a.Properties[i].Name == p.Name {
			a.Properties[i] = p
			return
		}
	}
	a.Properties = append(a.Properties, p)
}

// Clone returns a deep copy of the asset.
func (a *Asset) Clone() *Asset {
	if a == nil {
		return nil
	}
	out := &Asset{Name: a.Name, Schema: a.Schema}
	out.Properties = cloneProperties(a.Properties)
	return out
}

func cloneProperties(props []Property) []Property {
	if props == nil {
		return nil
	}
	out := make([]Property, len(props))
	for i, p := range props {
		out[i] = p
		out[i].Asset = p.Asset.Clone()
		out[i].List = cloneProperties(p.List)
	}
	return out
}

// MaterialRef identifies a material inside the store.
type MaterialRef struct {
	// ID is the store-assigned identifier.
	ID string `json:"id"`
	// Name is the material display name.
	Name string `json:"name"`
}

// Material is one material record of the host document, carrying its
// appearance asset tree.
type Material struct {
	// ID is the store-assigned identifier.
	ID string `json:"id"`
	// Name is the material display name; naming conventions over this field
	// encode category, diameter and role (see core/naming).
	Name string `json:"name"`
	// DocumentID identifies the owning document. Empty means the material
	// is detached and unusable as a generation template.
	DocumentID string `json:"document_id"`
	// Appearance is the appearance asset tree, nil when the record has none.
	Appearance *Asset `json:"appearance,omitempty"`
}

// Ref returns the reference for this material.
func (m *Material) Ref() MaterialRef {
	return MaterialRef{ID: m.ID, Name: m.Name}
}

// Clone returns a deep copy of the material.
func (m *Material) Clone() *Material {
	if m == nil {
		return nil
	}
	return &Material{
		ID:         m.ID,
		Name:       m.Name,
		DocumentID: m.DocumentID,
		Appearance: m.Appearance.Clone(),
	}
}
