package store

import (
	"context"
	"errors"
)

// Well-known appearance schema and property names. The naming convention is
// part of the host document contract; see core/naming for the codec that
// layers category/diameter semantics on top of material names.
const (
	// SchemaGradient is the schema a usable bump/pattern texture asset
	// declares.
	SchemaGradient = "gradient"

	// PropBump is the appearance property holding the procedural
	// bump/pattern texture asset.
	PropBump = "bump"

	// Procedural texture parameters edited when deriving a material from a
	// template. Scale values are millimeters, the angle is degrees.
	PropScaleX  = "scale_x"
	PropScaleY  = "scale_y"
	PropAngle   = "rotation_angle"
	PropRepeatX = "repeat_x"
	PropRepeatY = "repeat_y"
)

// ErrNotFound is returned when a delete targets a material that does not
// exist in the store.
var ErrNotFound = errors.New("store: material not found")

// Store is the narrow boundary to the host CAD document's material library.
// Implementations are scoped to a single document.
type Store interface {
	// Find returns all materials whose name matches the given pattern.
	// The pattern is an anchored regular expression over the full name.
	Find(ctx context.Context, namePattern string) ([]*Material, error)

	// Create duplicates the template into a new material with the desired
	// name, applying the property edits to the template's bump texture
	// asset (or the appearance root when no bump asset exists).
	Create(ctx context.Context, template *Material, name string, edits []Property) (*Material, error)

	// Delete removes the referenced material.
	Delete(ctx context.Context, ref MaterialRef) error
}

// Transactor scopes a body of store mutations to one transaction of the
// host store: the transaction commits when fn returns nil and rolls back
// when it returns an error. Nested calls are not supported.
type Transactor interface {
	Run(ctx context.Context, name string, fn func(tx Store) error) error
}

// ApplyEdits applies property edits to the material's bump texture asset,
// falling back to the appearance root when the material has no bump asset.
// The material is modified in place; callers clone first when the original
// must stay untouched.
func ApplyEdits(m *Material, edits []Property) {
	if m.Appearance == nil || len(edits) == 0 {
		return
	}
	target := m.Appearance.AssetProperty(PropBump)
	if target == nil {
		target = m.Appearance
	}
	for _, e := range edits {
		target.SetProperty(e)
	}
}
