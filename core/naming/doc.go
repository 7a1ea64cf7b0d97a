// Package naming implements the bidirectional mapping between logical
// (category, diameter) pairs and the material library's naming convention.
//
// The convention is string based because the host store has no structured
// tagging: a material's name encodes its category, its role (template vs
// derived) and, for derived materials, its nominal diameter. Everything
// that depends on the convention goes through this package, so swapping it
// for structured tags would not touch the reconciliation engine or the
// catalog generators.
package naming
