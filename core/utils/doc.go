// Package utils provides small conversion and formatting helpers shared
// across features.
//
// The converters use explicit type switching rather than reflection, which
// keeps behavior predictable for the property variant rendering in
// core/store and the numeric formatting in catalog output.
package utils
