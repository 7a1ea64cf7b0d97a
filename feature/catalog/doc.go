// Package catalog generates the tabular text files the downstream CAD
// importer consumes: bolt and assembly type catalogs, the grip-to-length
// lookup, the diameter banding table, and the geometry parameter dump in
// delimited and HTML form.
//
// # Generation Rules
//
// Catalogs enumerate the cross-product of the geometry registry with the
// discrete option space (customary length, shank presence, material
// category). Shank variants only exist above 50 mm, where the bolt has a
// plain section. The grip-to-length lookup samples grip lengths at a
// resolution that coarsens with distance (2/5/10 mm) and selects the
// smallest customary length strictly exceeding LG + 2K + 2U. Diameter
// banding assigns every integer diameter to its nearest registered nominal
// diameter, with ties resolved downward.
//
// Header fields carry importer type tags (##LENGTH##MILLIMETERS, ##OTHER##).
// Every table is assembled fully in memory and written with a single sink
// call, so no partial files are ever produced.
package catalog
