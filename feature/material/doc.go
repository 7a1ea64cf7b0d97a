// Package material validates thread material templates and exposes
// read-only views over the material library.
//
// A template is an externally authored material from which one derived
// thread material per nominal diameter is generated. Validate runs a fixed
// check sequence (presence, document ownership, naming convention,
// appearance, gradient bump texture) and records a per-check trace so a
// rejected template can be diagnosed from the logs alone. Templates are
// validated independently; one bad template never blocks the others.
//
// The reconcile subpackage drives the create/overwrite/skip/delete pass
// that keeps the derived material set in step with the templates.
package material
