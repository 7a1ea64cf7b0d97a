// Package reconcile keeps the derived thread material set in step with the
// template materials of the host document.
//
// A pass runs discover, gate, execute, report. Discovery is read-only: it
// validates every template candidate and lists the existing derived
// materials. The gate blocks the pass before any mutation when no valid
// template or no geometry is available. Execute runs in one store
// transaction and, depending on the mode, either creates one material per
// valid template and thread geometry or deletes every derived material.
// Individual store failures are logged, counted and never abort the
// remaining pairs, so a pass with failures still reports a complete
// counter set.
//
// Create mode is idempotent: rerunning it against an unchanged template
// set skips everything (or, with overwrite, replaces everything and
// creates nothing new).
package reconcile
