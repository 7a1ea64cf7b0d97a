package material

import (
	"fmt"
	"strings"

	"bolt-manager/core/naming"
	"bolt-manager/core/store"
)

// Check is one validation step's outcome, kept for the diagnostic trace.
type Check struct {
	// Name identifies the check.
	Name string `json:"name"`
	// Passed reports whether the check succeeded.
	Passed bool `json:"passed"`
	// Detail explains a failure; empty on success.
	Detail string `json:"detail,omitempty"`
}

// Result is the full validation outcome for one template candidate.
type Result struct {
	// MaterialName is the candidate's name, empty for a nil candidate.
	MaterialName string `json:"material_name,omitempty"`
	// Category is the category decoded from the name, set once the naming
	// check has passed.
	Category string `json:"category,omitempty"`
	// Checks is the ordered trace of every check that ran. Validation stops
	// at the first failure, so a failed check is always the last entry.
	Checks []Check `json:"checks"`
}

// Valid reports whether every check passed.
func (r Result) Valid() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return len(r.Checks) > 0
}

// Reason returns the failure detail of the first failed check, or "".
func (r Result) Reason() string {
	for _, c := range r.Checks {
		if !c.Passed {
			return c.Detail
		}
	}
	return ""
}

// Trace renders the check trace as one line per check for logging.
func (r Result) Trace() string {
	var b strings.Builder
	for i, c := range r.Checks {
		if i > 0 {
			b.WriteByte('\n')
		}
		mark := "ok"
		if !c.Passed {
			mark = "FAIL"
		}
		b.WriteString(fmt.Sprintf("%-4s %s", mark, c.Name))
		if c.Detail != "" {
			b.WriteString(": ")
			b.WriteString(c.Detail)
		}
	}
	return b.String()
}

func (r *Result) pass(name string) {
	r.Checks = append(r.Checks, Check{Name: name, Passed: true})
}

func (r *Result) fail(name, format string, args ...any) Result {
	r.Checks = append(r.Checks, Check{Name: name, Detail: fmt.Sprintf(format, args...)})
	return *r
}

// Validate checks whether a material is usable as a generation template.
// Checks run in a fixed order and stop at the first failure: the candidate
// must exist, belong to a document, carry a template-convention name, have
// an appearance and hold a bump texture asset of the gradient schema.
// Validation never mutates the candidate.
func Validate(m *store.Material) Result {
	var r Result

	if m == nil {
		return r.fail("present", "no material given")
	}
	r.MaterialName = m.Name
	r.pass("present")

	if m.DocumentID == "" {
		return r.fail("owned", "material %q belongs to no document", m.Name)
	}
	r.pass("owned")

	category, err := naming.Category(m.Name)
	if err != nil {
		return r.fail("name", "%v", err)
	}
	r.Category = category
	r.pass("name")

	if m.Appearance == nil {
		return r.fail("appearance", "material %q has no appearance asset", m.Name)
	}
	r.pass("appearance")

	bump := m.Appearance.AssetProperty(store.PropBump)
	if bump == nil {
		return r.fail("bump", "appearance of %q has no %s texture asset", m.Name, store.PropBump)
	}
	if bump.Schema != store.SchemaGradient {
		return r.fail("bump", "bump texture of %q has schema %q, want %q",
			m.Name, bump.Schema, store.SchemaGradient)
	}
	r.pass("bump")

	return r
}
