package reconcile

import "go.uber.org/zap"

// Counters is the per-pass outcome record. It is reset at the start of a
// pass, accumulated only during it and reported once at the end.
type Counters struct {
	// Geometries is the number of thread geometries driving the pass.
	Geometries int `json:"geometries"`
	// ValidTemplates and InvalidTemplates partition the template candidates.
	ValidTemplates   int `json:"valid_templates"`
	InvalidTemplates int `json:"invalid_templates"`
	// Existing is the number of derived materials found before mutating.
	Existing int `json:"existing"`

	// Created counts materials newly created.
	Created int `json:"created"`
	// Overwritten counts existing materials replaced.
	Overwritten int `json:"overwritten"`
	// Skipped counts existing materials left untouched.
	Skipped int `json:"skipped"`
	// Deleted counts materials removed.
	Deleted int `json:"deleted"`

	// Per-outcome failure counts. A failure never aborts the pass.
	CreateFailed    int `json:"create_failed"`
	OverwriteFailed int `json:"overwrite_failed"`
	DeleteFailed    int `json:"delete_failed"`
}

// Failures returns the total failed operations of the pass.
func (c Counters) Failures() int {
	return c.CreateFailed + c.OverwriteFailed + c.DeleteFailed
}

// Changed reports whether the pass mutated the store at all.
func (c Counters) Changed() bool {
	return c.Created+c.Overwritten+c.Deleted > 0
}

// Fields returns the counters as structured log fields.
func (c Counters) Fields() []zap.Field {
	return []zap.Field{
		zap.Int("geometries", c.Geometries),
		zap.Int("valid_templates", c.ValidTemplates),
		zap.Int("invalid_templates", c.InvalidTemplates),
		zap.Int("existing", c.Existing),
		zap.Int("created", c.Created),
		zap.Int("overwritten", c.Overwritten),
		zap.Int("skipped", c.Skipped),
		zap.Int("deleted", c.Deleted),
		zap.Int("create_failed", c.CreateFailed),
		zap.Int("overwrite_failed", c.OverwriteFailed),
		zap.Int("delete_failed", c.DeleteFailed),
	}
}
