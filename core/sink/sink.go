package sink

import "context"

// Outcome is the tri-state result of a catalog write.
type Outcome string

const (
	// OutcomeCreated means the target did not exist and was written.
	OutcomeCreated Outcome = "created"
	// OutcomeOverwritten means the target existed and was replaced.
	OutcomeOverwritten Outcome = "overwritten"
	// OutcomeSkipped means the target existed and overwrite was not
	// requested; nothing was written.
	OutcomeSkipped Outcome = "skipped"
)

// Sink writes fully assembled catalog text to a target path. Implementations
// refuse to replace an existing target unless overwrite is set, reporting
// the skip as an outcome rather than an error. Content is always written in
// one call; partial targets are never produced.
type Sink interface {
	Write(ctx context.Context, path, content string, overwrite bool) (Outcome, error)
}
