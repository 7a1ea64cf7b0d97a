package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Local writes catalog files to the local filesystem under a base directory.
type Local struct {
	// Dir is the base directory; it is created on first write.
	Dir string
}

// NewLocal creates a filesystem sink rooted at dir.
func NewLocal(dir string) *Local {
	return &Local{Dir: dir}
}

// Write stores content at path relative to the base directory.
func (s *Local) Write(ctx context.Context, path, content string, overwrite bool) (Outcome, error) {
	target := filepath.Join(s.Dir, path)

	outcome := OutcomeCreated
	if _, err := os.Stat(target); err == nil {
		if !overwrite {
			return OutcomeSkipped, nil
		}
		outcome = OutcomeOverwritten
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to stat %s: %w", target, err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", target, err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	return outcome, nil
}
