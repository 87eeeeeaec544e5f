package sandbox

import (
	"fmt"
	"os"
	"path/filepath"

	"gitlab.com/shodh-oj.net/internal/core/ports/primary"
	"gitlab.com/shodh-oj.net/internal/core/ports/secondary"
)

var _ secondary.Workspace = (*workspace)(nil)

// workspace is a temporary host directory bind-mounted into the sandbox.
// It holds the synthesized source file and any compile artifacts for one
// judging pass and is deleted when the pass ends, on every exit path.
type workspace struct {
	dir    string
	logger primary.Logger
}

func newWorkspace(logger primary.Logger) (*workspace, error) {
	dir, err := os.MkdirTemp("", "judge")
	if err != nil {
		return nil, fmt.Errorf("failed to create judge workspace: %w", err)
	}
	return &workspace{dir: dir, logger: logger}, nil
}

func (w *workspace) Dir() string {
	return w.dir
}

func (w *workspace) WriteFile(name, content string) error {
	if err := os.WriteFile(filepath.Join(w.dir, name), []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Remove deletes the workspace and everything written into it. Failures
// are logged, not returned: cleanup runs on paths that already carry an
// error of their own.
func (w *workspace) Remove() {
	if err := os.RemoveAll(w.dir); err != nil {
		w.logger.Error("Failed to clean up judge workspace", "dir", w.dir, "error", err)
	}
}
