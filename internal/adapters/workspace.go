package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rusl-mdapi/internal/ports"
)

// WorkspaceAdapter manages the Metadata API output directory.
type WorkspaceAdapter struct{}

func NewWorkspaceAdapter() WorkspaceAdapter {
	return WorkspaceAdapter{}
}

func (a WorkspaceAdapter) EnsureDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return nil
}

// RemoveDir deletes path and everything below it. A missing path is not an
// error.
func (a WorkspaceAdapter) RemoveDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if isProtectedDir(path) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("refusing to remove %s", path))
	}
	if err := os.RemoveAll(path); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to remove output directory").
			WithCause(err)
	}
	return nil
}

func isProtectedDir(path string) bool {
	cleaned := filepath.Clean(path)
	if cleaned == "." || cleaned == ".." || cleaned == string(filepath.Separator) {
		return true
	}
	if home, err := os.UserHomeDir(); err == nil {
		if abs, err := filepath.Abs(cleaned); err == nil && abs == filepath.Clean(home) {
			return true
		}
	}
	return false
}

var _ ports.WorkspacePort = WorkspaceAdapter{}
