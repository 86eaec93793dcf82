package adapters

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rusl-mdapi/internal/ports"
	"rusl-mdapi/internal/types"
)

// Local config files written by `sfdx config:set` and `sf config set`, in
// lookup order, with the key that holds the default org.
var defaultOrgConfigs = []struct {
	path string
	key  string
}{
	{path: filepath.Join(".sfdx", "sfdx-config.json"), key: "defaultusername"},
	{path: filepath.Join(".sf", "config.json"), key: "target-org"},
}

type ProjectFileAdapter struct{}

func NewProjectFileAdapter() ProjectFileAdapter {
	return ProjectFileAdapter{}
}

// FindRoot walks up from start until a directory holding sfdx-project.json
// is found.
func (a ProjectFileAdapter) FindRoot(start string) (string, error) {
	if strings.TrimSpace(start) == "" {
		start = "."
	}
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid project directory").
			WithCause(err)
	}
	for {
		info, err := os.Stat(filepath.Join(dir, types.ProjectFileName))
		if err == nil && !info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("%s not found in %s or any parent directory", types.ProjectFileName, start))
		}
		dir = parent
	}
}

func (a ProjectFileAdapter) LoadProject(root string) (types.Project, error) {
	path := filepath.Join(root, types.ProjectFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Project{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("project file not found").
			WithCause(err)
	}
	var project types.Project
	if err := json.Unmarshal(data, &project); err != nil {
		return types.Project{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("failed to parse %s", types.ProjectFileName)).
			WithCause(err)
	}
	project.Root = root
	return project, nil
}

func (a ProjectFileAdapter) DefaultUsername(root string) (string, error) {
	for _, cfg := range defaultOrgConfigs {
		data, err := os.ReadFile(filepath.Join(root, cfg.path))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read local sfdx config").
				WithCause(err)
		}
		values := map[string]any{}
		if err := json.Unmarshal(data, &values); err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("failed to parse %s", cfg.path)).
				WithCause(err)
		}
		if value, ok := values[cfg.key].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value), nil
		}
	}
	return "", nil
}

var _ ports.ProjectPort = ProjectFileAdapter{}
