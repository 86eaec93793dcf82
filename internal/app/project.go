package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rusl-mdapi/internal/core"
	"rusl-mdapi/internal/types"
)

func (s Service) loadProject(ctx context.Context, projectDir string) (types.Project, error) {
	root, err := s.Project.FindRoot(projectDir)
	if err != nil {
		return types.Project{}, withActions(err, hintProjectDir)
	}
	project, err := s.Project.LoadProject(root)
	if err != nil {
		return types.Project{}, err
	}
	log.Ctx(ctx).Debug().
		Str("root", project.Root).
		Int("package_directories", len(project.PackageDirectories)).
		Msg("project loaded")
	return project, nil
}

func (s Service) resolveHierarchy(ctx context.Context, name string, project types.Project) ([]types.ResolvedPackage, error) {
	packages, err := core.ResolveHierarchy(ctx, name, project.PackageDirectories)
	if err == nil {
		return packages, nil
	}
	var notFound *core.PackageNotFoundError
	if errors.As(err, &notFound) {
		return nil, withActions(errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(notFound.Error()), hintVerifyPackage)
	}
	var cycle *core.CyclicDependencyError
	if errors.As(err, &cycle) {
		return nil, withActions(errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(cycle.Error()), hintCycle)
	}
	return nil, err
}

// resolveUsername picks the explicit username, then the project's default
// org. An empty result means no org is configured.
func (s Service) resolveUsername(explicit string, project types.Project) (string, error) {
	if username := strings.TrimSpace(explicit); username != "" {
		return username, nil
	}
	return s.Project.DefaultUsername(project.Root)
}

// resolveOutputDir anchors a relative output directory at the project root,
// where the CLI commands run.
func resolveOutputDir(root string, dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = DefaultOutputDir
	}
	if filepath.IsAbs(dir) || root == "" {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}
