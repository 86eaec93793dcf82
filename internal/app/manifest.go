package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rusl-mdapi/internal/core"
	"rusl-mdapi/internal/types"
)

// Manifest regenerates package.xml for an existing Metadata API format
// directory, e.g. one kept with --savesources.
func (s Service) Manifest(ctx context.Context, req ManifestRequest) (ManifestResult, error) {
	project, err := s.optionalProject(ctx, req.ProjectDir)
	if err != nil {
		return ManifestResult{}, err
	}
	apiVersion, err := core.SelectAPIVersion(ctx, req.APIVersion, project.SourceAPIVersion)
	if err != nil {
		return ManifestResult{}, err
	}
	outputDir := resolveOutputDir(project.Root, req.OutputDir)

	var path string
	var manifest types.Manifest
	err = s.step("Generate sources package.xml", func() error {
		var err error
		path, manifest, err = s.Manifests.Generate(ctx, outputDir, apiVersion)
		return err
	})
	if err != nil {
		return ManifestResult{}, err
	}
	return ManifestResult{Path: path, Manifest: manifest}, nil
}

// optionalProject loads the enclosing project when there is one. Commands
// that only touch the output directory also work outside a project.
func (s Service) optionalProject(ctx context.Context, projectDir string) (types.Project, error) {
	project, err := s.loadProject(ctx, projectDir)
	if err == nil {
		return project, nil
	}
	if projectDir == "" && errbuilder.CodeOf(Cause(err)) == errbuilder.CodeNotFound {
		return types.Project{}, nil
	}
	return types.Project{}, err
}
