package app

import (
	"context"

	"rusl-mdapi/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	project, err := s.loadProject(ctx, req.ProjectDir)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := core.NewProjectValidator().Validate(ctx, project); err != nil {
		return ValidateResult{}, err
	}
	var names []string
	for _, dir := range project.PackageDirectories {
		if dir.Package != "" {
			names = append(names, dir.Package)
		}
	}
	return ValidateResult{
		Root:             project.Root,
		Packages:         names,
		SourceAPIVersion: project.SourceAPIVersion,
	}, nil
}
