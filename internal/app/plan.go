package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rusl-mdapi/internal/core"
	"rusl-mdapi/internal/types"
)

// Plan resolves what Install would convert and deploy without running any
// Salesforce CLI command.
func (s Service) Plan(ctx context.Context, req PlanRequest) (PlanResult, error) {
	name := strings.TrimSpace(req.PackageName)
	if name == "" {
		return PlanResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	project, err := s.loadProject(ctx, req.ProjectDir)
	if err != nil {
		return PlanResult{}, err
	}
	apiVersion, err := core.SelectAPIVersion(ctx, req.APIVersion, project.SourceAPIVersion)
	if err != nil {
		return PlanResult{}, err
	}
	username, err := s.resolveUsername(req.TargetUsername, project)
	if err != nil {
		return PlanResult{}, err
	}
	packages, err := s.resolveHierarchy(ctx, name, project)
	if err != nil {
		return PlanResult{}, err
	}

	outputDir := resolveOutputDir(project.Root, req.OutputDir)
	plan := types.InstallPlan{
		Package:        name,
		TargetUsername: username,
		APIVersion:     apiVersion,
		OutputDir:      outputDir,
		Packages:       packages,
	}
	planPath := strings.TrimSpace(req.PlanPath)
	if planPath != "" {
		if err := s.PlanWriter.WritePlan(planPath, plan); err != nil {
			return PlanResult{}, err
		}
	}
	return PlanResult{Plan: plan, PlanPath: planPath}, nil
}
