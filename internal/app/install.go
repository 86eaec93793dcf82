package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rusl-mdapi/internal/core"
	"rusl-mdapi/internal/shared"
	"rusl-mdapi/internal/types"
)

// Install converts the named package and every package it depends on to
// Metadata API format, generates their package.xml and deploys them to the
// target org. Steps run strictly in order; the first failure stops the run.
func (s Service) Install(ctx context.Context, req InstallRequest) (InstallResult, error) {
	name := strings.TrimSpace(req.PackageName)
	if name == "" {
		return InstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}

	var project types.Project
	err := s.step("Resolve the project packages configuration", func() error {
		var err error
		project, err = s.loadProject(ctx, req.ProjectDir)
		return err
	})
	if err != nil {
		return InstallResult{}, err
	}
	apiVersion, err := core.SelectAPIVersion(ctx, req.APIVersion, project.SourceAPIVersion)
	if err != nil {
		return InstallResult{}, err
	}

	username, err := s.resolveUsername(req.TargetUsername, project)
	if err != nil {
		return InstallResult{}, err
	}
	if username == "" {
		return InstallResult{}, withActions(errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no target username given and the project has no default org"), hintTargetUsername)
	}
	var org types.OrgInfo
	err = s.step(fmt.Sprintf("Look up the %s org", username), func() error {
		var err error
		org, err = s.Orgs.Display(ctx, username, project.Root)
		return err
	})
	if err != nil {
		return InstallResult{}, withActions(err, hintAuthorizeOrg)
	}

	packages, err := s.resolveHierarchy(ctx, name, project)
	if err != nil {
		return InstallResult{}, err
	}

	outputDir := resolveOutputDir(project.Root, req.OutputDir)
	if err := s.convertPackages(ctx, packages, outputDir, project.Root); err != nil {
		return InstallResult{}, err
	}

	var manifestPath string
	err = s.step("Generate sources package.xml", func() error {
		var err error
		manifestPath, _, err = s.Manifests.Generate(ctx, outputDir, apiVersion)
		return err
	})
	if err != nil {
		return InstallResult{}, withActions(err, hintSaveSources)
	}

	err = s.step("Deploy the package and its dependencies", func() error {
		output, err := s.Deployer.Deploy(ctx, types.DeployRequest{
			ManifestPath: manifestPath,
			Username:     username,
			ProjectDir:   project.Root,
		})
		logOutput(ctx, output)
		return err
	})
	if err != nil {
		return InstallResult{}, withActions(err, hintSaveSources)
	}

	if !req.SaveSources {
		if err := s.Workspace.RemoveDir(outputDir); err != nil {
			return InstallResult{}, err
		}
	}

	log.Ctx(ctx).Info().
		Str("package", name).
		Str("org_id", org.ID).
		Int("packages", len(packages)).
		Msg("package installed")
	return InstallResult{
		OrgID:        org.ID,
		Username:     username,
		APIVersion:   apiVersion,
		Packages:     packages,
		OutputDir:    outputDir,
		ManifestPath: manifestPath,
		SourcesSaved: req.SaveSources,
	}, nil
}

func (s Service) convertPackages(ctx context.Context, packages []types.ResolvedPackage, outputDir string, root string) error {
	if err := s.Workspace.EnsureDir(outputDir); err != nil {
		return err
	}
	for _, pkg := range packages {
		s.Progress.Start(fmt.Sprintf("Convert %s (%s) package", pkg.Name, pkg.Path))
		output, err := s.Converter.Convert(ctx, types.ConvertRequest{
			SourcePath: pkg.Path,
			OutputDir:  outputDir,
			ProjectDir: root,
		})
		if err != nil {
			s.Progress.Stop(types.StepError)
			return err
		}
		// The CLI reports some problems on stderr with a zero exit status.
		// They are surfaced but do not stop the install.
		if lines := shared.OutputLines(output.Stderr); len(lines) > 0 {
			for _, line := range lines {
				log.Ctx(ctx).Warn().Str("package", pkg.Name).Msg(line)
			}
			s.Progress.Stop(types.StepError)
			continue
		}
		s.Progress.Stop(types.StepDone)
	}
	return nil
}

func (s Service) step(message string, fn func() error) error {
	s.Progress.Start(message)
	if err := fn(); err != nil {
		s.Progress.Stop(types.StepError)
		return err
	}
	s.Progress.Stop(types.StepDone)
	return nil
}

func logOutput(ctx context.Context, output types.CommandOutput) {
	for _, line := range shared.OutputLines(output.Stdout) {
		log.Ctx(ctx).Info().Msg(line)
	}
	for _, line := range shared.OutputLines(output.Stderr) {
		log.Ctx(ctx).Warn().Msg(line)
	}
}
