package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rusl-mdapi/internal/types"
)

type ProjectValidator struct{}

func NewProjectValidator() ProjectValidator {
	return ProjectValidator{}
}

func (v ProjectValidator) Validate(ctx context.Context, project types.Project) error {
	assert.NotEmpty(ctx, project.Root, "project root must be set")
	if len(project.PackageDirectories) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("packageDirectories must not be empty")
	}
	seen := map[string]struct{}{}
	for i, dir := range project.PackageDirectories {
		if strings.TrimSpace(dir.Path) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("packageDirectories[%d] is missing a path", i))
		}
		if dir.Package == "" {
			continue
		}
		if _, ok := seen[dir.Package]; ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("package %s is declared more than once", dir.Package))
		}
		seen[dir.Package] = struct{}{}
	}
	for _, dir := range project.PackageDirectories {
		if err := validateDependencyRefs(dir, seen); err != nil {
			return err
		}
	}

	resolver := NewHierarchyResolver(project.PackageDirectories)
	if cycle := resolver.FindCycle(project.PackageDirectories); cycle != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(cycle.Error())
	}

	if strings.TrimSpace(project.SourceAPIVersion) != "" {
		if _, err := NormalizeAPIVersion(project.SourceAPIVersion); err != nil {
			return err
		}
	}
	log.Ctx(ctx).Debug().Int("packages", len(seen)).Msg("project validated")
	return nil
}

func validateDependencyRefs(dir types.PackageDirectory, declared map[string]struct{}) error {
	for _, dep := range dir.Dependencies {
		name := strings.TrimSpace(dep.Package)
		if name == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("package %s has a dependency without a package name", describeDir(dir)))
		}
		if _, ok := declared[name]; !ok {
			return errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("package %s depends on %s which is not a package directory", describeDir(dir), name))
		}
	}
	return nil
}

func describeDir(dir types.PackageDirectory) string {
	if dir.Package != "" {
		return dir.Package
	}
	return dir.Path
}
