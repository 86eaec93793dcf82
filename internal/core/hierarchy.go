package core

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rusl-mdapi/internal/types"
)

// HierarchyResolver flattens the dependency graph of a project's package
// directories into install order.
type HierarchyResolver struct {
	byName map[string]types.PackageDirectory
}

func NewHierarchyResolver(dirs []types.PackageDirectory) HierarchyResolver {
	byName := make(map[string]types.PackageDirectory, len(dirs))
	for _, dir := range dirs {
		if dir.Package == "" {
			continue
		}
		// First declaration wins, like a linear search would.
		if _, ok := byName[dir.Package]; ok {
			continue
		}
		byName[dir.Package] = dir
	}
	return HierarchyResolver{byName: byName}
}

// ResolveHierarchy is a convenience wrapper for one-off lookups.
func ResolveHierarchy(ctx context.Context, target string, dirs []types.PackageDirectory) ([]types.ResolvedPackage, error) {
	return NewHierarchyResolver(dirs).Resolve(ctx, target)
}

// Resolve returns target followed by the resolved hierarchy of each of its
// dependencies in declaration order. Packages reachable through several
// paths are listed once per path.
func (r HierarchyResolver) Resolve(ctx context.Context, target string) ([]types.ResolvedPackage, error) {
	if strings.TrimSpace(target) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package name is required")
	}
	onPath := map[string]bool{}
	var path []string
	packages, err := r.resolve(target, onPath, path)
	if err != nil {
		return nil, err
	}
	log.Ctx(ctx).Debug().
		Str("package", target).
		Int("packages", len(packages)).
		Msg("package hierarchy resolved")
	return packages, nil
}

func (r HierarchyResolver) resolve(name string, onPath map[string]bool, path []string) ([]types.ResolvedPackage, error) {
	if onPath[name] {
		return nil, &CyclicDependencyError{Cycle: cycleFrom(path, name)}
	}
	dir, ok := r.byName[name]
	if !ok {
		return nil, &PackageNotFoundError{Name: name}
	}

	result := []types.ResolvedPackage{{Name: dir.Package, Path: dir.Path}}
	if len(dir.Dependencies) == 0 {
		return result, nil
	}

	onPath[name] = true
	path = append(path, name)
	for _, dep := range dir.Dependencies {
		resolved, err := r.resolve(dep.Package, onPath, path)
		if err != nil {
			return nil, err
		}
		result = append(result, resolved...)
	}
	delete(onPath, name)
	return result, nil
}

// FindCycle reports the first dependency cycle among the declared packages,
// visiting each package once. Unknown dependencies are ignored.
func (r HierarchyResolver) FindCycle(dirs []types.PackageDirectory) *CyclicDependencyError {
	const (
		visiting = iota + 1
		visited
	)
	state := make(map[string]int, len(r.byName))
	var path []string
	var visit func(name string) *CyclicDependencyError
	visit = func(name string) *CyclicDependencyError {
		switch state[name] {
		case visiting:
			return &CyclicDependencyError{Cycle: cycleFrom(path, name)}
		case visited:
			return nil
		}
		dir, ok := r.byName[name]
		if !ok {
			return nil
		}
		state[name] = visiting
		path = append(path, name)
		for _, dep := range dir.Dependencies {
			if cycle := visit(dep.Package); cycle != nil {
				return cycle
			}
		}
		path = path[:len(path)-1]
		state[name] = visited
		return nil
	}
	for _, dir := range dirs {
		if dir.Package == "" {
			continue
		}
		if cycle := visit(dir.Package); cycle != nil {
			return cycle
		}
	}
	return nil
}

func cycleFrom(path []string, name string) []string {
	start := 0
	for i, node := range path {
		if node == name {
			start = i
			break
		}
	}
	cycle := append([]string(nil), path[start:]...)
	return append(cycle, name)
}
