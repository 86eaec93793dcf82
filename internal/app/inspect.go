package app

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"rusl-mdapi/internal/adapters"
)

// Inspect summarizes a package.xml. OutputDir may name the directory holding
// it or the file itself.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	project, err := s.optionalProject(ctx, req.ProjectDir)
	if err != nil {
		return InspectResult{}, err
	}
	path := resolveOutputDir(project.Root, req.OutputDir)
	if !strings.EqualFold(filepath.Ext(path), ".xml") {
		path = filepath.Join(path, adapters.ManifestFileName)
	}
	manifest, err := s.Manifests.Read(path)
	if err != nil {
		return InspectResult{}, err
	}

	summaries := make([]InspectTypeSummary, 0, len(manifest.Types))
	for _, t := range manifest.Types {
		members := append([]string(nil), t.Members...)
		sort.Strings(members)
		summaries = append(summaries, InspectTypeSummary{
			Name:    t.Name,
			Count:   len(members),
			Members: members,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return InspectResult{
		Path:        path,
		Version:     manifest.Version,
		MemberCount: manifest.MemberCount(),
		Types:       summaries,
	}, nil
}
