package adapters

import (
	"context"
	"encoding/xml"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rusl-mdapi/internal/ports"
	"rusl-mdapi/internal/types"
)

const (
	ManifestFileName = "package.xml"
	manifestIndent   = "    "
	metaSuffix       = "-meta.xml"
)

// ManifestAdapter builds package.xml for a Metadata API format directory.
type ManifestAdapter struct{}

func NewManifestAdapter() ManifestAdapter {
	return ManifestAdapter{}
}

func (a ManifestAdapter) Generate(ctx context.Context, dir string, apiVersion string) (string, types.Manifest, error) {
	if strings.TrimSpace(apiVersion) == "" {
		return "", types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("api version is required")
	}
	manifest, err := a.Scan(ctx, dir)
	if err != nil {
		return "", types.Manifest{}, err
	}
	manifest.Version = apiVersion

	data, err := xml.MarshalIndent(manifest, "", manifestIndent)
	if err != nil {
		return "", types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode package.xml").
			WithCause(err)
	}
	content := append([]byte(xml.Header), data...)
	content = append(content, '\n')

	path := filepath.Join(dir, ManifestFileName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write package.xml").
			WithCause(err)
	}
	log.Ctx(ctx).Debug().
		Str("path", path).
		Int("types", len(manifest.Types)).
		Int("members", manifest.MemberCount()).
		Msg("package.xml written")
	return path, manifest, nil
}

// Scan collects the metadata types and members found under dir without
// writing anything.
func (a ManifestAdapter) Scan(ctx context.Context, dir string) (types.Manifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("metadata directory not found").
			WithCause(err)
	}
	manifest := types.Manifest{Xmlns: types.MetadataNamespace}
	for _, entry := range entries {
		if !entry.IsDir() || isHidden(entry.Name()) {
			continue
		}
		folder, ok := metadataFolders[entry.Name()]
		if !ok {
			log.Ctx(ctx).Warn().Str("folder", entry.Name()).Msg("unknown metadata folder skipped")
			continue
		}
		members, err := collectMembers(filepath.Join(dir, entry.Name()), folder)
		if err != nil {
			return types.Manifest{}, err
		}
		if len(members) == 0 {
			continue
		}
		manifest.Types = append(manifest.Types, types.ManifestType{Name: folder.Type, Members: members})
	}
	sort.Slice(manifest.Types, func(i, j int) bool {
		return manifest.Types[i].Name < manifest.Types[j].Name
	})
	return manifest, nil
}

func (a ManifestAdapter) Read(path string) (types.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package.xml not found").
			WithCause(err)
	}
	var manifest types.Manifest
	if err := xml.Unmarshal(data, &manifest); err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse package.xml").
			WithCause(err)
	}
	return manifest, nil
}

func collectMembers(dir string, folder metadataFolder) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read metadata folder").
			WithCause(err)
	}
	seen := map[string]struct{}{}
	add := func(member string) {
		if member != "" {
			seen[member] = struct{}{}
		}
	}
	for _, entry := range entries {
		name := entry.Name()
		if isHidden(name) {
			continue
		}
		switch {
		case entry.IsDir() && folder.Bundle:
			add(name)
		case entry.IsDir() && folder.InFolder:
			add(name)
			nested, err := os.ReadDir(filepath.Join(dir, name))
			if err != nil {
				return nil, errbuilder.New().
					WithCode(errbuilder.CodeInternal).
					WithMsg("failed to read metadata folder").
					WithCause(err)
			}
			for _, child := range nested {
				if child.IsDir() || isHidden(child.Name()) || strings.HasSuffix(child.Name(), metaSuffix) {
					continue
				}
				add(name + "/" + memberName(child.Name(), folder))
			}
		case entry.IsDir():
			continue
		case folder.Bundle || strings.HasSuffix(name, metaSuffix):
			continue
		default:
			add(memberName(name, folder))
		}
	}
	members := make([]string, 0, len(seen))
	for member := range seen {
		members = append(members, member)
	}
	sort.Strings(members)
	return members, nil
}

func memberName(file string, folder metadataFolder) string {
	if folder.KeepExtension {
		return file
	}
	return strings.TrimSuffix(file, filepath.Ext(file))
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

var _ ports.ManifestPort = ManifestAdapter{}
