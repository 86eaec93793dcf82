package app

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rusl-mdapi/internal/types"
)

func TestInspectApp(t *testing.T) {
	h := newHarness()
	h.manifest.read = map[string]types.Manifest{
		"/work/project/mdapiout/package.xml": {
			Version: "58.0",
			Types: []types.ManifestType{
				{Name: "CustomObject", Members: []string{"Case"}},
				{Name: "ApexClass", Members: []string{"Zeta", "Alpha"}},
			},
		},
	}

	result, err := h.service.Inspect(t.Context(), InspectRequest{})
	require.NoError(t, err)

	want := InspectResult{
		Path:        "/work/project/mdapiout/package.xml",
		Version:     "58.0",
		MemberCount: 3,
		Types: []InspectTypeSummary{
			{Name: "ApexClass", Count: 2, Members: []string{"Alpha", "Zeta"}},
			{Name: "CustomObject", Count: 1, Members: []string{"Case"}},
		},
	}
	if diff := cmp.Diff(want, result); diff != "" {
		t.Fatalf("unexpected inspect result (-want +got):\n%s", diff)
	}
}

func TestInspectAcceptsFilePath(t *testing.T) {
	service, err := NewService(ServiceConfig{})
	require.NoError(t, err)

	path, err := filepath.Abs(filepath.Join("..", "..", "fixtures", "manifest", "package", "package.xml"))
	require.NoError(t, err)
	result, err := service.Inspect(t.Context(), InspectRequest{OutputDir: path})
	require.NoError(t, err)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, 4, result.MemberCount)
	require.Len(t, result.Types, 2)
	assert.Equal(t, 3, result.Types[0].Count)
}

func TestInspectMissingManifest(t *testing.T) {
	h := newHarness()

	_, err := h.service.Inspect(t.Context(), InspectRequest{OutputDir: "gone"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package.xml not found")
}
