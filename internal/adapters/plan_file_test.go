package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rusl-mdapi/internal/types"
)

func TestPlanFileAdapter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans", "sales.yaml")
	plan := types.InstallPlan{
		Package:        "sales",
		TargetUsername: "dev@example.com",
		APIVersion:     "58.0",
		OutputDir:      "mdapiout",
		Packages: []types.ResolvedPackage{
			{Name: "sales", Path: "packages/sales"},
			{Name: "core", Path: "packages/core"},
		},
	}
	adapter := NewPlanFileAdapter()
	require.NoError(t, adapter.WritePlan(path, plan))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := `package: sales
target_username: dev@example.com
api_version: "58.0"
output_dir: mdapiout
packages:
    - name: sales
      path: packages/sales
    - name: core
      path: packages/core
`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("unexpected plan file (-want +got):\n%s", diff)
	}

	read, err := adapter.ReadPlan(path)
	require.NoError(t, err)
	assert.Equal(t, plan, read)
}

func TestPlanFileAdapter_EmptyPath(t *testing.T) {
	err := NewPlanFileAdapter().WritePlan("", types.InstallPlan{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan output path is empty")
}
