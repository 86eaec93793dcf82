package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rusl-mdapi/internal/app"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	for _, name := range []string{"install", "plan", "validate", "manifest", "inspect"} {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestInstallCommandFlags(t *testing.T) {
	cmd := newInstallCommand()
	flags := map[string]string{
		"packagename":    "n",
		"outputdir":      "d",
		"savesources":    "s",
		"targetusername": "u",
		"apiversion":     "",
		"project-dir":    "",
	}
	for name, shorthand := range flags {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, "missing flag: %s", name)
		assert.Equal(t, shorthand, flag.Shorthand, "shorthand of %s", name)
	}
	assert.Equal(t, "mdapiout", cmd.Flags().Lookup("outputdir").DefValue)
	assert.Equal(t, "false", cmd.Flags().Lookup("savesources").DefValue)
}

func TestPlanCommandFlags(t *testing.T) {
	cmd := newPlanCommand()
	for _, name := range []string{"packagename", "output", "outputdir", "targetusername", "apiversion", "project-dir"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestValidateCommandFlags(t *testing.T) {
	cmd := newValidateCommand()
	assert.NotNil(t, cmd.Flags().Lookup("project-dir"))
}

func TestInstallRequiresPackageName(t *testing.T) {
	t.Cleanup(viper.Reset)
	root := newRootCommand()
	root.SetArgs([]string{"install", "-u", "dev"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	err := root.ExecuteContext(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "packagename" not set`)
}

// ---------- Command execution tests ----------

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(viper.Reset)
	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(t.Context())
	return out.String(), err
}

func fixture(t *testing.T, parts ...string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join(append([]string{"..", "..", "fixtures"}, parts...)...))
	require.NoError(t, err)
	return path
}

func TestPlanCommandPrintsHierarchy(t *testing.T) {
	planPath := filepath.Join(t.TempDir(), "plan.yaml")
	out, err := runRoot(t, "plan", "-n", "service", "--project-dir", fixture(t, "project"), "--output", planPath)
	require.NoError(t, err)

	assert.Contains(t, out, "package: service\n")
	assert.Contains(t, out, "api version: 58.0\n")
	assert.Contains(t, out, "target org: dev@example.com\n")
	assert.Contains(t, out, "convert order (4):\n"+
		"1. service (packages/service)\n"+
		"2. core (packages/core)\n"+
		"3. sales (packages/sales)\n"+
		"4. core (packages/core)\n")
	assert.FileExists(t, planPath)
}

func TestPlanCommandUnknownPackage(t *testing.T) {
	_, err := runRoot(t, "plan", "-n", "ghost", "--project-dir", fixture(t, "project"))
	require.Error(t, err)
	assert.Equal(t, 5, exitCodeForError(err))
	assert.Equal(t, []string{"Verify the package name exists in the sfdx-project.json file."}, app.Actions(err))
}

func TestValidateCommand(t *testing.T) {
	out, err := runRoot(t, "validate", "--project-dir", fixture(t, "project"))
	require.NoError(t, err)
	assert.Contains(t, out, "3 packages: core, sales, service")

	_, err = runRoot(t, "validate", "--project-dir", fixture(t, "cyclic"))
	require.Error(t, err)
	assert.Equal(t, 4, exitCodeForError(err))
}

func TestInspectCommand(t *testing.T) {
	out, err := runRoot(t, "inspect", "-d", fixture(t, "manifest", "package"))
	require.NoError(t, err)
	assert.Contains(t, out, "types: 2, members: 4\n")
	assert.Contains(t, out, "- ApexClass: 3\n  CaseRouter, CoreUtils, OpportunityService\n")
}

func TestInstallFailureExitsWithGenericStatus(t *testing.T) {
	_, err := runRoot(t, "install", "-n", "ghost", "--project-dir", fixture(t, "project"),
		"--cli-command", "/nonexistent/sfdx")
	require.Error(t, err)
	assert.Equal(t, 1, exitCodeForError(err))
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("test_key", "from-config")

	assert.Equal(t, "explicit", resolveString(nil, "explicit", "test_key", "test-flag"))
	assert.Equal(t, "from-config", resolveString(nil, "", "test_key", "test-flag"))

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("test-flag", "flag-default", "test flag")
	assert.Equal(t, "from-config", resolveString(cmd, "flag-default", "test_key", "test-flag"))
	assert.Equal(t, "flag-default", resolveString(cmd, "flag-default", "unset_key", "test-flag"))

	require.NoError(t, cmd.Flags().Set("test-flag", "from-flag"))
	assert.Equal(t, "from-flag", resolveString(cmd, "from-flag", "test_key", "test-flag"))
}

func TestResolveBool(t *testing.T) {
	t.Cleanup(viper.Reset)
	assert.True(t, resolveBool(nil, true, "test_key", "test-flag"))
	assert.False(t, resolveBool(nil, false, "test_key", "test-flag"))

	viper.Set("save_sources", true)
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().Bool("savesources", false, "test flag")
	assert.True(t, resolveBool(cmd, false, "save_sources", "savesources"))
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"), "nil cmd should return false")
	assert.False(t, flagChanged(nil, ""), "nil cmd with empty name")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	assert.False(t, flagChanged(cmd, "nonexistent"), "nonexistent flag")

	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad input"),
			expected: 2,
		},
		{
			name: "already exists",
			err: errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("dup"),
			expected: 2,
		},
		{
			name: "failed precondition",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("cyclic package dependency: a -> b -> a"),
			expected: 4,
		},
		{
			name: "permission denied",
			err: errbuilder.New().
				WithCode(errbuilder.CodePermissionDenied).
				WithMsg("nope"),
			expected: 3,
		},
		{
			name: "not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("file missing"),
			expected: 5,
		},
		{
			name: "not found with actions",
			err: &app.ActionableError{
				Err: errbuilder.New().
					WithCode(errbuilder.CodeNotFound).
					WithMsg("The ghost package doesn't exist"),
				Actions: []string{"check"},
			},
			expected: 5,
		},
		{
			name: "internal error",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name: "install failure",
			err: &genericFailure{err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("The ghost package doesn't exist")},
			expected: 1,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exitCodeForError(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
