package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"rusl-mdapi/internal/types"
)

type fakeProject struct {
	project  types.Project
	username string
	found    bool
}

func (f *fakeProject) FindRoot(start string) (string, error) {
	if !f.found {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("sfdx-project.json not found")
	}
	return f.project.Root, nil
}

func (f *fakeProject) LoadProject(root string) (types.Project, error) {
	return f.project, nil
}

func (f *fakeProject) DefaultUsername(root string) (string, error) {
	return f.username, nil
}

// fakeCLI records every Salesforce CLI call in order.
type fakeCLI struct {
	calls         []string
	convertErr    map[string]error
	convertStderr map[string]string
	deployErr     error
	deployOutput  types.CommandOutput
	orgErr        error
}

func (f *fakeCLI) Convert(ctx context.Context, req types.ConvertRequest) (types.CommandOutput, error) {
	f.calls = append(f.calls, fmt.Sprintf("convert %s -> %s", req.SourcePath, req.OutputDir))
	if err := f.convertErr[req.SourcePath]; err != nil {
		return types.CommandOutput{}, err
	}
	return types.CommandOutput{Stderr: f.convertStderr[req.SourcePath]}, nil
}

func (f *fakeCLI) Deploy(ctx context.Context, req types.DeployRequest) (types.CommandOutput, error) {
	f.calls = append(f.calls, fmt.Sprintf("deploy %s as %s", req.ManifestPath, req.Username))
	return f.deployOutput, f.deployErr
}

func (f *fakeCLI) Display(ctx context.Context, username string, projectDir string) (types.OrgInfo, error) {
	f.calls = append(f.calls, "display "+username)
	if f.orgErr != nil {
		return types.OrgInfo{}, f.orgErr
	}
	return types.OrgInfo{ID: "00D000000000001EAA", Username: username}, nil
}

type fakeManifest struct {
	cli      *fakeCLI
	manifest types.Manifest
	err      error
	read     map[string]types.Manifest
}

func (f *fakeManifest) Generate(ctx context.Context, dir string, apiVersion string) (string, types.Manifest, error) {
	if f.cli != nil {
		f.cli.calls = append(f.cli.calls, fmt.Sprintf("manifest %s v%s", dir, apiVersion))
	}
	if f.err != nil {
		return "", types.Manifest{}, f.err
	}
	manifest := f.manifest
	manifest.Version = apiVersion
	return filepath.Join(dir, "package.xml"), manifest, nil
}

func (f *fakeManifest) Read(path string) (types.Manifest, error) {
	manifest, ok := f.read[path]
	if !ok {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package.xml not found")
	}
	return manifest, nil
}

type fakeWorkspace struct {
	ensured []string
	removed []string
}

func (f *fakeWorkspace) EnsureDir(path string) error {
	f.ensured = append(f.ensured, path)
	return nil
}

func (f *fakeWorkspace) RemoveDir(path string) error {
	f.removed = append(f.removed, path)
	return nil
}

type fakeProgress struct {
	events []string
}

func (f *fakeProgress) Start(message string) {
	f.events = append(f.events, message)
}

func (f *fakeProgress) Stop(status types.StepStatus) {
	f.events[len(f.events)-1] += " => " + string(status)
}

type fakePlanWriter struct {
	written map[string]types.InstallPlan
}

func (f *fakePlanWriter) WritePlan(path string, plan types.InstallPlan) error {
	if f.written == nil {
		f.written = map[string]types.InstallPlan{}
	}
	f.written[path] = plan
	return nil
}

type testHarness struct {
	service   Service
	project   *fakeProject
	cli       *fakeCLI
	manifest  *fakeManifest
	workspace *fakeWorkspace
	progress  *fakeProgress
	plans     *fakePlanWriter
}

func sampleProject() types.Project {
	dep := func(names ...string) []types.DependencyRef {
		var refs []types.DependencyRef
		for _, name := range names {
			refs = append(refs, types.DependencyRef{Package: name})
		}
		return refs
	}
	return types.Project{
		Root:             "/work/project",
		SourceAPIVersion: "58.0",
		PackageDirectories: []types.PackageDirectory{
			{Path: "force-app", Default: true},
			{Path: "packages/core", Package: "core"},
			{Path: "packages/sales", Package: "sales", Dependencies: dep("core")},
			{Path: "packages/service", Package: "service", Dependencies: dep("core", "sales")},
			{Path: "packages/loop-a", Package: "loop-a", Dependencies: dep("loop-b")},
			{Path: "packages/loop-b", Package: "loop-b", Dependencies: dep("loop-a")},
		},
	}
}

func newHarness() *testHarness {
	cli := &fakeCLI{}
	h := &testHarness{
		project:   &fakeProject{project: sampleProject(), username: "dev@example.com", found: true},
		cli:       cli,
		manifest:  &fakeManifest{cli: cli},
		workspace: &fakeWorkspace{},
		progress:  &fakeProgress{},
		plans:     &fakePlanWriter{},
	}
	h.service = Service{
		Project:    h.project,
		Converter:  cli,
		Deployer:   cli,
		Orgs:       cli,
		Manifests:  h.manifest,
		Workspace:  h.workspace,
		Progress:   h.progress,
		PlanWriter: h.plans,
	}
	return h
}
