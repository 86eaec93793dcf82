package app

import "rusl-mdapi/internal/types"

type InstallRequest struct {
	PackageName    string
	OutputDir      string
	SaveSources    bool
	TargetUsername string
	APIVersion     string
	ProjectDir     string
}

type InstallResult struct {
	OrgID        string
	Username     string
	APIVersion   string
	Packages     []types.ResolvedPackage
	OutputDir    string
	ManifestPath string
	SourcesSaved bool
}

type PlanRequest struct {
	PackageName    string
	OutputDir      string
	TargetUsername string
	APIVersion     string
	ProjectDir     string
	// PlanPath, when set, receives the plan as YAML.
	PlanPath string
}

type PlanResult struct {
	Plan     types.InstallPlan
	PlanPath string
}

type ValidateRequest struct {
	ProjectDir string
}

type ValidateResult struct {
	Root             string
	Packages         []string
	SourceAPIVersion string
}

type ManifestRequest struct {
	OutputDir  string
	APIVersion string
	ProjectDir string
}

type ManifestResult struct {
	Path     string
	Manifest types.Manifest
}

type InspectRequest struct {
	OutputDir  string
	ProjectDir string
}

type InspectTypeSummary struct {
	Name    string
	Count   int
	Members []string
}

type InspectResult struct {
	Path        string
	Version     string
	MemberCount int
	Types       []InspectTypeSummary
}
