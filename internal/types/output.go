package types

// CommandOutput holds the captured streams of one external process.
type CommandOutput struct {
	Stdout string
	Stderr string
}

type OrgInfo struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Alias       string `json:"alias,omitempty"`
	InstanceURL string `json:"instanceUrl,omitempty"`
}

type ConvertRequest struct {
	SourcePath string
	OutputDir  string
	ProjectDir string
}

type DeployRequest struct {
	ManifestPath string
	Username     string
	ProjectDir   string
}

// StepStatus is the outcome shown when a progress step stops.
type StepStatus string

const (
	StepDone  StepStatus = "done"
	StepError StepStatus = "error"
)
