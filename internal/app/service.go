package app

import (
	"io"
	"os"

	"rusl-mdapi/internal/adapters"
	"rusl-mdapi/internal/ports"
)

const DefaultOutputDir = "mdapiout"

type Service struct {
	Project    ports.ProjectPort
	Converter  ports.SourceConverterPort
	Deployer   ports.DeployerPort
	Orgs       ports.OrgPort
	Manifests  ports.ManifestPort
	Workspace  ports.WorkspacePort
	Progress   ports.ProgressPort
	PlanWriter ports.PlanWriterPort
}

type ServiceConfig struct {
	// CLICommand is the Salesforce CLI invocation, "sfdx" when empty.
	CLICommand string
	// Progress receives spinner output, os.Stderr when nil.
	Progress io.Writer
}

func NewService(cfg ServiceConfig) (Service, error) {
	cli, err := adapters.NewSfdxCLIAdapter(cfg.CLICommand)
	if err != nil {
		return Service{}, err
	}
	progress := cfg.Progress
	if progress == nil {
		progress = os.Stderr
	}
	return Service{
		Project:    adapters.NewProjectFileAdapter(),
		Converter:  cli,
		Deployer:   cli,
		Orgs:       cli,
		Manifests:  adapters.NewManifestAdapter(),
		Workspace:  adapters.NewWorkspaceAdapter(),
		Progress:   adapters.NewSpinnerAdapter(progress),
		PlanWriter: adapters.NewPlanFileAdapter(),
	}, nil
}
