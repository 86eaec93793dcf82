package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rusl-mdapi/internal/app"
)

type planOptions struct {
	PackageName    string
	Output         string
	OutputDir      string
	TargetUsername string
	APIVersion     string
	ProjectDir     string
}

func newPlanCommand() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the packages an install would convert and deploy",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.PackageName, "packagename", "n", "", "Name of the package to plan")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the install plan as YAML to this file")
	cmd.Flags().StringVarP(&opts.OutputDir, "outputdir", "d", app.DefaultOutputDir, "Directory an install would convert into")
	cmd.Flags().StringVarP(&opts.TargetUsername, "targetusername", "u", "", "Username or alias of the target org")
	cmd.Flags().StringVar(&opts.APIVersion, "apiversion", "", "Metadata API version of the generated package.xml")
	cmd.Flags().StringVar(&opts.ProjectDir, "project-dir", "", "Directory inside the sfdx project")
	_ = cmd.MarkFlagRequired("packagename")
	return cmd
}

func runPlan(ctx context.Context, cmd *cobra.Command, opts planOptions) error {
	service, err := newAppService(cmd)
	if err != nil {
		return err
	}
	result, err := service.Plan(ctx, app.PlanRequest{
		PackageName:    opts.PackageName,
		OutputDir:      resolveString(cmd, opts.OutputDir, "output_dir", "outputdir"),
		TargetUsername: resolveString(cmd, opts.TargetUsername, "target_username", "targetusername"),
		APIVersion:     resolveString(cmd, opts.APIVersion, "api_version", "apiversion"),
		ProjectDir:     resolveString(cmd, opts.ProjectDir, "project_dir", "project-dir"),
		PlanPath:       opts.Output,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	plan := result.Plan
	fmt.Fprintf(out, "package: %s\n", plan.Package)
	fmt.Fprintf(out, "api version: %s\n", plan.APIVersion)
	if plan.TargetUsername != "" {
		fmt.Fprintf(out, "target org: %s\n", plan.TargetUsername)
	}
	fmt.Fprintf(out, "convert order (%d):\n", len(plan.Packages))
	for i, pkg := range plan.Packages {
		fmt.Fprintf(out, "%d. %s (%s)\n", i+1, pkg.Name, pkg.Path)
	}
	if result.PlanPath != "" {
		fmt.Fprintf(out, "plan written: %s\n", result.PlanPath)
	}
	return nil
}
