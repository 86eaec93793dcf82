package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rusl-mdapi/internal/app"
)

type inspectOptions struct {
	OutputDir  string
	ProjectDir string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize the types and members of a generated package.xml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.OutputDir, "outputdir", "d", app.DefaultOutputDir, "Directory holding package.xml, or the file itself")
	cmd.Flags().StringVar(&opts.ProjectDir, "project-dir", "", "Directory inside the sfdx project")
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service, err := newAppService(cmd)
	if err != nil {
		return err
	}
	result, err := service.Inspect(ctx, app.InspectRequest{
		OutputDir:  resolveString(cmd, opts.OutputDir, "output_dir", "outputdir"),
		ProjectDir: resolveString(cmd, opts.ProjectDir, "project_dir", "project-dir"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (version %s)\n", result.Path, result.Version)
	fmt.Fprintf(out, "types: %d, members: %d\n", len(result.Types), result.MemberCount)
	for _, summary := range result.Types {
		fmt.Fprintf(out, "- %s: %d\n", summary.Name, summary.Count)
		if len(summary.Members) > 0 {
			fmt.Fprintf(out, "  %s\n", strings.Join(summary.Members, ", "))
		}
	}
	return nil
}
