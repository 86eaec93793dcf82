package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rusl-mdapi/internal/app"
)

type manifestOptions struct {
	OutputDir  string
	APIVersion string
	ProjectDir string
}

func newManifestCommand() *cobra.Command {
	opts := manifestOptions{}
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Generate package.xml for converted Metadata API sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runManifest(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.OutputDir, "outputdir", "d", app.DefaultOutputDir, "Directory holding the converted sources")
	cmd.Flags().StringVar(&opts.APIVersion, "apiversion", "", "Metadata API version of the generated package.xml")
	cmd.Flags().StringVar(&opts.ProjectDir, "project-dir", "", "Directory inside the sfdx project")
	return cmd
}

func runManifest(ctx context.Context, cmd *cobra.Command, opts manifestOptions) error {
	service, err := newAppService(cmd)
	if err != nil {
		return err
	}
	result, err := service.Manifest(ctx, app.ManifestRequest{
		OutputDir:  resolveString(cmd, opts.OutputDir, "output_dir", "outputdir"),
		APIVersion: resolveString(cmd, opts.APIVersion, "api_version", "apiversion"),
		ProjectDir: resolveString(cmd, opts.ProjectDir, "project_dir", "project-dir"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "package.xml: %s (%d types, %d members, version %s)\n",
		result.Path, len(result.Manifest.Types), result.Manifest.MemberCount(), result.Manifest.Version)
	return nil
}
