package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"rusl-mdapi/internal/app"
)

type installOptions struct {
	PackageName    string
	OutputDir      string
	SaveSources    bool
	TargetUsername string
	APIVersion     string
	ProjectDir     string
}

func newInstallCommand() *cobra.Command {
	opts := installOptions{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Convert a package and its dependencies to Metadata API format and deploy them",
		Example: `  rusl-mdapi install --targetusername myOrg@example.com --packagename myPackage
  rusl-mdapi install -u myOrg -n myPackage --outputdir mdsource
  rusl-mdapi install -u myOrg -n myPackage --savesources`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.PackageName, "packagename", "n", "", "Name of the package to install")
	cmd.Flags().StringVarP(&opts.OutputDir, "outputdir", "d", app.DefaultOutputDir, "Directory receiving the converted sources")
	cmd.Flags().BoolVarP(&opts.SaveSources, "savesources", "s", false, "Keep the converted sources after deploying")
	cmd.Flags().StringVarP(&opts.TargetUsername, "targetusername", "u", "", "Username or alias of the target org")
	cmd.Flags().StringVar(&opts.APIVersion, "apiversion", "", "Metadata API version of the generated package.xml")
	cmd.Flags().StringVar(&opts.ProjectDir, "project-dir", "", "Directory inside the sfdx project")
	_ = cmd.MarkFlagRequired("packagename")
	return cmd
}

func runInstall(ctx context.Context, cmd *cobra.Command, opts installOptions) error {
	service, err := newAppService(cmd)
	if err != nil {
		return err
	}
	result, err := service.Install(ctx, app.InstallRequest{
		PackageName:    opts.PackageName,
		OutputDir:      resolveString(cmd, opts.OutputDir, "output_dir", "outputdir"),
		SaveSources:    resolveBool(cmd, opts.SaveSources, "save_sources", "savesources"),
		TargetUsername: resolveString(cmd, opts.TargetUsername, "target_username", "targetusername"),
		APIVersion:     resolveString(cmd, opts.APIVersion, "api_version", "apiversion"),
		ProjectDir:     resolveString(cmd, opts.ProjectDir, "project_dir", "project-dir"),
	})
	if err != nil {
		// Install failures share one exit status whatever went wrong.
		return &genericFailure{err: err}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "installed %s into org %s\n", opts.PackageName, result.OrgID)
	if result.SourcesSaved {
		fmt.Fprintf(cmd.OutOrStdout(), "sources kept in %s\n", result.OutputDir)
	}
	return nil
}
