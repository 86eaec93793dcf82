package cli

import (
	"context"
	"errors"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rusl-mdapi/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "RUSL_MDAPI"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
	CLICommand string
}

// Execute runs the command line and returns the process exit status.
func Execute(ctx context.Context) int {
	root := newRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		reportError(err)
		return exitCodeForError(err)
	}
	return 0
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "rusl-mdapi",
		Short:         "Install Salesforce DX packages and their dependencies through the Metadata API",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&cfg.CLICommand, "cli-command", "sfdx", "Salesforce CLI command")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("cli_command", cmd.PersistentFlags().Lookup("cli-command"))
	viper.SetDefault("output_dir", app.DefaultOutputDir)

	cmd.AddCommand(newInstallCommand())
	cmd.AddCommand(newPlanCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newManifestCommand())
	cmd.AddCommand(newInspectCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("rusl-mdapi")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/rusl-mdapi")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func newAppService(cmd *cobra.Command) (app.Service, error) {
	return app.NewService(app.ServiceConfig{
		CLICommand: viper.GetString("cli_command"),
		Progress:   cmd.ErrOrStderr(),
	})
}

// genericFailure marks an error whose kind is deliberately not reflected in
// the exit status.
type genericFailure struct {
	err error
}

func (e *genericFailure) Error() string {
	return e.err.Error()
}

func (e *genericFailure) Unwrap() error {
	return e.err
}

func reportError(err error) {
	for _, line := range app.FormatError(err) {
		log.Error().Msg(line)
	}
}

func exitCodeForError(err error) int {
	var generic *genericFailure
	if errors.As(err, &generic) {
		return 1
	}
	switch errbuilder.CodeOf(app.Cause(err)) {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 4
	case errbuilder.CodePermissionDenied:
		return 3
	case errbuilder.CodeNotFound:
		return 5
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}
