package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/mattn/go-shellwords"
	"github.com/rs/zerolog/log"

	"rusl-mdapi/internal/ports"
	"rusl-mdapi/internal/shared"
	"rusl-mdapi/internal/types"
)

const DefaultCLICommand = "sfdx"

// SfdxCLIAdapter drives the Salesforce CLI. Command is the executable and
// any leading arguments, e.g. ["npx", "sfdx"].
type SfdxCLIAdapter struct {
	Command []string
}

func NewSfdxCLIAdapter(command string) (SfdxCLIAdapter, error) {
	if strings.TrimSpace(command) == "" {
		command = DefaultCLICommand
	}
	args, err := shellwords.Parse(command)
	if err != nil {
		return SfdxCLIAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid cli command %q", command)).
			WithCause(err)
	}
	if len(args) == 0 {
		return SfdxCLIAdapter{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("cli command must contain at least one argument")
	}
	return SfdxCLIAdapter{Command: args}, nil
}

func (a SfdxCLIAdapter) Convert(ctx context.Context, request types.ConvertRequest) (types.CommandOutput, error) {
	if strings.TrimSpace(request.SourcePath) == "" || strings.TrimSpace(request.OutputDir) == "" {
		return types.CommandOutput{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("convert requires a source path and an output directory")
	}
	return a.run(ctx, request.ProjectDir, "force:source:convert", "-d", request.OutputDir, "-r", request.SourcePath)
}

func (a SfdxCLIAdapter) Deploy(ctx context.Context, request types.DeployRequest) (types.CommandOutput, error) {
	if strings.TrimSpace(request.ManifestPath) == "" {
		return types.CommandOutput{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("deploy requires a package.xml path")
	}
	args := []string{"force:source:deploy", "-x", request.ManifestPath}
	if strings.TrimSpace(request.Username) != "" {
		args = append(args, "-u", request.Username)
	}
	return a.run(ctx, request.ProjectDir, args...)
}

type orgDisplayResponse struct {
	Status  int           `json:"status"`
	Message string        `json:"message"`
	Result  types.OrgInfo `json:"result"`
}

func (a SfdxCLIAdapter) Display(ctx context.Context, username string, projectDir string) (types.OrgInfo, error) {
	args := []string{"force:org:display", "--json"}
	if strings.TrimSpace(username) != "" {
		args = append(args, "-u", username)
	}
	output, err := a.run(ctx, projectDir, args...)
	var response orgDisplayResponse
	decodeErr := json.Unmarshal([]byte(output.Stdout), &response)
	if err != nil {
		// --json reports failures on stdout, which is more useful than the
		// bare exit status.
		if decodeErr == nil && strings.TrimSpace(response.Message) != "" {
			return types.OrgInfo{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg(fmt.Sprintf("org %s not found", username)).
				WithCause(fmt.Errorf("%s", response.Message))
		}
		return types.OrgInfo{}, err
	}
	if decodeErr != nil {
		return types.OrgInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse org display output").
			WithCause(decodeErr)
	}
	if strings.TrimSpace(response.Result.ID) == "" {
		return types.OrgInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("org %s has no id", username))
	}
	return response.Result, nil
}

func (a SfdxCLIAdapter) run(ctx context.Context, dir string, args ...string) (types.CommandOutput, error) {
	if err := ctx.Err(); err != nil {
		return types.CommandOutput{}, err
	}
	command := a.Command
	if len(command) == 0 {
		command = []string{DefaultCLICommand}
	}
	argv := append(append([]string(nil), command[1:]...), args...)
	cmd := exec.CommandContext(ctx, command[0], argv...)
	if strings.TrimSpace(dir) != "" {
		cmd.Dir = dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Ctx(ctx).Debug().
		Str("command", filepath.Base(command[0])).
		Strs("args", argv).
		Str("dir", cmd.Dir).
		Msg("running sfdx command")
	err := cmd.Run()
	output := types.CommandOutput{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		detail := stderr.Bytes()
		if len(bytes.TrimSpace(detail)) == 0 {
			detail = stdout.Bytes()
		}
		return output, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("sfdx %s failed", args[0])).
			WithCause(shared.CommandError(detail, err))
	}
	return output, nil
}

var (
	_ ports.SourceConverterPort = SfdxCLIAdapter{}
	_ ports.DeployerPort        = SfdxCLIAdapter{}
	_ ports.OrgPort             = SfdxCLIAdapter{}
)
