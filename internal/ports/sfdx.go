package ports

import (
	"context"

	"rusl-mdapi/internal/types"
)

type SourceConverterPort interface {
	Convert(ctx context.Context, request types.ConvertRequest) (types.CommandOutput, error)
}

type DeployerPort interface {
	Deploy(ctx context.Context, request types.DeployRequest) (types.CommandOutput, error)
}

type OrgPort interface {
	Display(ctx context.Context, username string, projectDir string) (types.OrgInfo, error)
}
