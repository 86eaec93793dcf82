package ports

import (
	"context"

	"rusl-mdapi/internal/types"
)

type ManifestPort interface {
	// Generate scans a Metadata API format directory and writes its
	// package.xml, returning the written path.
	Generate(ctx context.Context, dir string, apiVersion string) (string, types.Manifest, error)
	Read(path string) (types.Manifest, error)
}
