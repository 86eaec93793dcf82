package ports

import "rusl-mdapi/internal/types"

// ProjectPort locates and loads an sfdx project.
type ProjectPort interface {
	FindRoot(start string) (string, error)
	LoadProject(root string) (types.Project, error)
	// DefaultUsername returns the project's configured default org, or ""
	// when none is set.
	DefaultUsername(root string) (string, error)
}
