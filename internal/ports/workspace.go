package ports

type WorkspacePort interface {
	EnsureDir(path string) error
	RemoveDir(path string) error
}
