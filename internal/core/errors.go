package core

import (
	"fmt"
	"strings"
)

// PackageNotFoundError reports a package name that is not declared in the
// project's packageDirectories.
type PackageNotFoundError struct {
	Name string
}

func (e *PackageNotFoundError) Error() string {
	return fmt.Sprintf("The %s package doesn't exist", e.Name)
}

// CyclicDependencyError reports a package that depends on itself, directly
// or through other packages. Cycle starts and ends with the same name.
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return fmt.Sprintf("cyclic package dependency: %s", strings.Join(e.Cycle, " -> "))
}
