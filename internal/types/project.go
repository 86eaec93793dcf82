package types

// ProjectFileName is the Salesforce DX project manifest looked up from the
// project root.
const ProjectFileName = "sfdx-project.json"

type DependencyRef struct {
	Package       string `json:"package"`
	VersionNumber string `json:"versionNumber,omitempty"`
}

// PackageDirectory is one entry of packageDirectories. Entries without a
// Package name are source folders that cannot be installed on their own.
type PackageDirectory struct {
	Path          string          `json:"path"`
	Package       string          `json:"package,omitempty"`
	Default       bool            `json:"default,omitempty"`
	VersionName   string          `json:"versionName,omitempty"`
	VersionNumber string          `json:"versionNumber,omitempty"`
	Dependencies  []DependencyRef `json:"dependencies,omitempty"`
}

type Project struct {
	PackageDirectories []PackageDirectory `json:"packageDirectories"`
	Namespace          string             `json:"namespace,omitempty"`
	SfdcLoginURL       string             `json:"sfdcLoginUrl,omitempty"`
	SourceAPIVersion   string             `json:"sourceApiVersion,omitempty"`
	PackageAliases     map[string]string  `json:"packageAliases,omitempty"`

	// Root is the directory holding the project file. It is not part of the
	// JSON document.
	Root string `json:"-"`
}

// ResolvedPackage is one element of a dependency hierarchy.
type ResolvedPackage struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
}

// InstallPlan is the serialized form of a resolved install.
type InstallPlan struct {
	Package        string            `yaml:"package"`
	TargetUsername string            `yaml:"target_username,omitempty"`
	APIVersion     string            `yaml:"api_version"`
	OutputDir      string            `yaml:"output_dir"`
	Packages       []ResolvedPackage `yaml:"packages"`
}
