// Package stack classifies a project's frontend, backend and database from its manifests.
package stack

type FrontendKind string

const (
	FrontendReact   FrontendKind = "React"
	FrontendVue     FrontendKind = "Vue"
	FrontendAngular FrontendKind = "Angular"
)

type BackendKind string

const (
	BackendNodeJS BackendKind = "NodeJS"
	BackendPython BackendKind = "Python"
	BackendJava   BackendKind = "Java"
	BackendGo     BackendKind = "Go"
	BackendPHP    BackendKind = "PHP"
	BackendDotNet BackendKind = "DotNet"
	BackendRust   BackendKind = "Rust"
)

type DatabaseKind string

const (
	DatabasePostgreSQL DatabaseKind = "PostgreSQL"
	DatabaseMySQL      DatabaseKind = "MySQL"
	DatabaseMongoDB    DatabaseKind = "MongoDB"
	DatabaseRedis      DatabaseKind = "Redis"
	DatabaseSQLite     DatabaseKind = "SQLite"
)

const (
	DefaultFrontendPort = 3000
	DefaultBackendPort  = 3000
	DefaultBinaryName   = "app"
)

// Profile is the classification of a project. An empty kind means the axis was not detected.
type Profile struct {
	FrontendKind FrontendKind
	FrontendPort int

	BackendKind BackendKind
	BackendPort int
	// Name of the build output compiled backends run, e.g. the Cargo binary.
	BinaryName string

	DatabaseKind DatabaseKind
}

// Returns the profile of a project where nothing was detected.
func EmptyProfile() Profile {
	return Profile{
		FrontendPort: DefaultFrontendPort,
		BackendPort:  DefaultBackendPort,
		BinaryName:   DefaultBinaryName,
	}
}

func (p Profile) HasFrontend() bool {
	return p.FrontendKind != ""
}

func (p Profile) HasBackend() bool {
	return p.BackendKind != ""
}

func (p Profile) HasDatabase() bool {
	return p.DatabaseKind != ""
}

// Lists the backend kinds in detection order.
func BackendKinds() []BackendKind {
	kinds := make([]BackendKind, len(backendRules))
	for i, r := range backendRules {
		kinds[i] = r.Kind
	}
	return kinds
}
