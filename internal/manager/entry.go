package manager

// Origin tells which source a package listing came from.
type Origin string

const (
	OriginRepo Origin = "repo"
	OriginAUR  Origin = "aur"
)

// Entry is one search or listing result. Entries are built per query,
// carried typed through the whole pipeline, and never persisted.
type Entry struct {
	Origin    Origin
	Name      string
	Version   string
	Installed bool
}

// Repo drives the official package manager. One method per pacman
// invocation; nothing here is reimplemented locally.
type Repo interface {
	Search(query string) ([]Entry, error)
	Install(name string) error
	Remove(name string, recursive bool) error
	Upgrade() error
	// Has reports whether the sync databases know the package.
	Has(name string) bool
	// Installed reports whether the package is in the local database.
	Installed(name string) bool
	// ListInstalled returns locally installed packages, split into native
	// (official) and foreign (locally built) sets.
	ListInstalled() (native, foreign []Entry, err error)
}

// Aur queries the community repository's RPC endpoint.
type Aur interface {
	Search(query string) ([]Entry, error)
	// Info returns the current remote version for each known name.
	Info(names []string) (map[string]string, error)
}

// Builder fetches a build recipe into workdir and builds and installs it.
type Builder interface {
	BuildInstall(workdir, name string) error
}
