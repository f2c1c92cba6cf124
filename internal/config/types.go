package config

type AUR struct {
	RPCURL   string `yaml:"rpc_url" json:"rpc_url"`
	CloneURL string `yaml:"clone_url" json:"clone_url"`
}

type Tools struct {
	Pacman  string `yaml:"pacman" json:"pacman"`
	Git     string `yaml:"git" json:"git"`
	Makepkg string `yaml:"makepkg" json:"makepkg"`
	Fzf     string `yaml:"fzf" json:"fzf"`
}

type Fzf struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

type Config struct {
	AUR   AUR   `yaml:"aur" json:"aur"`
	Tools Tools `yaml:"tools" json:"tools"`
	Fzf   Fzf   `yaml:"fzf" json:"fzf"`
}

// Options are the per-invocation toggles parsed from flags. They are built
// once by the root command and handed down explicitly; nothing reads them
// from package state.
type Options struct {
	RepoOnly  bool
	NoFzf     bool
	NoConfirm bool
	Recurse   bool
	Verbose   bool
}

func Default() Config {
	return Config{
		AUR: AUR{
			RPCURL:   "https://aur.archlinux.org/rpc",
			CloneURL: "https://aur.archlinux.org/%s.git",
		},
		Tools: Tools{
			Pacman:  "pacman",
			Git:     "git",
			Makepkg: "makepkg",
			Fzf:     "fzf",
		},
		Fzf: Fzf{Enabled: true},
	}
}
