package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aurgo/aurgo-cli/internal/assets"
	"github.com/aurgo/aurgo-cli/internal/aur"
	"github.com/aurgo/aurgo-cli/internal/build"
	"github.com/aurgo/aurgo-cli/internal/config"
	"github.com/aurgo/aurgo-cli/internal/logging"
	"github.com/aurgo/aurgo-cli/internal/manager"
	"github.com/aurgo/aurgo-cli/internal/pacman"
	"github.com/aurgo/aurgo-cli/internal/ui/console"
)

var (
	cfgFile string
	cfg     config.Config
	opts    config.Options
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "aurgo",
	Short: "Interactive pacman and AUR front-end",
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the config file (default ~/.config/aurgo/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "show detailed steps and commands")
	rootCmd.PersistentFlags().BoolVar(&opts.RepoOnly, "repo-only", false, "only use the official repositories, never the AUR")
	rootCmd.PersistentFlags().BoolVar(&opts.NoFzf, "no-fzf", false, "use the numbered prompt instead of fzf")
	rootCmd.PersistentFlags().BoolVar(&opts.NoConfirm, "noconfirm", false, "skip confirmation prompts, ours and the underlying tools'")
	rootCmd.Version = version
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		dir, _ := os.UserConfigDir()
		p, err := assets.WriteDefaultConfigIfMissing(filepath.Join(dir, "aurgo"))
		if err != nil {
			logging.Error("config error: " + err.Error())
			os.Exit(1)
		}
		path = p
	}
	c, err := config.LoadFile(path)
	if err != nil {
		logging.Error("config error: " + err.Error())
		os.Exit(1)
	}
	cfg = c
	logging.Init()
	logging.SetVerbose(opts.Verbose)
}

// newUI wires the concrete backends into a manager and console for one
// command invocation. The caller must Close the manager so the scratch
// workspace is reclaimed.
func newUI() (*manager.Manager, *console.ConsoleUI) {
	repo := pacman.New(cfg.Tools.Pacman, opts.NoConfirm)
	client := aur.NewClient(cfg.AUR.RPCURL)
	builder := build.New(cfg.Tools.Git, cfg.Tools.Makepkg, cfg.AUR.CloneURL, opts.NoConfirm)
	m := manager.New(opts, repo, client, builder)
	return m, console.NewConsoleUI(m, cfg, opts)
}
