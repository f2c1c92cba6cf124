package console

import (
	"io"
	"os"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/aurgo/aurgo-cli/internal/config"
	"github.com/aurgo/aurgo-cli/internal/logging"
	"github.com/aurgo/aurgo-cli/internal/manager"
)

type ConsoleUI struct {
	m      *manager.Manager
	cfg    config.Config
	opts   config.Options
	in     io.Reader
	out    io.Writer
	lookup func(string) (string, error)
}

func NewConsoleUI(m *manager.Manager, cfg config.Config, opts config.Options) *ConsoleUI {
	return NewConsoleUIWithIO(m, cfg, opts, os.Stdin, os.Stdout)
}

func NewConsoleUIWithIO(m *manager.Manager, cfg config.Config, opts config.Options, in io.Reader, out io.Writer) *ConsoleUI {
	return &ConsoleUI{m: m, cfg: cfg, opts: opts, in: in, out: out}
}

// RunSearch drives the full pipeline: both adapters, merge, pick, install.
func (c *ConsoleUI) RunSearch(query string) error {
	entries := c.m.SearchEntries(query)
	if len(entries) == 0 {
		logging.Info("no results for: " + query)
		return nil
	}
	sel, err := c.Select(entries)
	if err != nil {
		return err
	}
	if sel == nil {
		logging.Gray("cancelled")
		return nil
	}
	if err := c.m.Install(*sel); err != nil {
		logging.Error(err.Error())
	}
	return nil
}

// RunAdd installs one package by exact name, resolving its origin against
// the sources themselves.
func (c *ConsoleUI) RunAdd(name string) error {
	origin, err := c.m.ResolveOrigin(name)
	if err != nil {
		logging.Error(err.Error())
		return nil
	}
	if err := c.m.Install(manager.Entry{Origin: origin, Name: name}); err != nil {
		logging.Error(err.Error())
	}
	return nil
}

// RunRemove removes one package by name after confirmation.
func (c *ConsoleUI) RunRemove(name string) error {
	if !c.m.IsInstalled(name) {
		logging.Info("not installed: " + name)
		return nil
	}
	ok, err := c.confirm("Remove " + name + "?")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := c.m.Remove(name, c.opts.Recurse); err != nil {
		logging.Error(err.Error())
	}
	return nil
}

// RunRemoveSelect lets the user pick the removal target from everything
// currently installed, tagged by origin.
func (c *ConsoleUI) RunRemoveSelect() error {
	entries, err := c.m.InstalledEntries()
	if err != nil {
		logging.Error(err.Error())
		return nil
	}
	if len(entries) == 0 {
		logging.Info("nothing installed")
		return nil
	}
	sel, err := c.Select(entries)
	if err != nil {
		return err
	}
	if sel == nil {
		logging.Gray("cancelled")
		return nil
	}
	return c.RunRemove(sel.Name)
}

// RunUpdate upgrades the system through the official manager, then rebuilds
// every foreign package whose remote version changed. Each rebuild is
// independent; one failure does not stop the rest.
func (c *ConsoleUI) RunUpdate() error {
	if err := c.m.UpgradeSystem(); err != nil {
		logging.Error("system upgrade failed: " + err.Error())
	}
	if c.opts.RepoOnly {
		return nil
	}
	pending, err := c.m.OutdatedForeign()
	if err != nil {
		logging.Error(err.Error())
		return nil
	}
	if len(pending) == 0 {
		logging.Info("AUR packages are up to date")
		return nil
	}
	io.WriteString(c.out, renderOutdated(pending))
	ok, err := c.confirm("Rebuild these packages?")
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	for _, p := range pending {
		if err := c.m.Install(manager.Entry{Origin: manager.OriginAUR, Name: p.Name}); err != nil {
			logging.Error(err.Error())
		}
	}
	return nil
}

func (c *ConsoleUI) confirm(msg string) (bool, error) {
	if c.opts.NoConfirm {
		return true, nil
	}
	ok := false
	if err := survey.AskOne(&survey.Confirm{Message: msg, Default: true}, &ok); err != nil {
		return false, err
	}
	return ok, nil
}
