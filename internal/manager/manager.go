package manager

import (
	"fmt"

	"github.com/aurgo/aurgo-cli/internal/config"
	"github.com/aurgo/aurgo-cli/internal/logging"
)

type Manager struct {
	opts    config.Options
	repo    Repo
	aur     Aur
	builder Builder
	ws      *Workspace
}

func New(opts config.Options, repo Repo, aur Aur, builder Builder) *Manager {
	return &Manager{opts: opts, repo: repo, aur: aur, builder: builder}
}

// Close releases the scratch workspace if one was acquired.
func (m *Manager) Close() {
	if m.ws != nil {
		m.ws.Remove()
		m.ws = nil
	}
}

// SearchEntries runs both source adapters and concatenates their results,
// official repositories first. A failing or unparsable source contributes an
// empty list instead of aborting the search.
func (m *Manager) SearchEntries(query string) []Entry {
	entries, err := m.repo.Search(query)
	if err != nil {
		logging.Debug("repo search failed: " + err.Error())
		entries = nil
	}
	if m.opts.RepoOnly {
		return entries
	}
	aurEntries, err := m.aur.Search(query)
	if err != nil {
		logging.Debug("aur search failed: " + err.Error())
		return entries
	}
	for i := range aurEntries {
		aurEntries[i].Installed = m.repo.Installed(aurEntries[i].Name)
	}
	return append(entries, aurEntries...)
}

// InstalledEntries lists everything in the local package database, native
// packages first, tagged by origin.
func (m *Manager) InstalledEntries() ([]Entry, error) {
	native, foreign, err := m.repo.ListInstalled()
	if err != nil {
		return nil, err
	}
	return append(native, foreign...), nil
}

// ResolveOrigin decides where a directly named package should come from by
// asking the sources themselves, not local install state: the official sync
// databases win, then the AUR info endpoint.
func (m *Manager) ResolveOrigin(name string) (Origin, error) {
	if m.repo.Has(name) {
		return OriginRepo, nil
	}
	if !m.opts.RepoOnly {
		if vers, err := m.aur.Info([]string{name}); err == nil {
			if _, ok := vers[name]; ok {
				return OriginAUR, nil
			}
		}
	}
	return "", fmt.Errorf("package not found: %s", name)
}

// Install dispatches on origin: official packages go straight to the
// package manager, community packages are cloned into the workspace and
// built locally.
func (m *Manager) Install(e Entry) error {
	if e.Origin == OriginAUR {
		ws, err := m.workspace()
		if err != nil {
			return err
		}
		if err := m.builder.BuildInstall(ws.Dir(), e.Name); err != nil {
			return err
		}
	} else {
		if err := m.repo.Install(e.Name); err != nil {
			return fmt.Errorf("install %s: %w", e.Name, err)
		}
	}
	logging.Success("installed: " + e.Name)
	return nil
}

func (m *Manager) IsInstalled(name string) bool { return m.repo.Installed(name) }

// Remove removes an installed package, recursively pruning unneeded
// dependencies when asked to.
func (m *Manager) Remove(name string, recursive bool) error {
	if err := m.repo.Remove(name, recursive); err != nil {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	logging.Success("removed: " + name)
	return nil
}

// UpgradeSystem runs the official manager's full upgrade.
func (m *Manager) UpgradeSystem() error { return m.repo.Upgrade() }

// Outdated is a foreign package whose remote version differs from the
// installed one.
type Outdated struct {
	Name      string
	Installed string
	Remote    string
}

// OutdatedForeign compares every locally built package against the remote
// repository and returns the mismatches in listing order.
func (m *Manager) OutdatedForeign() ([]Outdated, error) {
	_, foreign, err := m.repo.ListInstalled()
	if err != nil {
		return nil, err
	}
	if len(foreign) == 0 {
		return nil, nil
	}
	names := make([]string, 0, len(foreign))
	for _, e := range foreign {
		names = append(names, e.Name)
	}
	remote, err := m.aur.Info(names)
	if err != nil {
		return nil, fmt.Errorf("aur info: %w", err)
	}
	var out []Outdated
	for _, e := range foreign {
		rv, ok := remote[e.Name]
		if !ok || rv == e.Version {
			continue
		}
		out = append(out, Outdated{Name: e.Name, Installed: e.Version, Remote: rv})
	}
	return out, nil
}

func (m *Manager) workspace() (*Workspace, error) {
	if m.ws != nil {
		return m.ws, nil
	}
	ws, err := NewWorkspace()
	if err != nil {
		return nil, fmt.Errorf("workspace: %w", err)
	}
	m.ws = ws
	return ws, nil
}
