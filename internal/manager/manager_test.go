package manager

import (
	"errors"
	"os"
	"testing"

	"github.com/aurgo/aurgo-cli/internal/config"
)

type fakeRepo struct {
	searchEntries []Entry
	searchErr     error
	installedSet  map[string]bool
	hasSet        map[string]bool
	native        []Entry
	foreign       []Entry
	listErr       error
	upgradeErr    error

	installCalls []string
	removeCalls  []string
	removeRec    []bool
	upgradeCalls int
}

func (f *fakeRepo) Search(query string) ([]Entry, error) { return f.searchEntries, f.searchErr }
func (f *fakeRepo) Install(name string) error {
	f.installCalls = append(f.installCalls, name)
	return nil
}
func (f *fakeRepo) Remove(name string, recursive bool) error {
	f.removeCalls = append(f.removeCalls, name)
	f.removeRec = append(f.removeRec, recursive)
	return nil
}
func (f *fakeRepo) Upgrade() error {
	f.upgradeCalls++
	return f.upgradeErr
}
func (f *fakeRepo) Has(name string) bool       { return f.hasSet[name] }
func (f *fakeRepo) Installed(name string) bool { return f.installedSet[name] }
func (f *fakeRepo) ListInstalled() ([]Entry, []Entry, error) {
	return f.native, f.foreign, f.listErr
}

type fakeAur struct {
	searchEntries []Entry
	searchErr     error
	info          map[string]string
	infoErr       error

	searchCalls int
	infoCalls   int
}

func (f *fakeAur) Search(query string) ([]Entry, error) {
	f.searchCalls++
	return f.searchEntries, f.searchErr
}
func (f *fakeAur) Info(names []string) (map[string]string, error) {
	f.infoCalls++
	return f.info, f.infoErr
}

type fakeBuilder struct {
	err      error
	calls    []string
	workdirs []string
}

func (f *fakeBuilder) BuildInstall(workdir, name string) error {
	f.workdirs = append(f.workdirs, workdir)
	f.calls = append(f.calls, name)
	return f.err
}

func TestSearchEntriesMergeOrder(t *testing.T) {
	repo := &fakeRepo{
		searchEntries: []Entry{{Origin: OriginRepo, Name: "foo-core", Version: "1.0", Installed: true}},
		installedSet:  map[string]bool{},
	}
	aur := &fakeAur{searchEntries: []Entry{{Origin: OriginAUR, Name: "foo-aur", Version: "2.0"}}}
	m := New(config.Options{}, repo, aur, &fakeBuilder{})

	entries := m.SearchEntries("foo")
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "foo-core" || entries[1].Name != "foo-aur" {
		t.Fatalf("wrong order: %+v", entries)
	}
	if entries[0].Origin != OriginRepo || entries[1].Origin != OriginAUR {
		t.Fatalf("wrong origins: %+v", entries)
	}
}

func TestSearchEntriesMarksAURInstalled(t *testing.T) {
	repo := &fakeRepo{installedSet: map[string]bool{"yay": true}}
	aur := &fakeAur{searchEntries: []Entry{
		{Origin: OriginAUR, Name: "yay", Version: "12.0"},
		{Origin: OriginAUR, Name: "paru", Version: "2.0"},
	}}
	m := New(config.Options{}, repo, aur, &fakeBuilder{})

	entries := m.SearchEntries("r")
	if !entries[0].Installed || entries[1].Installed {
		t.Fatalf("wrong installed flags: %+v", entries)
	}
}

func TestSearchEntriesRepoOnly(t *testing.T) {
	aur := &fakeAur{searchEntries: []Entry{{Origin: OriginAUR, Name: "x"}}}
	m := New(config.Options{RepoOnly: true}, &fakeRepo{}, aur, &fakeBuilder{})

	if entries := m.SearchEntries("x"); len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", entries)
	}
	if aur.searchCalls != 0 {
		t.Fatalf("AUR queried despite repo-only")
	}
}

func TestSearchEntriesFailingSourceIsEmpty(t *testing.T) {
	repo := &fakeRepo{searchErr: errors.New("pacman exploded"), installedSet: map[string]bool{}}
	aur := &fakeAur{searchEntries: []Entry{{Origin: OriginAUR, Name: "foo-aur", Version: "2.0"}}}
	m := New(config.Options{}, repo, aur, &fakeBuilder{})

	entries := m.SearchEntries("foo")
	if len(entries) != 1 || entries[0].Name != "foo-aur" {
		t.Fatalf("got %v, want just the AUR entry", entries)
	}

	m2 := New(config.Options{}, &fakeRepo{
		searchEntries: []Entry{{Origin: OriginRepo, Name: "foo-core"}},
	}, &fakeAur{searchErr: errors.New("network down")}, &fakeBuilder{})
	entries = m2.SearchEntries("foo")
	if len(entries) != 1 || entries[0].Name != "foo-core" {
		t.Fatalf("got %v, want just the repo entry", entries)
	}
}

func TestResolveOrigin(t *testing.T) {
	repo := &fakeRepo{hasSet: map[string]bool{"ripgrep": true}}
	aur := &fakeAur{info: map[string]string{"yay": "12.0"}}
	m := New(config.Options{}, repo, aur, &fakeBuilder{})

	if o, err := m.ResolveOrigin("ripgrep"); err != nil || o != OriginRepo {
		t.Fatalf("ripgrep: got %v/%v", o, err)
	}
	if o, err := m.ResolveOrigin("yay"); err != nil || o != OriginAUR {
		t.Fatalf("yay: got %v/%v", o, err)
	}
	if _, err := m.ResolveOrigin("nope"); err == nil {
		t.Fatalf("expected not-found error")
	}
}

func TestResolveOriginRepoOnlySkipsAUR(t *testing.T) {
	aur := &fakeAur{info: map[string]string{"yay": "12.0"}}
	m := New(config.Options{RepoOnly: true}, &fakeRepo{}, aur, &fakeBuilder{})

	if _, err := m.ResolveOrigin("yay"); err == nil {
		t.Fatalf("expected not-found in repo-only mode")
	}
	if aur.infoCalls != 0 {
		t.Fatalf("AUR info queried despite repo-only")
	}
}

func TestInstallDispatch(t *testing.T) {
	repo := &fakeRepo{}
	builder := &fakeBuilder{}
	m := New(config.Options{}, repo, &fakeAur{}, builder)
	defer m.Close()

	if err := m.Install(Entry{Origin: OriginRepo, Name: "foo-core"}); err != nil {
		t.Fatalf("repo install: %v", err)
	}
	if len(repo.installCalls) != 1 || repo.installCalls[0] != "foo-core" {
		t.Fatalf("repo install calls: %v", repo.installCalls)
	}
	if len(builder.calls) != 0 {
		t.Fatalf("builder must not run for official packages")
	}

	if err := m.Install(Entry{Origin: OriginAUR, Name: "foo-aur"}); err != nil {
		t.Fatalf("aur install: %v", err)
	}
	if len(builder.calls) != 1 || builder.calls[0] != "foo-aur" {
		t.Fatalf("builder calls: %v", builder.calls)
	}
	if len(repo.installCalls) != 1 {
		t.Fatalf("pacman -S must not run for AUR packages")
	}
}

func TestWorkspaceRemovedAfterFailedBuild(t *testing.T) {
	builder := &fakeBuilder{err: errors.New("makepkg failed")}
	m := New(config.Options{}, &fakeRepo{}, &fakeAur{}, builder)

	if err := m.Install(Entry{Origin: OriginAUR, Name: "broken"}); err == nil {
		t.Fatalf("expected build error")
	}
	if len(builder.workdirs) != 1 {
		t.Fatalf("builder not invoked")
	}
	dir := builder.workdirs[0]
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("workspace missing while session still open: %v", err)
	}
	m.Close()
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("workspace still present after close: %v", err)
	}
}

func TestRemoveRecursiveFlag(t *testing.T) {
	repo := &fakeRepo{installedSet: map[string]bool{"somepkg": true}}
	m := New(config.Options{}, repo, &fakeAur{}, &fakeBuilder{})

	if err := m.Remove("somepkg", true); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(repo.removeCalls) != 1 || !repo.removeRec[0] {
		t.Fatalf("expected one recursive removal, got %v %v", repo.removeCalls, repo.removeRec)
	}
}

func TestOutdatedForeign(t *testing.T) {
	repo := &fakeRepo{foreign: []Entry{
		{Origin: OriginAUR, Name: "yay", Version: "12.0.4-1", Installed: true},
		{Origin: OriginAUR, Name: "paru", Version: "2.0.1-1", Installed: true},
		{Origin: OriginAUR, Name: "orphaned", Version: "1.0-1", Installed: true},
	}}
	aur := &fakeAur{info: map[string]string{
		"yay":  "12.0.5-1",
		"paru": "2.0.1-1",
	}}
	m := New(config.Options{}, repo, aur, &fakeBuilder{})

	out, err := m.OutdatedForeign()
	if err != nil {
		t.Fatalf("outdated: %v", err)
	}
	if len(out) != 1 || out[0].Name != "yay" || out[0].Remote != "12.0.5-1" {
		t.Fatalf("got %+v, want just yay", out)
	}
}

func TestOutdatedForeignNoForeign(t *testing.T) {
	aur := &fakeAur{}
	m := New(config.Options{}, &fakeRepo{}, aur, &fakeBuilder{})

	out, err := m.OutdatedForeign()
	if err != nil || out != nil {
		t.Fatalf("got %v/%v, want nil/nil", out, err)
	}
	if aur.infoCalls != 0 {
		t.Fatalf("no foreign packages, info endpoint must stay untouched")
	}
}

func TestInstalledEntriesNativeFirst(t *testing.T) {
	repo := &fakeRepo{
		native:  []Entry{{Origin: OriginRepo, Name: "bash", Version: "5.2", Installed: true}},
		foreign: []Entry{{Origin: OriginAUR, Name: "yay", Version: "12.0", Installed: true}},
	}
	m := New(config.Options{}, repo, &fakeAur{}, &fakeBuilder{})

	entries, err := m.InstalledEntries()
	if err != nil {
		t.Fatalf("installed: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "bash" || entries[1].Name != "yay" {
		t.Fatalf("bad listing: %+v", entries)
	}
}
