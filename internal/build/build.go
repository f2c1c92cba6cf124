// Package build fetches AUR build recipes and runs them through makepkg.
package build

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aurgo/aurgo-cli/internal/executil"
	"github.com/aurgo/aurgo-cli/internal/logging"
)

type Makepkg struct {
	git       string
	makepkg   string
	cloneURL  string
	noconfirm bool
}

func New(git, makepkg, cloneURL string, noconfirm bool) *Makepkg {
	return &Makepkg{git: git, makepkg: makepkg, cloneURL: cloneURL, noconfirm: noconfirm}
}

// BuildInstall clones the package's AUR repository into workdir and runs
// makepkg -si there. makepkg handles dependencies, the build itself, and the
// final pacman -U; it must not run as root, which is why no sudo wrapping
// happens here.
func (b *Makepkg) BuildInstall(workdir, name string) error {
	dir := filepath.Join(workdir, name)
	url := fmt.Sprintf(b.cloneURL, name)
	logging.Debug("cloning " + url)
	if err := executil.Run("", false, b.git, "clone", "--depth", "1", url, dir); err != nil {
		return fmt.Errorf("fetch recipe for %s: %w", name, err)
	}
	// The AUR serves an empty repository for names it has never hosted.
	if _, err := os.Stat(filepath.Join(dir, "PKGBUILD")); err != nil {
		return fmt.Errorf("no build recipe for %s", name)
	}
	args := []string{"-si"}
	if b.noconfirm {
		args = append(args, "--noconfirm")
	}
	if err := executil.Run(dir, false, b.makepkg, args...); err != nil {
		return fmt.Errorf("build %s: %w", name, err)
	}
	return nil
}
