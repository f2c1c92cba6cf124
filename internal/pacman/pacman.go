// Package pacman drives the official package manager. Every operation is one
// pacman invocation; dependency resolution, downloads, and transactions all
// stay pacman's business.
package pacman

import (
	"fmt"

	"github.com/aurgo/aurgo-cli/internal/executil"
	"github.com/aurgo/aurgo-cli/internal/manager"
)

type Pacman struct {
	bin       string
	noconfirm bool
}

func New(bin string, noconfirm bool) *Pacman {
	return &Pacman{bin: bin, noconfirm: noconfirm}
}

func (p *Pacman) Search(query string) ([]manager.Entry, error) {
	res := executil.Capture(p.bin, "-Ss", query)
	// pacman exits 1 when nothing matched; that is an empty result, not a
	// failure.
	if res.Code != 0 && res.Stdout == "" {
		return nil, nil
	}
	return ParseSearch(res.Stdout), nil
}

func (p *Pacman) Install(name string) error {
	return executil.Run("", true, p.bin, p.args("-S", name)...)
}

func (p *Pacman) Remove(name string, recursive bool) error {
	op := "-R"
	if recursive {
		op = "-Rns"
	}
	return executil.Run("", true, p.bin, p.args(op, name)...)
}

func (p *Pacman) Upgrade() error {
	return executil.Run("", true, p.bin, p.args("-Syu")...)
}

func (p *Pacman) Has(name string) bool {
	return executil.Capture(p.bin, "-Si", name).Code == 0
}

func (p *Pacman) Installed(name string) bool {
	return executil.Capture(p.bin, "-Qq", name).Code == 0
}

func (p *Pacman) ListInstalled() (native, foreign []manager.Entry, err error) {
	nres := executil.Capture(p.bin, "-Qn")
	if nres.Code != 0 {
		return nil, nil, fmt.Errorf("pacman -Qn: exit %d: %s", nres.Code, nres.Stderr)
	}
	fres := executil.Capture(p.bin, "-Qm")
	// -Qm exits 1 when no foreign packages exist.
	if fres.Code != 0 && fres.Stdout != "" {
		return nil, nil, fmt.Errorf("pacman -Qm: exit %d: %s", fres.Code, fres.Stderr)
	}
	return ParseInstalled(nres.Stdout, manager.OriginRepo), ParseInstalled(fres.Stdout, manager.OriginAUR), nil
}

func (p *Pacman) args(op string, rest ...string) []string {
	out := []string{op}
	if p.noconfirm {
		out = append(out, "--noconfirm")
	}
	return append(out, rest...)
}
