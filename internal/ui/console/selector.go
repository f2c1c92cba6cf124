package console

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/aurgo/aurgo-cli/internal/manager"
)

// Select presents entries and returns the chosen one, or nil when the user
// cancels. Every rendered line carries its 1-based index, and the choice is
// mapped back to the typed entry through that index; the rendered text is a
// one-way projection and is never parsed for package fields.
func (c *ConsoleUI) Select(entries []manager.Entry) (*manager.Entry, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	if c.fzfAvailable() {
		return c.selectFzf(entries)
	}
	return c.selectNumbered(entries)
}

func (c *ConsoleUI) fzfAvailable() bool {
	if c.opts.NoFzf || !c.cfg.Fzf.Enabled {
		return false
	}
	lookup := c.lookup
	if lookup == nil {
		lookup = exec.LookPath
	}
	_, err := lookup(c.cfg.Tools.Fzf)
	return err == nil
}

func (c *ConsoleUI) selectFzf(entries []manager.Entry) (*manager.Entry, error) {
	var in strings.Builder
	for i, e := range entries {
		in.WriteString(renderLine(i, e))
		in.WriteByte('\n')
	}
	cmd := exec.Command(c.cfg.Tools.Fzf, "--ansi", "--no-multi")
	cmd.Stdin = strings.NewReader(in.String())
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		// 1 means no match, 130 means the user backed out.
		if e, ok := err.(*exec.ExitError); ok && (e.ExitCode() == 1 || e.ExitCode() == 130) {
			return nil, nil
		}
		return nil, fmt.Errorf("fzf: %w", err)
	}
	return pickByIndex(entries, strings.TrimSpace(out.String())), nil
}

func (c *ConsoleUI) selectNumbered(entries []manager.Entry) (*manager.Entry, error) {
	for i, e := range entries {
		fmt.Fprintln(c.out, renderLine(i, e))
	}
	fmt.Fprint(c.out, "Select a package (0 cancels): ")
	scanner := bufio.NewScanner(c.in)
	if !scanner.Scan() {
		return nil, nil
	}
	return pickByIndex(entries, strings.TrimSpace(scanner.Text())), nil
}

// pickByIndex resolves the leading 1-based index token of a selected line.
// Zero, junk, and out-of-range input all mean cancel.
func pickByIndex(entries []manager.Entry, line string) *manager.Entry {
	tok := line
	if i := strings.IndexByte(tok, ' '); i >= 0 {
		tok = tok[:i]
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 1 || n > len(entries) {
		return nil
	}
	e := entries[n-1]
	return &e
}
