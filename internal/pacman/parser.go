package pacman

import (
	"strings"

	"github.com/aurgo/aurgo-cli/internal/manager"
)

// ParseSearch extracts entries from `pacman -Ss` output. Header lines look
// like
//
//	extra/ripgrep 14.1.0-1 [installed]
//
// followed by an indented description line, which is skipped.
func ParseSearch(out string) []manager.Entry {
	var entries []manager.Entry
	for _, line := range strings.Split(out, "\n") {
		if line == "" || line[0] == ' ' || line[0] == '\t' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		slash := strings.IndexByte(fields[0], '/')
		if slash < 0 {
			continue
		}
		entries = append(entries, manager.Entry{
			Origin:    manager.OriginRepo,
			Name:      fields[0][slash+1:],
			Version:   fields[1],
			Installed: strings.Contains(line, "[installed"),
		})
	}
	return entries
}

// ParseInstalled parses `pacman -Qn` / `-Qm` output, one "name version" pair
// per line.
func ParseInstalled(out string, origin manager.Origin) []manager.Entry {
	var entries []manager.Entry
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		entries = append(entries, manager.Entry{
			Origin:    origin,
			Name:      fields[0],
			Version:   fields[1],
			Installed: true,
		})
	}
	return entries
}
