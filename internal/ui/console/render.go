package console

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/aurgo/aurgo-cli/internal/manager"
)

func renderLine(i int, e manager.Entry) string {
	label := fmt.Sprintf("%s/%s", e.Origin, e.Name)
	line := fmt.Sprintf("%d %s %s", i+1, text.Bold.Sprint(label), text.FgGreen.Sprint(e.Version))
	if e.Installed {
		line += " " + text.FgHiBlack.Sprint("[installed]")
	}
	return line
}

func renderOutdated(pending []manager.Outdated) string {
	var b strings.Builder
	b.WriteString(text.Bold.Sprint("AUR updates") + "\n")
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Package", "Installed", "Remote"})
	for _, p := range pending {
		tw.AppendRow(table.Row{p.Name, p.Installed, p.Remote})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}
