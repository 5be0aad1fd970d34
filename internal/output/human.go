package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mohan-31743/pubmed-paper-fetcher/internal/papers"
)

var (
	cyan       = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dim        = lipgloss.NewStyle().Faint(true)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
)

// formatConsole prints each record as labeled key-value pairs on a
// single line, PMID first.
func formatConsole(w io.Writer, records []papers.Record) error {
	if len(records) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return nil
	}

	labels := papers.Header()
	sep := dim.Render(" | ")
	for _, r := range records {
		parts := make([]string, len(labels))
		for i, value := range r.Fields() {
			if i == 0 {
				value = cyan.Render(value)
			}
			parts[i] = labelStyle.Render(labels[i]+":") + " " + value
		}
		fmt.Fprintln(w, strings.Join(parts, sep))
	}
	return nil
}
