// Package output renders paper report records to a CSV file or the
// console.
package output

import (
	"io"

	"github.com/mohan-31743/pubmed-paper-fetcher/internal/papers"
)

// Config selects the output mode. A non-empty File switches the report
// from console rendering to CSV export; the two never run together.
type Config struct {
	File string // CSV destination path; empty means console mode
}

// Write renders records according to cfg. Console output goes to w;
// file mode writes cfg.File and leaves w untouched.
func Write(w io.Writer, records []papers.Record, cfg Config) error {
	if cfg.File != "" {
		return writeCSV(cfg.File, records)
	}
	return formatConsole(w, records)
}
