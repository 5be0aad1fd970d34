package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/mohan-31743/pubmed-paper-fetcher/internal/logger"
	"github.com/mohan-31743/pubmed-paper-fetcher/internal/papers"
)

// writeCSV exports records to path, truncating any existing file. The
// header row comes first, then one row per record in input order. An
// empty record set is an error; no file is created for it.
func writeCSV(path string, records []papers.Record) error {
	if len(records) == 0 {
		return fmt.Errorf("no records to write to %s", path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(papers.Header()); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, r := range records {
		if err := w.Write(r.Fields()); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", r.PubmedID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}

	logger.Info("results saved to %s", path)
	return nil
}
