package papers

import (
	"context"

	"github.com/mohan-31743/pubmed-paper-fetcher/internal/eutils"
	"github.com/mohan-31743/pubmed-paper-fetcher/internal/logger"
)

// Source is the slice of the E-utilities client the pipeline needs.
// *eutils.Client satisfies it.
type Source interface {
	Search(ctx context.Context, query string, limit int) (*eutils.SearchResult, error)
	Summaries(ctx context.Context, ids []string) ([]eutils.Summary, error)
}

// Fetch runs the pipeline: search PubMed for query, fetch summaries for
// the matching IDs, flatten them to report rows. A failure at either
// stage is logged and yields an empty result; callers never see a
// network or parse error. A search with no matches skips the summary
// request entirely.
func Fetch(ctx context.Context, src Source, query string, limit int) []Record {
	res, err := src.Search(ctx, query, limit)
	if err != nil {
		logger.Error("fetching papers: %v", err)
		return nil
	}
	logger.Debug("search for %q matched %d papers, returning %d", query, res.Count, len(res.IDs))
	if res.QueryTranslation != "" {
		logger.Debug("query translation: %s", res.QueryTranslation)
	}

	if len(res.IDs) == 0 {
		return nil
	}

	sums, err := src.Summaries(ctx, res.IDs)
	if err != nil {
		logger.Error("fetching paper details: %v", err)
		return nil
	}
	if len(sums) < len(res.IDs) {
		logger.Warn("summaries returned for %d of %d papers", len(sums), len(res.IDs))
	}

	return FromSummaries(sums)
}
