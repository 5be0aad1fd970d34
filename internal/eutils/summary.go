package eutils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// esummaryResponse represents the raw JSON response from ESummary. The
// result object maps each uid to its summary record; the reserved "uids"
// key lists the uids in the order the response declares.
type esummaryResponse struct {
	Result map[string]json.RawMessage `json:"result"`
}

// summaryRecord is the per-uid payload inside the result map. Every
// field is optional on the wire.
type summaryRecord struct {
	Title   string   `json:"title"`
	PubDate string   `json:"pubdate"`
	Authors []Author `json:"authors"`
}

// Summaries fetches ESummary records for the given PMIDs in a single
// request. Records come back in the order the response declares, which
// NCBI does not promise to match the input order; records left out of
// the declared order follow it, sorted. Uids missing from the result
// map and entries that fail to decode as records are skipped.
func (c *Client) Summaries(ctx context.Context, ids []string) ([]Summary, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("at least one PMID is required")
	}

	params := url.Values{}
	params.Set("db", "pubmed")
	params.Set("id", strings.Join(ids, ","))
	params.Set("retmode", "json")

	body, err := c.get(ctx, "esummary.fcgi", params)
	if err != nil {
		return nil, fmt.Errorf("summary request failed: %w", err)
	}

	var resp esummaryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("parsing summary response: %w", err)
	}

	return parseSummaries(resp.Result), nil
}

// parseSummaries flattens the uid-keyed result map into Summary values
// ordered by summaryOrder.
func parseSummaries(result map[string]json.RawMessage) []Summary {
	order := summaryOrder(result)

	summaries := make([]Summary, 0, len(order))
	for _, uid := range order {
		raw, ok := result[uid]
		if !ok {
			continue
		}
		var rec summaryRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		summaries = append(summaries, Summary{
			ID:      uid,
			Title:   rec.Title,
			PubDate: rec.PubDate,
			Authors: rec.Authors,
		})
	}
	return summaries
}

// summaryOrder returns record uids in the response's declared order,
// followed by any record keys the uids field omits, sorted. A response
// without a usable uids field yields sorted keys alone.
func summaryOrder(result map[string]json.RawMessage) []string {
	var order []string
	declared := make(map[string]bool)
	if raw, ok := result["uids"]; ok {
		var uids []string
		if err := json.Unmarshal(raw, &uids); err == nil {
			for _, uid := range uids {
				if declared[uid] {
					continue
				}
				declared[uid] = true
				order = append(order, uid)
			}
		}
	}

	rest := make([]string, 0, len(result))
	for k := range result {
		if k == "uids" || declared[k] {
			continue
		}
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(order, rest...)
}
