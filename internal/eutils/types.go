// Package eutils provides a client for the two NCBI E-utilities
// endpoints this tool consumes: ESearch and ESummary.
package eutils

// SearchResult represents the result of an ESearch query.
type SearchResult struct {
	Count            int      `json:"count"`
	IDs              []string `json:"ids"`
	QueryTranslation string   `json:"query_translation,omitempty"`
}

// Summary is one ESummary record with the fields this tool consumes.
// Title and PubDate may be empty; callers apply their own defaults.
type Summary struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	PubDate string   `json:"pubdate"`
	Authors []Author `json:"authors"`
}

// Author is an author entry in an ESummary record. Every field is
// optional on the wire; absent fields decode to the empty string.
type Author struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
	Email       string `json:"email"`
}
