// Package papers turns PubMed summaries into report records. Authors
// are split into academic and non-academic by affiliation keywords, and
// each paper is flattened to the six report fields.
package papers

import (
	"strings"

	"github.com/mohan-31743/pubmed-paper-fetcher/internal/eutils"
)

// NA fills report fields that have no source value.
const NA = "N/A"

// Record is one report row. Every field is populated at construction:
// Title, PubDate and Email fall back to NA, the two author columns to
// the empty string when no author qualifies.
type Record struct {
	PubmedID            string
	Title               string
	PubDate             string
	NonAcademicAuthors  string
	CompanyAffiliations string
	Email               string
}

// Header returns the report column names in output order.
func Header() []string {
	return []string{
		"PubmedID",
		"Title",
		"Publication Date",
		"Non-academic Author(s)",
		"Company Affiliation(s)",
		"Corresponding Author Email",
	}
}

// Fields returns the record's values in Header order.
func (r Record) Fields() []string {
	return []string{
		r.PubmedID,
		r.Title,
		r.PubDate,
		r.NonAcademicAuthors,
		r.CompanyAffiliations,
		r.Email,
	}
}

// NewRecord flattens one summary into a report row.
func NewRecord(s eutils.Summary) Record {
	names, affiliations := NonAcademic(s.Authors)

	title := s.Title
	if title == "" {
		title = NA
	}
	pubDate := s.PubDate
	if pubDate == "" {
		pubDate = NA
	}
	email := CorrespondingEmail(s.Authors)
	if email == "" {
		email = NA
	}

	return Record{
		PubmedID:            s.ID,
		Title:               title,
		PubDate:             pubDate,
		NonAcademicAuthors:  strings.Join(names, ", "),
		CompanyAffiliations: strings.Join(affiliations, ", "),
		Email:               email,
	}
}

// FromSummaries maps summaries to report rows, preserving order.
func FromSummaries(sums []eutils.Summary) []Record {
	records := make([]Record, 0, len(sums))
	for _, s := range sums {
		records = append(records, NewRecord(s))
	}
	return records
}
