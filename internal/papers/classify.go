package papers

import (
	"strings"

	"github.com/mohan-31743/pubmed-paper-fetcher/internal/eutils"
)

// academicTerms flags an affiliation as academic when any term appears
// as a case-insensitive substring. Matching is by substring, so "lab"
// also hits "laboratory" and "collaborative". The list is small and
// English-only; synonyms like "Institut" or "Hochschule" fall through.
var academicTerms = []string{"university", "college", "institute", "lab"}

// IsAcademic reports whether the affiliation names an academic
// institution under the keyword heuristic.
func IsAcademic(affiliation string) bool {
	a := strings.ToLower(affiliation)
	for _, term := range academicTerms {
		if strings.Contains(a, term) {
			return true
		}
	}
	return false
}

// NonAcademic returns the names and affiliations of authors whose
// affiliation is present and not academic. The slices are parallel:
// names[i] pairs with affiliations[i]. Authors without an affiliation
// appear in neither. A missing name becomes "Unknown".
func NonAcademic(authors []eutils.Author) (names, affiliations []string) {
	for _, a := range authors {
		if a.Affiliation == "" || IsAcademic(a.Affiliation) {
			continue
		}
		name := a.Name
		if name == "" {
			name = "Unknown"
		}
		names = append(names, name)
		affiliations = append(affiliations, a.Affiliation)
	}
	return names, affiliations
}

// CorrespondingEmail returns the first author email in list order, or
// "" when no author carries one.
func CorrespondingEmail(authors []eutils.Author) string {
	for _, a := range authors {
		if a.Email != "" {
			return a.Email
		}
	}
	return ""
}
