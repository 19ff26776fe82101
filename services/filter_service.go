package services

import (
	"sort"
	"strconv"
	"strings"

	"rfqportal/models"
)

// ApplyFilters returns the subsequence of records matching every active
// criterion, preserving the original relative order. All criteria are
// conjunctive; an empty filter returns the input unchanged in content.
func ApplyFilters(records []models.RFQ, f models.RFQFilter) []models.RFQ {
	out := make([]models.RFQ, 0, len(records))
	for _, r := range records {
		if Matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether one record satisfies every active criterion.
func Matches(r models.RFQ, f models.RFQFilter) bool {
	return matchesSearch(r, f.Search) &&
		containsFold(r.ID.String(), f.RFQID) &&
		containsFold(r.CustomerName, f.CustomerName) &&
		containsFold(r.CreatedByEmail, f.CreatedByEmail) &&
		containsFold(r.ProductLine, f.ProductLine) &&
		containsFold(r.CustomerPN, f.CustomerPN) &&
		passesMin(r.AnnualVolume, f.AnnualVolumeMin) &&
		passesMax(r.AnnualVolume, f.AnnualVolumeMax) &&
		passesMin(r.TargetPriceEUR, f.TargetPriceMin) &&
		passesMax(r.TargetPriceEUR, f.TargetPriceMax) &&
		passesMin(r.TotalAmount, f.TotalAmountMin) &&
		passesMax(r.TotalAmount, f.TotalAmountMax)
}

// matchesSearch is the free-text search: case-insensitive substring against
// customer name, requester email, customer PN, product line, the identifier
// text and the contact email. Matching ANY of them is enough.
func matchesSearch(r models.RFQ, term string) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	for _, field := range []string{
		r.CustomerName,
		r.CreatedByEmail,
		r.CustomerPN,
		r.ProductLine,
		r.ID.String(),
		r.ContactEmail,
	} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

func containsFold(value, criterion string) bool {
	if criterion == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(criterion))
}

// parseBound parses a range bound. Empty or unparseable input deactivates
// the bound rather than failing the whole filter.
func parseBound(s string) (float64, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// passesMin applies an inclusive lower bound. A record with no value for the
// field fails any active bound; it never passes silently.
func passesMin(v *float64, bound string) bool {
	b, active := parseBound(bound)
	if !active {
		return true
	}
	return v != nil && *v >= b
}

// passesMax applies an inclusive upper bound, same absence rule as passesMin.
func passesMax(v *float64, bound string) bool {
	b, active := parseBound(bound)
	if !active {
		return true
	}
	return v != nil && *v <= b
}

// ProductLines collects the distinct non-empty product lines across ALL
// partitions, sorted lexicographically. The selector offers every line even
// when a different tab is active.
func ProductLines(snap *models.Snapshot) []string {
	seen := map[string]bool{}
	lines := []string{}
	for _, r := range snap.All() {
		line := strings.TrimSpace(r.ProductLine)
		if line == "" || seen[line] {
			continue
		}
		seen[line] = true
		lines = append(lines, line)
	}
	sort.Strings(lines)
	return lines
}
