// Package query filters the category collections by free-text search.
//
// Matching is case-insensitive substring containment over a fixed set of
// fields per record shape. There is no ranking: results keep the relative
// order of the source collection.
package query

import (
	"strings"

	"github.com/Veraticus/taxref/internal/model"
)

// Normalize trims the raw query and lower-cases it.
// An empty result means "match everything".
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// FilterIncome returns the income categories matching query.
func FilterIncome(query string, items []model.IncomeCategory) []model.IncomeCategory {
	return filter(Normalize(query), items, MatchesIncome)
}

// FilterOccupations returns the occupation categories matching query.
func FilterOccupations(query string, items []model.OccupationCategory) []model.OccupationCategory {
	return filter(Normalize(query), items, MatchesOccupation)
}

// FilterItems returns the detailed income items matching query.
func FilterItems(query string, items []model.DetailedIncomeItem) []model.DetailedIncomeItem {
	return filter(Normalize(query), items, MatchesItem)
}

// FilterEntries filters tagged entries, dispatching on each entry's kind.
func FilterEntries(query string, entries []model.Entry) []model.Entry {
	return filter(Normalize(query), entries, MatchesEntry)
}

// MatchesIncome reports whether c matches an already normalized query.
func MatchesIncome(c model.IncomeCategory, q string) bool {
	if contains(c.Name, q) || contains(c.Code, q) || contains(c.Description, q) {
		return true
	}
	for _, example := range c.Examples {
		if contains(example, q) {
			return true
		}
	}
	return contains(c.Notes, q)
}

// MatchesOccupation reports whether c matches an already normalized query.
func MatchesOccupation(c model.OccupationCategory, q string) bool {
	return contains(c.Name, q) ||
		contains(c.Code, q) ||
		contains(c.Description, q) ||
		contains(c.Category, q)
}

// MatchesItem reports whether item matches an already normalized query.
func MatchesItem(item model.DetailedIncomeItem, q string) bool {
	return contains(item.Name, q) ||
		contains(item.Code, q) ||
		contains(item.FeeCode, q) ||
		contains(item.Notes, q)
}

// MatchesEntry reports whether e matches an already normalized query.
// Entries whose payload does not match their kind never match.
func MatchesEntry(e model.Entry, q string) bool {
	switch {
	case e.Kind == model.KindIncome && e.Income != nil:
		return MatchesIncome(*e.Income, q)
	case e.Kind == model.KindOccupation && e.Occupation != nil:
		return MatchesOccupation(*e.Occupation, q)
	}
	return false
}

func filter[T any](q string, items []T, match func(T, string) bool) []T {
	out := make([]T, 0, len(items))
	if q == "" {
		return append(out, items...)
	}
	for _, item := range items {
		if match(item, q) {
			out = append(out, item)
		}
	}
	return out
}

// contains skips absent fields.
func contains(field, q string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(strings.ToLower(field), q)
}
