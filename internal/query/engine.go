package query

import (
	"github.com/Veraticus/taxref/internal/model"
)

// Results holds the filtered view of both collections for one query.
type Results struct {
	Query       string
	Income      []model.IncomeCategory
	Occupations []model.OccupationCategory
}

// Count returns the number of matches for kind.
func (r Results) Count(kind model.Kind) int {
	switch kind {
	case model.KindIncome:
		return len(r.Income)
	case model.KindOccupation:
		return len(r.Occupations)
	default:
		return 0
	}
}

// Entries returns the matches for kind wrapped with their kind tag.
func (r Results) Entries(kind model.Kind) []model.Entry {
	switch kind {
	case model.KindIncome:
		out := make([]model.Entry, len(r.Income))
		for i, c := range r.Income {
			out[i] = model.IncomeEntry(c)
		}
		return out
	case model.KindOccupation:
		out := make([]model.Entry, len(r.Occupations))
		for i, c := range r.Occupations {
			out[i] = model.OccupationEntry(c)
		}
		return out
	default:
		return nil
	}
}

// Empty reports whether neither collection has a match.
func (r Results) Empty() bool {
	return len(r.Income) == 0 && len(r.Occupations) == 0
}

// Engine searches a fixed pair of collections.
// It remembers the last normalized query so repeated keystrokes that do not
// change the query skip the scan. Not safe for concurrent use.
type Engine struct {
	last        *Results
	income      []model.IncomeCategory
	occupations []model.OccupationCategory
}

// NewEngine creates an engine over the given collections.
func NewEngine(income []model.IncomeCategory, occupations []model.OccupationCategory) *Engine {
	return &Engine{
		income:      income,
		occupations: occupations,
	}
}

// Total returns the size of the unfiltered collection for kind.
func (e *Engine) Total(kind model.Kind) int {
	switch kind {
	case model.KindIncome:
		return len(e.income)
	case model.KindOccupation:
		return len(e.occupations)
	default:
		return 0
	}
}

// Search filters both collections by the raw query.
func (e *Engine) Search(raw string) Results {
	q := Normalize(raw)
	if e.last != nil && e.last.Query == q {
		return e.last.clone()
	}

	results := Results{
		Query:       q,
		Income:      filter(q, e.income, MatchesIncome),
		Occupations: filter(q, e.occupations, MatchesOccupation),
	}
	e.last = &results
	return results.clone()
}

func (r Results) clone() Results {
	return Results{
		Query:       r.Query,
		Income:      append(make([]model.IncomeCategory, 0, len(r.Income)), r.Income...),
		Occupations: append(make([]model.OccupationCategory, 0, len(r.Occupations)), r.Occupations...),
	}
}
