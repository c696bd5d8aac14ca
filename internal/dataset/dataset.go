// Package dataset holds the compiled-in withholding reference data.
//
// The collections are built once at package initialization and never change.
// Every accessor returns a deep copy, so callers may freely modify what they
// receive without affecting other readers.
package dataset

import (
	"slices"

	"github.com/Veraticus/taxref/internal/model"
)

// Source is the attribution shown alongside the data.
const Source = "財政部財政資訊中心、各類所得扣繳暨免扣繳項目參考"

// Income returns the income categories in display order.
func Income() []model.IncomeCategory {
	out := make([]model.IncomeCategory, len(incomeCategories))
	for i, c := range incomeCategories {
		c.Examples = slices.Clone(c.Examples)
		out[i] = c
	}
	return out
}

// Occupations returns the occupation categories in display order.
func Occupations() []model.OccupationCategory {
	return slices.Clone(occupationCategories)
}

// FeeCategories returns the supplementary fee code table.
func FeeCategories() []model.FeeCategory {
	return slices.Clone(feeCategories)
}

// DetailedItems returns the detailed income item samples.
func DetailedItems() []model.DetailedIncomeItem {
	return slices.Clone(detailedIncomeItems)
}

// Entries returns every entry of the given kind wrapped with its kind tag.
func Entries(kind model.Kind) []model.Entry {
	switch kind {
	case model.KindIncome:
		income := Income()
		out := make([]model.Entry, len(income))
		for i, c := range income {
			out[i] = model.IncomeEntry(c)
		}
		return out
	case model.KindOccupation:
		occupations := Occupations()
		out := make([]model.Entry, len(occupations))
		for i, c := range occupations {
			out[i] = model.OccupationEntry(c)
		}
		return out
	default:
		return nil
	}
}
