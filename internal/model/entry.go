package model

// Entry is a category entry tagged with the collection it came from.
// Exactly one of Income or Occupation is set, matching Kind.
type Entry struct {
	Income     *IncomeCategory
	Occupation *OccupationCategory
	Kind       Kind
}

// IncomeEntry wraps an income category.
func IncomeEntry(c IncomeCategory) Entry {
	return Entry{Kind: KindIncome, Income: &c}
}

// OccupationEntry wraps an occupation category.
func OccupationEntry(c OccupationCategory) Entry {
	return Entry{Kind: KindOccupation, Occupation: &c}
}

// Valid reports whether the payload matches the kind tag.
func (e Entry) Valid() bool {
	switch e.Kind {
	case KindIncome:
		return e.Income != nil && e.Occupation == nil
	case KindOccupation:
		return e.Occupation != nil && e.Income == nil
	default:
		return false
	}
}

// Code returns the entry code.
func (e Entry) Code() string {
	switch {
	case e.Kind == KindIncome && e.Income != nil:
		return e.Income.Code
	case e.Kind == KindOccupation && e.Occupation != nil:
		return e.Occupation.Code
	}
	return ""
}

// Name returns the display name.
func (e Entry) Name() string {
	switch {
	case e.Kind == KindIncome && e.Income != nil:
		return e.Income.Name
	case e.Kind == KindOccupation && e.Occupation != nil:
		return e.Occupation.Name
	}
	return ""
}

// TaxRate returns the withholding rates.
func (e Entry) TaxRate() TaxRate {
	switch {
	case e.Kind == KindIncome && e.Income != nil:
		return e.Income.TaxRate
	case e.Kind == KindOccupation && e.Occupation != nil:
		return e.Occupation.TaxRate
	}
	return TaxRate{}
}

// Description returns the optional description.
func (e Entry) Description() string {
	switch {
	case e.Kind == KindIncome && e.Income != nil:
		return e.Income.Description
	case e.Kind == KindOccupation && e.Occupation != nil:
		return e.Occupation.Description
	}
	return ""
}
