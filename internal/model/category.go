package model

// Kind indicates which collection a category entry belongs to.
type Kind string

const (
	// KindIncome represents entries of the income category collection (所得類別).
	KindIncome Kind = "income"
	// KindOccupation represents entries of the occupation category collection (職務類別).
	KindOccupation Kind = "occupation"
)

// Kinds lists every kind in display order.
var Kinds = []Kind{KindIncome, KindOccupation}

// ParseKind converts user input into a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindIncome:
		return KindIncome, true
	case KindOccupation:
		return KindOccupation, true
	default:
		return "", false
	}
}

// Label returns the display name of the collection.
func (k Kind) Label() string {
	switch k {
	case KindIncome:
		return "所得類別"
	case KindOccupation:
		return "職務類別"
	default:
		return string(k)
	}
}

// TaxRate describes the withholding rule for residents and non-residents.
// Both values are free-form text and are never evaluated.
type TaxRate struct {
	Resident    string `json:"resident"`
	NonResident string `json:"nonResident"`
}

// IncomeCategory is one entry of the income category collection.
// Empty optional strings mean the field is absent.
type IncomeCategory struct {
	TaxRate              TaxRate  `json:"taxRate"`
	Code                 string   `json:"code"`
	Name                 string   `json:"name"`
	FormatCode           string   `json:"formatCode,omitempty"`
	Description          string   `json:"description,omitempty"`
	HealthInsuranceCode  string   `json:"healthInsuranceCode,omitempty"`
	HealthInsuranceName  string   `json:"healthInsuranceName,omitempty"`
	FeeCategory          string   `json:"feeCategory,omitempty"`
	Notes                string   `json:"notes,omitempty"`
	ExemptionLimit       string   `json:"exemptionLimit,omitempty"`
	WithholdingThreshold string   `json:"withholdingThreshold,omitempty"`
	Examples             []string `json:"examples,omitempty"`
}

// OccupationCategory is one entry of the occupation category collection.
type OccupationCategory struct {
	TaxRate     TaxRate `json:"taxRate"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// FeeCategory describes a supplementary fee code such as 98 or 99.
type FeeCategory struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// DetailedIncomeItem maps a concrete payment item onto an income code.
type DetailedIncomeItem struct {
	Name            string `json:"name"`
	Code            string `json:"code"`
	FormatCode      string `json:"formatCode"`
	FeeCode         string `json:"feeCode"`
	Notes           string `json:"notes,omitempty"`
	ID              int    `json:"id"`
	HealthInsurance bool   `json:"healthInsurance"`
}
