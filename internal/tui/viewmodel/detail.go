package viewmodel

import (
	"strings"

	"github.com/Veraticus/taxref/internal/dataset"
	"github.com/Veraticus/taxref/internal/model"
)

// SectionKind identifies a block of the detail view.
type SectionKind int

const (
	// SectionHeader holds the name and code. Always present.
	SectionHeader SectionKind = iota
	// SectionIdentity holds the format code (income) or category (occupation).
	SectionIdentity
	// SectionDescription holds the free-text description.
	SectionDescription
	// SectionTaxRate holds both withholding rates. Always present.
	SectionTaxRate
	// SectionTaxInfo holds the exemption limit and withholding threshold.
	SectionTaxInfo
	// SectionHealthInsurance holds the supplementary health insurance data.
	SectionHealthInsurance
	// SectionExamples lists the applicable examples.
	SectionExamples
	// SectionNotes holds the cautionary notes.
	SectionNotes
	// SectionRelated lists detailed income items filed under the same code.
	SectionRelated
	// SectionFooter holds the residency definitions and data source. Always present.
	SectionFooter
)

// Detail view labels.
const (
	LabelCode           = "代碼"
	LabelFormatCode     = "格式代碼"
	LabelCategory       = "類別"
	LabelDescription    = "說明"
	LabelTaxRate        = "扣繳稅率"
	LabelResident       = "居住者"
	LabelNonResident    = "非居住者"
	LabelTaxInfo        = "稅務資訊"
	LabelExemption      = "免稅額度"
	LabelThreshold      = "起扣標準"
	LabelHealth         = "補充健保資訊"
	LabelHealthCode     = "代碼"
	LabelHealthName     = "名稱"
	LabelFeeCategory    = "費用別"
	LabelExamples       = "適用範例"
	LabelNotes          = "注意事項"
	LabelRelated        = "相關項目"
	ResidentNote        = "* 居住者：每年1月1日起算至12月31日止，在台居留滿183天者"
	NonResidentNote     = "* 非居住者：每年1月1日起算至12月31日止，在台未居留滿183天者"
	sourcePrefix        = "資料來源："
	feeCodeSeparator    = "/"
	relatedItemFeeLabel = "費用代碼"
)

// Field is a labelled value.
type Field struct {
	Label string
	Value string
}

// Section is one block of the detail view.
// Fields are rendered as label/value pairs, Items as an ordered list and
// Text as a paragraph. A section uses whichever of them it needs.
type Section struct {
	Title  string
	Text   string
	Fields []Field
	Items  []string
	Kind   SectionKind
}

// DetailView is the full detail rendering of one entry.
type DetailView struct {
	Name     string
	Code     string
	Sections []Section
	Kind     model.Kind
}

// Section returns the section of the given kind.
func (d DetailView) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}

// Has reports whether the view contains a section of the given kind.
func (d DetailView) Has(kind SectionKind) bool {
	_, ok := d.Section(kind)
	return ok
}

// Kinds returns the section kinds in display order.
func (d DetailView) Kinds() []SectionKind {
	kinds := make([]SectionKind, len(d.Sections))
	for i, s := range d.Sections {
		kinds[i] = s.Kind
	}
	return kinds
}

// BuildDetail renders entry into sections. Which sections appear is decided
// by the entry's kind tag first and field presence second; occupation
// entries never carry the income-only sections.
func BuildDetail(entry model.Entry, fees []model.FeeCategory, items []model.DetailedIncomeItem) DetailView {
	view := DetailView{
		Kind: entry.Kind,
		Name: entry.Name(),
		Code: entry.Code(),
	}
	if !entry.Valid() {
		return view
	}

	view.add(Section{
		Kind:   SectionHeader,
		Title:  view.Name,
		Fields: []Field{{Label: LabelCode, Value: view.Code}},
	})

	switch entry.Kind {
	case model.KindIncome:
		c := entry.Income
		if c.FormatCode != "" {
			view.add(Section{
				Kind:   SectionIdentity,
				Fields: []Field{{Label: LabelFormatCode, Value: c.FormatCode}},
			})
		}
	case model.KindOccupation:
		c := entry.Occupation
		if c.Category != "" {
			view.add(Section{
				Kind:   SectionIdentity,
				Fields: []Field{{Label: LabelCategory, Value: c.Category}},
			})
		}
	}

	if desc := entry.Description(); desc != "" {
		view.add(Section{Kind: SectionDescription, Title: LabelDescription, Text: desc})
	}

	rate := entry.TaxRate()
	view.add(Section{
		Kind:  SectionTaxRate,
		Title: LabelTaxRate,
		Fields: []Field{
			{Label: LabelResident, Value: rate.Resident},
			{Label: LabelNonResident, Value: rate.NonResident},
		},
	})

	if entry.Kind == model.KindIncome {
		view.addIncomeSections(*entry.Income, fees, items)
	}

	view.add(Section{
		Kind:  SectionFooter,
		Items: []string{ResidentNote, NonResidentNote, sourcePrefix + dataset.Source},
	})

	return view
}

func (d *DetailView) addIncomeSections(c model.IncomeCategory, fees []model.FeeCategory, items []model.DetailedIncomeItem) {
	if c.ExemptionLimit != "" || c.WithholdingThreshold != "" {
		var fields []Field
		if c.ExemptionLimit != "" {
			fields = append(fields, Field{Label: LabelExemption, Value: c.ExemptionLimit})
		}
		if c.WithholdingThreshold != "" {
			fields = append(fields, Field{Label: LabelThreshold, Value: c.WithholdingThreshold})
		}
		d.add(Section{Kind: SectionTaxInfo, Title: LabelTaxInfo, Fields: fields})
	}

	if c.HealthInsuranceCode != "" {
		fields := []Field{
			{Label: LabelHealthCode, Value: c.HealthInsuranceCode},
			{Label: LabelHealthName, Value: c.HealthInsuranceName},
		}
		if c.FeeCategory != "" {
			fields = append(fields, Field{Label: LabelFeeCategory, Value: c.FeeCategory})
		}
		d.add(Section{
			Kind:   SectionHealthInsurance,
			Title:  LabelHealth,
			Fields: fields,
			Items:  resolveFees(c.FeeCategory, fees),
		})
	}

	if len(c.Examples) > 0 {
		d.add(Section{
			Kind:  SectionExamples,
			Title: LabelExamples,
			Items: append([]string(nil), c.Examples...),
		})
	}

	if c.Notes != "" {
		d.add(Section{Kind: SectionNotes, Title: LabelNotes, Text: c.Notes})
	}

	if related := relatedItems(c.Code, items); len(related) > 0 {
		d.add(Section{Kind: SectionRelated, Title: LabelRelated, Items: related})
	}
}

func (d *DetailView) add(s Section) {
	d.Sections = append(d.Sections, s)
}

// resolveFees describes each fee code in feeCategory that the table knows.
func resolveFees(feeCategory string, fees []model.FeeCategory) []string {
	if feeCategory == "" {
		return nil
	}
	var out []string
	for _, code := range strings.Split(feeCategory, feeCodeSeparator) {
		code = strings.TrimSpace(code)
		for _, fee := range fees {
			if fee.Code == code {
				out = append(out, fee.Code+": "+fee.Description)
				break
			}
		}
	}
	return out
}

func relatedItems(code string, items []model.DetailedIncomeItem) []string {
	var out []string
	for _, item := range items {
		if item.Code != code {
			continue
		}
		line := item.Name + " (" + relatedItemFeeLabel + " " + item.FeeCode + ")"
		if item.Notes != "" {
			line += " " + item.Notes
		}
		out = append(out, line)
	}
	return out
}
