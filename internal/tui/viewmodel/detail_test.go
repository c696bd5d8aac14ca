package viewmodel

import (
	"testing"

	"github.com/Veraticus/taxref/internal/dataset"
	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/selection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryByCode(t *testing.T, kind model.Kind, code string) model.Entry {
	t.Helper()
	for _, e := range dataset.Entries(kind) {
		if e.Code() == code {
			return e
		}
	}
	t.Fatalf("no %s entry with code %q", kind, code)
	return model.Entry{}
}

func buildDetail(t *testing.T, kind model.Kind, code string) DetailView {
	t.Helper()
	return BuildDetail(entryByCode(t, kind, code), dataset.FeeCategories(), dataset.DetailedItems())
}

func fieldValue(t *testing.T, s Section, label string) string {
	t.Helper()
	for _, f := range s.Fields {
		if f.Label == label {
			return f.Value
		}
	}
	t.Fatalf("section %d has no field %q", s.Kind, label)
	return ""
}

func TestBuildDetailSectionGating(t *testing.T) {
	tests := []struct {
		name string
		kind model.Kind
		code string
		want []SectionKind
	}{
		{
			name: "income with every section",
			kind: model.KindIncome,
			code: "9B",
			want: []SectionKind{
				SectionHeader, SectionIdentity, SectionDescription, SectionTaxRate,
				SectionTaxInfo, SectionHealthInsurance, SectionExamples, SectionNotes,
				SectionRelated, SectionFooter,
			},
		},
		{
			name: "income without format code or health insurance",
			kind: model.KindIncome,
			code: "0",
			want: []SectionKind{
				SectionHeader, SectionDescription, SectionTaxRate,
				SectionExamples, SectionNotes, SectionFooter,
			},
		},
		{
			name: "occupation with category only",
			kind: model.KindOccupation,
			code: "30",
			want: []SectionKind{SectionHeader, SectionIdentity, SectionTaxRate, SectionFooter},
		},
		{
			name: "occupation with description",
			kind: model.KindOccupation,
			code: "24",
			want: []SectionKind{SectionHeader, SectionIdentity, SectionDescription, SectionTaxRate, SectionFooter},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := buildDetail(t, tt.kind, tt.code)
			assert.Equal(t, tt.want, view.Kinds())
			assert.Equal(t, tt.kind, view.Kind)
			assert.Equal(t, tt.code, view.Code)
		})
	}
}

func TestBuildDetailOccupationsNeverHaveIncomeSections(t *testing.T) {
	incomeOnly := []SectionKind{SectionTaxInfo, SectionHealthInsurance, SectionExamples, SectionNotes, SectionRelated}

	for _, e := range dataset.Entries(model.KindOccupation) {
		view := BuildDetail(e, dataset.FeeCategories(), dataset.DetailedItems())
		for _, kind := range incomeOnly {
			assert.False(t, view.Has(kind), "occupation %s has section %d", e.Code(), kind)
		}
	}
}

func TestBuildDetailIncomeContent(t *testing.T) {
	view := buildDetail(t, model.KindIncome, "9B")

	header, ok := view.Section(SectionHeader)
	require.True(t, ok)
	assert.Equal(t, "執行業務所得稿費、演講費等", header.Title)
	assert.Equal(t, "9B", fieldValue(t, header, LabelCode))

	identity, _ := view.Section(SectionIdentity)
	assert.Equal(t, "9B", fieldValue(t, identity, LabelFormatCode))

	rate, _ := view.Section(SectionTaxRate)
	assert.Equal(t, "10% (扣繳稅額不超過2,000元免予扣繳)", fieldValue(t, rate, LabelResident))
	assert.Equal(t, "20% (每次給付金額不超過5,000元免予扣繳)", fieldValue(t, rate, LabelNonResident))

	info, _ := view.Section(SectionTaxInfo)
	assert.Equal(t, "18萬元", fieldValue(t, info, LabelExemption))
	assert.Equal(t, "20,010元", fieldValue(t, info, LabelThreshold))

	health, _ := view.Section(SectionHealthInsurance)
	assert.Equal(t, "65", fieldValue(t, health, LabelHealthCode))
	assert.Equal(t, "執行業務收入", fieldValue(t, health, LabelHealthName))
	assert.Equal(t, "98/99", fieldValue(t, health, LabelFeeCategory))
	require.Len(t, health.Items, 2)
	assert.Contains(t, health.Items[0], "98: 非自行出版")
	assert.Contains(t, health.Items[1], "99: 自行出版")

	examples, _ := view.Section(SectionExamples)
	assert.Len(t, examples.Items, 5)
	assert.Equal(t, "論文指導費、口試費", examples.Items[2])

	related, _ := view.Section(SectionRelated)
	require.Len(t, related.Items, 1)
	assert.Contains(t, related.Items[0], "口譯費(屬演講性質)")

	footer, _ := view.Section(SectionFooter)
	assert.Equal(t, []string{ResidentNote, NonResidentNote, "資料來源：" + dataset.Source}, footer.Items)
}

func TestBuildDetailThresholdOnly(t *testing.T) {
	view := buildDetail(t, model.KindIncome, "50")

	info, ok := view.Section(SectionTaxInfo)
	require.True(t, ok)
	require.Len(t, info.Fields, 1)
	assert.Equal(t, LabelThreshold, info.Fields[0].Label)

	health, _ := view.Section(SectionHealthInsurance)
	assert.Len(t, health.Fields, 2, "no fee category field without a fee category")
	assert.Empty(t, health.Items)

	related, _ := view.Section(SectionRelated)
	assert.Len(t, related.Items, 2)
}

func TestBuildDetailUnknownFeeCodes(t *testing.T) {
	entry := model.IncomeEntry(model.IncomeCategory{
		Code:                "X",
		Name:                "test",
		HealthInsuranceCode: "65",
		HealthInsuranceName: "執行業務收入",
		FeeCategory:         "97/99",
	})

	view := BuildDetail(entry, dataset.FeeCategories(), nil)
	health, ok := view.Section(SectionHealthInsurance)
	require.True(t, ok)
	require.Len(t, health.Items, 1)
	assert.Contains(t, health.Items[0], "99: ")
	assert.False(t, view.Has(SectionRelated))
}

func TestBuildDetailUsesKindTag(t *testing.T) {
	// A mistagged entry renders nothing rather than guessing from fields.
	entry := model.Entry{Kind: model.KindOccupation, Income: &model.IncomeCategory{Code: "50", Name: "薪資所得"}}

	view := BuildDetail(entry, nil, nil)
	assert.Empty(t, view.Sections)
}

func TestRetargetRendersOccupationOnly(t *testing.T) {
	var s selection.State
	income := entryByCode(t, model.KindIncome, "50")
	occupation := entryByCode(t, model.KindOccupation, "30")

	s.Select(&income)
	s.Select(&occupation)

	current, ok := s.Current()
	require.True(t, ok)
	view := BuildDetail(current, dataset.FeeCategories(), dataset.DetailedItems())

	assert.Equal(t, model.KindOccupation, view.Kind)
	assert.Equal(t, "30", view.Code)
	assert.Equal(t, "內科醫師", view.Name)
	assert.Equal(t, []SectionKind{SectionHeader, SectionIdentity, SectionTaxRate, SectionFooter}, view.Kinds())

	identity, _ := view.Section(SectionIdentity)
	assert.Equal(t, "醫療專業", fieldValue(t, identity, LabelCategory))
}
