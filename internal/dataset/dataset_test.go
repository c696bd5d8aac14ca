package dataset

import (
	"testing"

	"github.com/Veraticus/taxref/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionsInvariants(t *testing.T) {
	income := Income()
	occupations := Occupations()

	require.Len(t, income, 10)
	require.Len(t, occupations, 62)

	seen := make(map[string]bool)
	for _, c := range income {
		assert.NotEmpty(t, c.Code)
		assert.NotEmpty(t, c.Name, "code %s", c.Code)
		assert.NotEmpty(t, c.TaxRate.Resident, "code %s", c.Code)
		assert.NotEmpty(t, c.TaxRate.NonResident, "code %s", c.Code)
		assert.False(t, seen[c.Code], "duplicate income code %s", c.Code)
		seen[c.Code] = true
	}

	seen = make(map[string]bool)
	for _, c := range occupations {
		assert.NotEmpty(t, c.Code)
		assert.NotEmpty(t, c.Name, "code %s", c.Code)
		assert.NotEmpty(t, c.TaxRate.Resident, "code %s", c.Code)
		assert.NotEmpty(t, c.TaxRate.NonResident, "code %s", c.Code)
		assert.False(t, seen[c.Code], "duplicate occupation code %s", c.Code)
		seen[c.Code] = true
	}
}

func TestIncomeOrderAndCodes(t *testing.T) {
	var codes []string
	for _, c := range Income() {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, []string{"0", "50", "9A", "9B", "51", "53", "91", "92", "93", "95"}, codes)
}

func TestAccessorsReturnCopies(t *testing.T) {
	income := Income()
	income[0].Name = "changed"
	income[0].Examples[0] = "changed"

	occupations := Occupations()
	occupations[0].Name = "changed"

	fees := FeeCategories()
	fees[0].Description = "changed"

	fresh := Income()
	assert.Equal(t, "免列所得", fresh[0].Name)
	assert.Equal(t, "導師費、主管加給(編制內主管)", fresh[0].Examples[0])
	assert.Equal(t, "律師", Occupations()[0].Name)
	assert.NotEqual(t, "changed", FeeCategories()[0].Description)
}

func TestEntriesCarryKind(t *testing.T) {
	for _, e := range Entries(model.KindIncome) {
		assert.Equal(t, model.KindIncome, e.Kind)
		assert.True(t, e.Valid())
	}
	for _, e := range Entries(model.KindOccupation) {
		assert.Equal(t, model.KindOccupation, e.Kind)
		assert.True(t, e.Valid())
	}
	assert.Nil(t, Entries(model.Kind("fees")))
}

func TestReferenceTables(t *testing.T) {
	fees := FeeCategories()
	require.Len(t, fees, 2)
	assert.Equal(t, "98", fees[0].Code)
	assert.Equal(t, "99", fees[1].Code)

	items := DetailedItems()
	require.Len(t, items, 5)
	assert.True(t, items[2].HealthInsurance)
	assert.Equal(t, "藝術，不以執行業務所得投保", items[4].Notes)

	known := make(map[string]bool)
	for _, c := range Income() {
		known[c.Code] = true
	}
	for _, item := range items {
		assert.True(t, known[item.Code], "item %d references unknown income code %s", item.ID, item.Code)
	}
}
