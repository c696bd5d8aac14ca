package cli

import (
	"bytes"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/taxref/internal/dataset"
	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/query"
	tuitest "github.com/Veraticus/taxref/internal/tui/testing"
	"github.com/Veraticus/taxref/internal/tui/viewmodel"
)

func renderTable(t *testing.T, table *Table) []string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, table.Render(&buf))
	return strings.Split(strings.TrimRight(tuitest.StripANSI(buf.String()), "\n"), "\n")
}

func TestTableAlignsWideText(t *testing.T) {
	table := NewTable("代碼", "名稱", "居住者")
	table.Append("50", "薪資所得", "5%")
	table.Append("9B", "執行業務所得稿費、演講費等", "10%")

	lines := renderTable(t, table)
	require.Len(t, lines, 4)

	assert.True(t, strings.HasPrefix(lines[1], "─"))
	col := strings.Index(lines[2], "5%")
	require.Positive(t, col)

	// The rate column starts at the same cell offset on every row.
	offset := runewidth.StringWidth(lines[2][:col])
	assert.Equal(t, offset, runewidth.StringWidth(lines[3][:strings.Index(lines[3], "10%")]))
	assert.Equal(t, offset, runewidth.StringWidth(lines[0][:strings.Index(lines[0], "居住者")]))
}

func TestTableTruncatesAndPads(t *testing.T) {
	table := NewTable("代碼", "名稱").SetMaxWidth(6)
	table.Append("0", "非屬扣繳範圍之所得")
	table.Append("50")

	lines := renderTable(t, table)
	require.Len(t, lines, 4)
	assert.Equal(t, 2, table.Len())
	assert.Contains(t, lines[2], "…")
	assert.LessOrEqual(t, runewidth.StringWidth(lines[2]), 6+columnGap+6)
	assert.Equal(t, "50", lines[3], "trailing blanks are trimmed")
}

func TestTableCollapsesWhitespace(t *testing.T) {
	table := NewTable("說明")
	table.Append("第一行\n第二行")

	lines := renderTable(t, table)
	assert.Equal(t, "第一行 第二行", lines[2])
}

func TestWriteJSON(t *testing.T) {
	results := query.NewEngine(dataset.Income(), dataset.Occupations()).Search("9B")

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, SearchOutput{
		Query:       "9B",
		Income:      results.Income,
		Occupations: results.Occupations,
	}))

	assert.Contains(t, buf.String(), "執行業務所得稿費、演講費等", "CJK is not escaped")
	assert.Contains(t, buf.String(), "\n  \"income\"")

	var decoded SearchOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "9B", decoded.Query)
	require.NotEmpty(t, decoded.Income)
	assert.Equal(t, "9B", decoded.Income[0].Code)
	assert.NotNil(t, decoded.Occupations)
}

func findIncome(t *testing.T, code string) model.IncomeCategory {
	t.Helper()
	for _, c := range dataset.Income() {
		if c.Code == code {
			return c
		}
	}
	t.Fatalf("income %s not found", code)
	return model.IncomeCategory{}
}

func TestRenderDetailIncome(t *testing.T) {
	entry := model.IncomeEntry(findIncome(t, "9B"))
	view := viewmodel.BuildDetail(entry, dataset.FeeCategories(), dataset.DetailedItems())

	var buf bytes.Buffer
	require.NoError(t, RenderDetail(&buf, view))
	out := tuitest.StripANSI(buf.String())

	assert.True(t, tuitest.ContainsInOrder(out,
		"執行業務所得稿費、演講費等",
		"代碼: 9B",
		viewmodel.LabelTaxRate,
		viewmodel.LabelHealth,
		"98: ",
		viewmodel.ResidentNote,
		dataset.Source,
	), out)
	assert.Contains(t, out, "  1. ")
}

func TestRenderDetailOccupation(t *testing.T) {
	var occupation model.OccupationCategory
	for _, c := range dataset.Occupations() {
		if c.Code == "30" {
			occupation = c
		}
	}
	view := viewmodel.BuildDetail(model.OccupationEntry(occupation), dataset.FeeCategories(), dataset.DetailedItems())

	var buf bytes.Buffer
	require.NoError(t, RenderDetail(&buf, view))
	out := tuitest.StripANSI(buf.String())

	assert.Contains(t, out, "內科醫師")
	assert.Contains(t, out, "代碼: 30")
	assert.NotContains(t, out, viewmodel.LabelHealth)
	assert.NotContains(t, out, viewmodel.LabelExamples)
}

func TestFormatters(t *testing.T) {
	assert.Contains(t, tuitest.StripANSI(FormatSuccess("done")), "✓ done")
	assert.Contains(t, tuitest.StripANSI(FormatError("bad")), "✗ bad")
	assert.Contains(t, tuitest.StripANSI(toneWarning.render("careful")), toneWarning.icon+" careful")
	assert.Contains(t, tuitest.StripANSI(FormatTitle("所得類別")), "📘 所得類別")

	box := tuitest.StripANSI(RenderBox("Title", "content"))
	assert.True(t, tuitest.ContainsInOrder(box, "Title", "content"))
	assert.Contains(t, box, "╭")
}

func TestProgressUpdater(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, 10, "Exporting")
	update := ProgressUpdater(bar)

	update(4, 10)
	assert.Equal(t, int64(4), bar.State().CurrentNum)

	update(10, 10)
	assert.Equal(t, int64(10), bar.State().CurrentNum)

	assert.NotPanics(t, func() { ProgressUpdater(nil)(1, 2) })
}
