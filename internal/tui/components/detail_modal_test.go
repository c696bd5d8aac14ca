package components

import (
	"errors"
	"testing"

	"github.com/Veraticus/taxref/internal/dataset"
	"github.com/Veraticus/taxref/internal/model"
	tuitest "github.com/Veraticus/taxref/internal/tui/testing"
	"github.com/Veraticus/taxref/internal/tui/themes"
	"github.com/Veraticus/taxref/internal/tui/viewmodel"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(t *testing.T, kind model.Kind, code string) model.Entry {
	t.Helper()
	for _, e := range dataset.Entries(kind) {
		if e.Code() == code {
			return e
		}
	}
	t.Fatalf("no %s entry with code %q", kind, code)
	return model.Entry{}
}

func newModal(t *testing.T, kind model.Kind, code string) DetailModalModel {
	t.Helper()
	m := NewDetailModal(themes.Default, dataset.FeeCategories(), dataset.DetailedItems())
	m.Resize(100, 60)
	m.SetEntry(entry(t, kind, code))
	return m
}

func TestDetailModalKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want tea.Msg
	}{
		{"esc closes", tuitest.KeyEsc(), CloseDetailMsg{}},
		{"q closes", tuitest.KeyPress("q"), CloseDetailMsg{}},
		{"n moves forward", tuitest.KeyPress("n"), NavigateDetailMsg{Delta: 1}},
		{"p moves back", tuitest.KeyPress("p"), NavigateDetailMsg{Delta: -1}},
		{"help", tuitest.KeyPress("?"), ShowHelpMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModal(t, model.KindIncome, "50")
			_, cmd := m.Update(tt.key)
			assert.Equal(t, []tea.Msg{tt.want}, tuitest.Collect(cmd))
		})
	}
}

func TestDetailModalCopy(t *testing.T) {
	var copied string
	m := newModal(t, model.KindIncome, "9B").WithCopier(func(s string) error {
		copied = s
		return nil
	})

	m, cmd := m.Update(tuitest.KeyPress("y"))
	msgs := tuitest.Collect(cmd)
	require.Len(t, msgs, 1)
	assert.Equal(t, CodeCopiedMsg{Code: "9B"}, msgs[0])
	assert.Equal(t, "9B", copied)

	m, _ = m.Update(msgs[0])
	assert.Contains(t, tuitest.StripANSI(m.View()), "已複製代碼 9B")
}

func TestDetailModalCopyFailure(t *testing.T) {
	m := newModal(t, model.KindIncome, "9B").WithCopier(func(string) error {
		return errors.New("no clipboard")
	})

	_, cmd := m.Update(tuitest.KeyPress("y"))
	msgs := tuitest.Collect(cmd)
	require.Len(t, msgs, 1)

	m, _ = m.Update(msgs[0])
	assert.Contains(t, tuitest.StripANSI(m.View()), "無法複製: no clipboard")
}

func TestDetailModalViewIncome(t *testing.T) {
	m := newModal(t, model.KindIncome, "9B")
	view := tuitest.Plain(m.View())

	assert.True(t, tuitest.ContainsInOrder(view,
		"執行業務所得稿費、演講費等",
		"代碼: 9B",
		"格式代碼: 9B",
		"說明",
		"扣繳稅率",
		"稅務資訊",
		"補充健保資訊",
	), view)
}

func TestDetailModalRetargetToOccupation(t *testing.T) {
	m := newModal(t, model.KindIncome, "50")
	m.SetEntry(entry(t, model.KindOccupation, "30"))

	assert.Equal(t, model.KindOccupation, m.Detail().Kind)
	content := tuitest.Plain(RenderDetail(m.Detail(), themes.Default, 100))

	assert.Contains(t, content, "內科醫師")
	assert.Contains(t, content, "類別: 醫療專業")
	for _, label := range []string{
		viewmodel.LabelFormatCode, viewmodel.LabelTaxInfo, viewmodel.LabelHealth,
		viewmodel.LabelExamples, viewmodel.LabelNotes, viewmodel.LabelRelated,
	} {
		assert.NotContains(t, content, label)
	}
}

func TestRenderDetailFullIncome(t *testing.T) {
	d := viewmodel.BuildDetail(entry(t, model.KindIncome, "9B"), dataset.FeeCategories(), dataset.DetailedItems())
	content := tuitest.Plain(RenderDetail(d, themes.Default, 200))

	assert.True(t, tuitest.ContainsInOrder(content,
		"免稅額度: 18萬元",
		"起扣標準: 20,010元",
		"費用別: 98/99",
		"98: 非自行出版",
		"適用範例",
		"1. 專題演講鐘點費",
		"5. 版稅",
		"注意事項",
		"相關項目",
		"口譯費(屬演講性質)",
		"居住者：每年1月1日起算",
		"資料來源：財政部財政資訊中心",
	), content)
}
