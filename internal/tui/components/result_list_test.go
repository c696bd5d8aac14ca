package components

import (
	"testing"

	"github.com/Veraticus/taxref/internal/dataset"
	"github.com/Veraticus/taxref/internal/model"
	"github.com/Veraticus/taxref/internal/query"
	tuitest "github.com/Veraticus/taxref/internal/tui/testing"
	"github.com/Veraticus/taxref/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOccupationList(t *testing.T, q string) ResultListModel {
	t.Helper()
	all := dataset.Entries(model.KindOccupation)
	list := NewResultList(model.KindOccupation, themes.Default)
	list.Resize(60, 30)
	list.SetEntries(query.FilterEntries(q, all), q, len(all))
	return list
}

func TestResultListNavigation(t *testing.T) {
	list := newOccupationList(t, "")
	require.Equal(t, 62, list.Len())

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"down", []tea.KeyMsg{tuitest.KeyPress("j"), tuitest.KeyDown()}, 2},
		{"up clamps at top", []tea.KeyMsg{tuitest.KeyPress("k"), tuitest.KeyUp()}, 0},
		{"bottom", []tea.KeyMsg{tuitest.KeyPress("G")}, 61},
		{"bottom then top", []tea.KeyMsg{tuitest.KeyPress("G"), tuitest.KeyPress("g")}, 0},
		{"down clamps at bottom", []tea.KeyMsg{tuitest.KeyPress("G"), tuitest.KeyPress("j")}, 61},
		{"page down", []tea.KeyMsg{tuitest.KeyPgDown()}, 4},
		{"page down and up", []tea.KeyMsg{tuitest.KeyPgDown(), tuitest.KeyPgUp()}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := list
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			assert.Equal(t, tt.want, m.Cursor())
		})
	}
}

func TestResultListEnterSelectsTaggedEntry(t *testing.T) {
	list := newOccupationList(t, "醫師")
	list, _ = list.Update(tuitest.KeyPress("j"))

	_, cmd := list.Update(tuitest.KeyEnter())
	msgs := tuitest.Collect(cmd)

	require.Len(t, msgs, 1)
	selected, ok := msgs[0].(EntrySelectedMsg)
	require.True(t, ok)
	assert.Equal(t, 1, selected.Index)
	assert.Equal(t, model.KindOccupation, selected.Entry.Kind)
	assert.Equal(t, "31", selected.Entry.Code())
}

func TestResultListSelectRelative(t *testing.T) {
	list := newOccupationList(t, "醫師")

	_, ok := list.SelectRelative(-1)
	assert.False(t, ok)
	assert.Equal(t, 0, list.Cursor())

	entry, ok := list.SelectRelative(1)
	require.True(t, ok)
	assert.Equal(t, "31", entry.Code())
	assert.Equal(t, 1, list.Cursor())

	list.SelectRelative(list.Len() - 2)
	_, ok = list.SelectRelative(1)
	assert.False(t, ok)
	assert.Equal(t, list.Len()-1, list.Cursor())
}

func TestResultListSetEntriesClampsCursor(t *testing.T) {
	list := newOccupationList(t, "")
	list, _ = list.Update(tuitest.KeyPress("G"))

	matches := query.FilterEntries("醫師", dataset.Entries(model.KindOccupation))
	list.SetEntries(matches, "醫師", 62)
	assert.Equal(t, len(matches)-1, list.Cursor())

	list.SetEntries([]model.Entry{}, "xyz", 62)
	assert.Equal(t, 0, list.Cursor())
	_, ok := list.Selected()
	assert.False(t, ok)

	_, cmd := list.Update(tuitest.KeyEnter())
	assert.Nil(t, cmd)
}

func TestResultListView(t *testing.T) {
	list := newOccupationList(t, "")
	view := tuitest.Plain(list.View())

	assert.Contains(t, view, "共 62 個職務類別")
	assert.True(t, tuitest.ContainsInOrder(view, "律師", "代碼: 10", "居住者: 10%", "非居住者: 20%"), view)
	assert.NotContains(t, view, "代碼: 97", "only the first window of cards is rendered")

	list, _ = list.Update(tuitest.KeyPress("G"))
	view = tuitest.Plain(list.View())
	assert.Contains(t, view, "代碼: 97")
	assert.NotContains(t, view, "代碼: 10")
}

func TestResultListViewFiltered(t *testing.T) {
	list := newOccupationList(t, "醫師")
	assert.Contains(t, tuitest.Plain(list.View()), "找到 15 個結果")

	empty := newOccupationList(t, "xyz123notfound")
	view := tuitest.Plain(empty.View())
	assert.Contains(t, view, "找到 0 個結果")
	assert.Contains(t, view, "找不到相關的職務類別")
	assert.Contains(t, view, "請嘗試使用不同的關鍵字或檢查拼寫")
}
