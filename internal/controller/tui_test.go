package controller

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/lintgate/fnlen/internal/model"
)

func TestTUI_DisplayReport_PlainEvenOnTTY(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	report := m.RunReport{
		MaxLines: 120,
		Violations: []m.Violation{
			{File: "src/big.ts", Line: 10, Name: "bigOne", Span: 131},
		},
	}

	require.NoError(t, ui.DisplayReport(report))

	assert.Contains(t, buf.String(), "❌ ERROR: src/big.ts:10 - Function 'bigOne' has 131 lines (exceeds limit of 120)")
}

func TestTUI_DisplayFunctions_EmptyAndShortLists(t *testing.T) {
	t.Run("no functions prints a notice", func(t *testing.T) {
		var buf bytes.Buffer
		ui := NewTUI(&buf)

		require.NoError(t, ui.DisplayFunctions([]m.FileScan{{File: "src/empty.ts"}}, 120))
		assert.Contains(t, buf.String(), "No functions found")
	})

	t.Run("short list falls back to the plain table", func(t *testing.T) {
		var buf bytes.Buffer
		ui := NewTUI(&buf)

		scans := []m.FileScan{
			{
				File: "src/a.ts",
				Functions: []m.Function{
					{Candidate: m.Candidate{Line: 1, Name: "short"}, Span: 5},
				},
			},
		}

		require.NoError(t, ui.DisplayFunctions(scans, 120))
		assert.Contains(t, buf.String(), "short")
	})
}

func TestTUI_DisplaySavedReport_ShortListIsPlain(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	report := m.RunReport{
		MaxLines: 120,
		Violations: []m.Violation{
			{File: "src/big.ts", Line: 10, Name: "bigOne", Span: 131},
		},
	}

	require.NoError(t, ui.DisplaySavedReport(report))
	assert.Contains(t, buf.String(), "bigOne")
}

func TestRowItem_FilterValue(t *testing.T) {
	item := rowItem{path: "src/a.ts", line: 3, name: "setup", span: 7}

	assert.Contains(t, item.FilterValue(), "src/a.ts")
	assert.Contains(t, item.FilterValue(), "setup")
	assert.Contains(t, item.label(), "src/a.ts:3")
}

func TestBrowserModel_QuitKeys(t *testing.T) {
	items := []list.Item{
		rowItem{path: "src/a.ts", line: 1, name: "f", span: 10},
		rowItem{path: "src/b.ts", line: 2, name: "g", span: 20},
	}

	model := newBrowserModel("test", items)

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	bm, ok := updated.(browserModel)
	require.True(t, ok)
	assert.False(t, bm.quitting)
	assert.NotEmpty(t, bm.View())

	updated, cmd := bm.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	bm, ok = updated.(browserModel)
	require.True(t, ok)
	assert.True(t, bm.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, bm.View())
}

func TestTruncateToWidth(t *testing.T) {
	assert.Equal(t, "abc", truncateToWidth("abc", 10))
	assert.Equal(t, "ab…", truncateToWidth("abcdef", 3))
	assert.Equal(t, "…", truncateToWidth("abcdef", 1))
	assert.Equal(t, "", truncateToWidth("abcdef", 0))
}
