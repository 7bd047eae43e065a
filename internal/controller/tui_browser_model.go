package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// rowItem is one measured function (or violation) in the browser list.
type rowItem struct {
	path string
	line int
	name string
	span int
	over bool
}

// FilterValue lets the list filter on both path and function name.
func (i rowItem) FilterValue() string {
	return i.path + " " + i.name
}

func (i rowItem) label() string {
	return fmt.Sprintf("%s:%d  %s", i.path, i.line, i.name)
}

// rowDelegate renders one list row with the span count in a fixed-width
// column on the left, styled by selection state and over-limit status.
type rowDelegate struct{}

func (d rowDelegate) Height() int  { return 1 }
func (d rowDelegate) Spacing() int { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	row, ok := item.(rowItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var labelStyle, countStyle lipgloss.Style

	// Subtract count width (6) + spacing (2)
	width := m.Width() - 8

	switch {
	case isSelected:
		labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		countStyle = labelStyle.Width(6).Align(lipgloss.Right)
	case row.over:
		labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true).
			Width(6).
			Align(lipgloss.Right)
	default:
		labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Width(6).
			Align(lipgloss.Right)
	}

	line := fmt.Sprintf("%s  %s",
		countStyle.Render(fmt.Sprintf("%d", row.span)),
		labelStyle.Render(truncateToWidth(row.label(), width)),
	)
	_, _ = fmt.Fprint(w, line)
}

// truncateToWidth shortens text to the given display width, appending an
// ellipsis when anything was cut.
func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)

	currentWidth := 0

	result := make([]rune, 0, len(text))

	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// browserModel is the Bubble Tea model wrapping the bubbles list.
type browserModel struct {
	list     list.Model
	quitting bool
}

func newBrowserModel(title string, items []list.Item) browserModel {
	l := list.New(items, rowDelegate{}, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("11")).
		Padding(0, 1)

	return browserModel{list: l}
}

func (bm browserModel) Init() tea.Cmd {
	return nil
}

func (bm browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		bm.list.SetSize(msg.Width, msg.Height-1)

		return bm, nil

	case tea.KeyMsg:
		// Ignore quit keys while the user types a filter query.
		if bm.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "q", "esc", "ctrl+c":
			bm.quitting = true

			return bm, tea.Quit
		}
	}

	var cmd tea.Cmd
	bm.list, cmd = bm.list.Update(msg)

	return bm, cmd
}

func (bm browserModel) View() string {
	if bm.quitting {
		return ""
	}

	return bm.list.View() + "\n"
}
