package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/shoptui/types"
)

const tabGap = " "

// renderTabs draws the fixed tab set on one row with the active tab filled.
// When the row is wider than width, leading tabs scroll off so the active
// tab stays visible; whatever still overflows is clipped on the right.
func renderTabs(active types.Tab, width int) string {
	pills := make([]string, len(types.AllTabs))
	activeIdx := 0
	for i, tab := range types.AllTabs {
		style := InactiveTabStyle
		if tab == active {
			style = ActiveTabStyle
			activeIdx = i
		}
		pills[i] = style.Render(tab.String())
	}

	start := 0
	if width > 0 {
		for start < activeIdx && tabsWidth(pills[start:activeIdx+1]) > width {
			start++
		}
	}

	row := joinTabs(pills[start:])
	if width > 0 && lipgloss.Width(row) > width {
		row = lipgloss.NewStyle().MaxWidth(width).Render(row)
	}
	return row
}

func joinTabs(pills []string) string {
	cells := make([]string, 0, len(pills)*2)
	for i, p := range pills {
		if i > 0 {
			cells = append(cells, tabGap)
		}
		cells = append(cells, p)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func tabsWidth(pills []string) int {
	w := 0
	for i, p := range pills {
		if i > 0 {
			w += lipgloss.Width(tabGap)
		}
		w += lipgloss.Width(p)
	}
	return w
}
