package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/qyinm/shoptui/types"
)

const (
	columns    = 2
	gutter     = 2
	rowSpacing = 1
	rowHeight  = cardHeight + rowSpacing
	footerRows = 1

	// EndReachedThreshold is how close to the end, in viewport heights, the
	// remaining content must be before the next page is requested.
	EndReachedThreshold = 0.4
)

// columnWidth splits the screen into two cards separated by a gutter.
func columnWidth(total int) int {
	w := (total - gutter) / columns
	if w < minCardInner+cardChrome {
		w = minCardInner + cardChrome
	}
	return w
}

// rowOf returns the grid row holding product index i.
func rowOf(i int) int {
	return i / columns
}

// rowCount returns the number of grid rows for n products.
func rowCount(n int) int {
	return (n + columns - 1) / columns
}

// renderGrid lays products out two per row, in order, followed by the footer.
func renderGrid(products []types.Product, width, selected int, footer string) string {
	colW := columnWidth(width)
	spacer := strings.Repeat(" ", gutter)

	var b strings.Builder
	for row := 0; row < rowCount(len(products)); row++ {
		cells := make([]string, 0, columns*2-1)
		for col := 0; col < columns; col++ {
			i := row*columns + col
			if col > 0 {
				cells = append(cells, spacer)
			}
			if i >= len(products) {
				cells = append(cells, blankBlock(colW, cardHeight))
				continue
			}
			cells = append(cells, RenderCard(products[i], colW, i == selected))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString(strings.Repeat("\n", rowSpacing))
		b.WriteString("\n")
	}
	b.WriteString(footer)
	return b.String()
}

func blankBlock(width, height int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
