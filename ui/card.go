package ui

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/shoptui/types"
)

const (
	// cardLines is the number of content lines inside a card border:
	// thumbnail, title, two description lines, price/rating.
	cardLines = 5
	// cardHeight includes the top and bottom border.
	cardHeight = cardLines + 2
	// cardChrome is border plus horizontal padding.
	cardChrome   = 4
	minCardInner = 8
)

// RenderCard renders a single product card that is exactly width cells wide
// and cardHeight lines tall.
func RenderCard(p types.Product, width int, selected bool) string {
	inner := width - cardChrome
	if inner < minCardInner {
		inner = minCardInner
	}

	titleStyle := CardTitleStyle
	style := CardStyle
	if selected {
		titleStyle = SelectedCardTitleStyle
		style = SelectedCardStyle
	}

	lines := make([]string, 0, cardLines)
	lines = append(lines, ThumbnailStyle.Render(thumbnailBand(p.Thumbnail(), inner)))
	lines = append(lines, titleStyle.Render(truncate(oneLine(p.Title()), inner)))
	for _, l := range clampLines(oneLine(p.Description()), inner, 2) {
		lines = append(lines, CardDescStyle.Render(l))
	}
	lines = append(lines, metaRow(p, inner))

	for i, l := range lines {
		lines[i] = padRight(l, inner)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// FormatPrice renders a price with the currency symbol, e.g. "$9.99".
func FormatPrice(p types.Product) string {
	return "$" + p.Price().String()
}

// FormatRating renders a rating as plain text, e.g. "Rating 4.94".
func FormatRating(p types.Product) string {
	return "Rating " + strconv.FormatFloat(p.Rating(), 'f', -1, 64)
}

// metaRow lays out price on the left and rating on the right.
func metaRow(p types.Product, width int) string {
	price := FormatPrice(p)
	rating := FormatRating(p)

	gap := width - ansi.StringWidth(price) - ansi.StringWidth(rating)
	if gap < 1 {
		return PriceStyle.Render(truncate(price+" "+rating, width))
	}
	return PriceStyle.Render(price) + strings.Repeat(" ", gap) + RatingStyle.Render(rating)
}

// thumbnailBand stands in for the product image: a shaded band labelled with
// the image's file name.
func thumbnailBand(raw string, width int) string {
	label := "no image"
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		if name, err := url.PathUnescape(path.Base(u.Path)); err == nil && name != "/" && name != "." {
			label = name
		}
	}
	band := "░ " + label + " "
	if w := ansi.StringWidth(band); w < width {
		band += strings.Repeat("░", width-w)
	}
	return truncate(band, width)
}

// clampLines word-wraps s to width and keeps at most n lines, marking the cut
// with an ellipsis. The result always has exactly n entries.
func clampLines(s string, width, n int) []string {
	var wrapped []string
	if s != "" {
		wrapped = strings.Split(ansi.Wrap(s, width, ""), "\n")
		for i, l := range wrapped {
			wrapped[i] = ansi.Truncate(l, width, "")
		}
	}
	if len(wrapped) > n {
		last := strings.TrimRight(wrapped[n-1], " ")
		if ansi.StringWidth(last) >= width {
			last = ansi.Truncate(last, width-1, "")
		}
		wrapped = append(wrapped[:n-1], last+"…")
	}
	for len(wrapped) < n {
		wrapped = append(wrapped, "")
	}
	return wrapped
}

func truncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
