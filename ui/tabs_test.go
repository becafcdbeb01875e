package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/qyinm/shoptui/types"
)

func TestRenderTabsWide(t *testing.T) {
	row := ansi.Strip(renderTabs(types.Featured, 200))
	for _, tab := range types.AllTabs {
		if !strings.Contains(row, tab.String()) {
			t.Fatalf("expected %q in tab row:\n%s", tab, row)
		}
	}
}

func TestRenderTabsNarrowKeepsActiveVisible(t *testing.T) {
	tests := []struct {
		active types.Tab
		width  int
	}{
		{types.ForYou, 20},
		{types.Scenes, 20},
		{types.Featured, 20},
		{types.Groups, 20},
		{types.Groups, 40},
	}
	for _, tt := range tests {
		raw := renderTabs(tt.active, tt.width)
		if w := lipgloss.Width(raw); w > tt.width {
			t.Fatalf("%s at width %d: row is %d wide", tt.active, tt.width, w)
		}
		if row := ansi.Strip(raw); !strings.Contains(row, tt.active.String()) {
			t.Fatalf("%s at width %d should stay visible:\n%s", tt.active, tt.width, row)
		}
	}
}

func TestRenderTabsScrollsLeadingTabsOff(t *testing.T) {
	row := ansi.Strip(renderTabs(types.Groups, 20))
	if strings.Contains(row, types.ForYou.String()) {
		t.Fatalf("leading tabs should scroll off when the active tab is last:\n%s", row)
	}
}
