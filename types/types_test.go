package types

import "testing"

func TestTabLabels(t *testing.T) {
	want := []string{"For You", "Scenes", "Featured", "Groups"}
	if len(AllTabs) != len(want) {
		t.Fatalf("expected %d tabs, got %d", len(want), len(AllTabs))
	}
	for i, tab := range AllTabs {
		if tab.String() != want[i] {
			t.Errorf("tab %d label mismatch:\ngot:  %s\nwant: %s", i, tab.String(), want[i])
		}
	}
}

func TestTabCycle(t *testing.T) {
	tests := []struct {
		name string
		tab  Tab
		next Tab
		prev Tab
	}{
		{name: "first", tab: ForYou, next: Scenes, prev: Groups},
		{name: "middle", tab: Featured, next: Groups, prev: Scenes},
		{name: "last", tab: Groups, next: ForYou, prev: Featured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tab.Next(); got != tt.next {
				t.Errorf("Next() = %v, want %v", got, tt.next)
			}
			if got := tt.tab.Prev(); got != tt.prev {
				t.Errorf("Prev() = %v, want %v", got, tt.prev)
			}
		})
	}
}

func TestTabValid(t *testing.T) {
	if !Groups.Valid() {
		t.Error("Groups should be valid")
	}
	if Tab(-1).Valid() || Tab(len(AllTabs)).Valid() {
		t.Error("out-of-range tabs should be invalid")
	}
	if Tab(9).String() != "unknown" {
		t.Errorf("unexpected label for invalid tab: %s", Tab(9).String())
	}
}
