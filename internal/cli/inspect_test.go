package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/boxflow/pkg/scene"
)

func browserLayout() scene.Layout {
	return scene.Layout{
		Width: 200, Height: 100,
		Nodes: []scene.Node{
			{ID: "panel", Kind: "box", Depth: 1, Width: 150, Height: 100},
			{ID: "inner", Parent: "panel", Kind: "leaf", Depth: 2, X: 10, Y: 10, Width: 130, Height: 80, AbsX: 10, AbsY: 10,
				Meta: map[string]any{"label": "Inner", "color": "red"}},
			{ID: "side", Kind: "leaf", Depth: 1, X: 150, Width: 50, Height: 100, AbsX: 150},
		},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m tea.Model, keys ...string) nodeBrowser {
	for _, k := range keys {
		m, _ = m.Update(key(k))
	}
	return m.(nodeBrowser)
}

func TestNodeBrowserNavigation(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		wantCursor int
	}{
		{"start", nil, 0},
		{"down", []string{"down"}, 1},
		{"vim keys", []string{"j", "j", "k"}, 1},
		{"clamped top", []string{"up", "k"}, 0},
		{"clamped bottom", []string{"j", "j", "j", "j"}, 2},
		{"last", []string{"G"}, 2},
		{"first", []string{"G", "g"}, 0},
		{"parent", []string{"j", "p"}, 0},
		{"parent of root child", []string{"G", "p"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := press(newNodeBrowser(browserLayout()), tt.keys...)
			if m.cursor != tt.wantCursor {
				t.Errorf("cursor = %d, want %d", m.cursor, tt.wantCursor)
			}
		})
	}
}

func TestNodeBrowserScroll(t *testing.T) {
	m := newNodeBrowser(browserLayout())
	m.height = 1

	m = press(m, "j", "j")
	if m.offset != 2 {
		t.Errorf("offset = %d, want 2", m.offset)
	}
	m = press(m, "g")
	if m.offset != 0 {
		t.Errorf("offset after g = %d, want 0", m.offset)
	}
}

func TestNodeBrowserQuit(t *testing.T) {
	_, cmd := newNodeBrowser(browserLayout()).Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestNodeBrowserView(t *testing.T) {
	view := press(newNodeBrowser(browserLayout()), "j").View()

	for _, want := range []string{"Layout 200 × 100", "Inner", "panel", "meta.color", "red", "[2/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	empty := newNodeBrowser(scene.Layout{Width: 10, Height: 10}).View()
	if !strings.Contains(empty, "no nodes") {
		t.Errorf("empty view = %q", empty)
	}
}

func TestNodeTable(t *testing.T) {
	out := nodeTable(browserLayout().Nodes, -1).Render()
	for _, want := range []string{"Node", "Abs X", "panel", "  Inner", "side", "130"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestFormatNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{12.5, "12.5"},
		{1.234, "1.23"},
		{-3.10, "-3.1"},
	}
	for _, tt := range tests {
		if got := formatNum(tt.in); got != tt.want {
			t.Errorf("formatNum(%g) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStatsLine(t *testing.T) {
	tests := []struct {
		nodes, depth int
		cached       bool
		want         []string
	}{
		{3, 2, false, []string{"3 nodes", "depth 2", "fresh"}},
		{0, 0, true, []string{"0 nodes", "cached"}},
	}
	for _, tt := range tests {
		got := statsLine(tt.nodes, tt.depth, tt.cached)
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("statsLine(%d, %d, %v) = %q, missing %q", tt.nodes, tt.depth, tt.cached, got, w)
			}
		}
	}
}
