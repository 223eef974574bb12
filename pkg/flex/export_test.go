package flex

import (
	"slices"
	"testing"
)

func TestLayoutExcludesRoot(t *testing.T) {
	s := NodeSpec{
		ID:     "root",
		Width:  Float(100),
		Height: Float(100),
		Children: []NodeSpec{{
			Children: []NodeSpec{{}, {}},
		}},
	}

	l := ComputeLayout(s)
	if len(l) != 3 {
		t.Fatalf("got %d entries, want 3: %v", len(l), l)
	}
	if _, ok := l["root"]; ok {
		t.Error("root appears in layout")
	}
	want := []string{"node-1", "node-2", "node-3"}
	if got := l.IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestSyntheticIDsSkipExplicitOnes(t *testing.T) {
	s := root(100, 100,
		NodeSpec{},
		NodeSpec{ID: "node-1"},
		NodeSpec{},
	)

	entries := Build(s).Entries()
	var got []string
	for _, e := range entries {
		got = append(got, e.ID)
	}
	want := []string{"node-2", "node-1", "node-3"}
	if !slices.Equal(got, want) {
		t.Errorf("ids = %v, want %v", got, want)
	}
}

func TestDuplicateIDsCollapse(t *testing.T) {
	s := root(100, 10,
		NodeSpec{ID: "dup", Basis: Float(10)},
		NodeSpec{ID: "dup", Basis: Float(20)},
	)

	l := ComputeLayout(s)
	if len(l) != 1 {
		t.Fatalf("got %d entries, want 1", len(l))
	}
	if got := l["dup"].Position.X; got != 10 {
		t.Errorf("dup.X = %v, want 10 (last node wins)", got)
	}
}

func TestEntries(t *testing.T) {
	s := root(300, 100,
		NodeSpec{ID: "left", Width: Float(100)},
		NodeSpec{
			ID:       "right",
			Grow:     Float(1),
			Padding:  UniformPadding(10),
			Metadata: map[string]any{"color": "red"},
			Children: []NodeSpec{{ID: "leaf", Grow: Float(1)}},
		},
	)

	entries := Build(s).Entries()

	tests := []struct {
		id       string
		parent   string
		kind     Kind
		depth    int
		absolute Position
	}{
		{"left", "", KindLeaf, 1, Position{X: 0, Y: 0}},
		{"right", "", KindBox, 1, Position{X: 100, Y: 0}},
		{"leaf", "right", KindLeaf, 2, Position{X: 110, Y: 10}},
	}
	if len(entries) != len(tests) {
		t.Fatalf("got %d entries, want %d", len(entries), len(tests))
	}
	for i, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			e := entries[i]
			if e.ID != tt.id {
				t.Fatalf("entry %d ID = %q, want %q", i, e.ID, tt.id)
			}
			if e.Parent != tt.parent {
				t.Errorf("Parent = %q, want %q", e.Parent, tt.parent)
			}
			if e.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", e.Kind, tt.kind)
			}
			if e.Depth != tt.depth {
				t.Errorf("Depth = %d, want %d", e.Depth, tt.depth)
			}
			if e.Absolute != tt.absolute {
				t.Errorf("Absolute = %+v, want %+v", e.Absolute, tt.absolute)
			}
		})
	}

	if got := entries[1].Metadata["color"]; got != "red" {
		t.Errorf("metadata color = %v, want red", got)
	}
	if got := entries[2].Box.Position; got != (Position{X: 10, Y: 10}) {
		t.Errorf("leaf relative position = %+v, want (10,10)", got)
	}
}

func TestTreeAccessors(t *testing.T) {
	tree := NewTree(100, 50, Options{Direction: Column, Padding: EdgeAll(-3)})
	box := tree.AddContainer(tree.Root(), 40, 20, DefaultOptions())
	leaf := tree.AddLeaf(box, Style{Grow: 1})

	if tree.Len() != 3 {
		t.Errorf("Len() = %d, want 3", tree.Len())
	}
	if tree.Kind(box) != KindBox || tree.Kind(leaf) != KindLeaf {
		t.Errorf("kinds = %v, %v", tree.Kind(box), tree.Kind(leaf))
	}
	if got := tree.Options(tree.Root()); got.Padding != (Edges{}) || got.AlignItems != AlignStretch {
		t.Errorf("root options not normalized: %+v", got)
	}
	if got := tree.Children(tree.Root()); !slices.Equal(got, []NodeID{box}) {
		t.Errorf("Children(root) = %v", got)
	}

	tree.Compute()
	if got := tree.Box(box).Size; got != (Size{Width: 40, Height: 20}) {
		t.Errorf("container size = %+v, want 40x20", got)
	}
	if got := tree.Box(leaf).Size; got != (Size{Width: 40, Height: 20}) {
		t.Errorf("leaf size = %+v, want 40x20", got)
	}
}
