package scene

import (
	"bytes"
	"maps"
	"path/filepath"
	"testing"

	"github.com/matzehuels/boxflow/pkg/flex"
)

func computedPage(t *testing.T) (flex.NodeSpec, Layout) {
	t.Helper()
	spec, err := Parse([]byte(pageJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	entries := flex.Build(spec).Entries()
	return spec, NewLayout(*spec.Width, *spec.Height, entries)
}

func TestNewLayout(t *testing.T) {
	spec, l := computedPage(t)

	if l.Width != 800 || l.Height != 600 {
		t.Errorf("size = %gx%g, want 800x600", l.Width, l.Height)
	}
	if len(l.Nodes) != 4 {
		t.Fatalf("got %d nodes, want 4", len(l.Nodes))
	}

	body := l.Nodes[3]
	if body.ID != "body" || body.Parent != "main" || body.Depth != 2 {
		t.Errorf("body = %+v", body)
	}
	if body.AbsX != 228 || body.AbsY != 80 {
		t.Errorf("body absolute = (%g,%g), want (228,80)", body.AbsX, body.AbsY)
	}
	if body.Label() != "Body" || l.Nodes[0].Label() != "sidebar" {
		t.Errorf("labels = %q, %q", body.Label(), l.Nodes[0].Label())
	}
	if !l.Nodes[1].IsBox() || body.IsBox() {
		t.Error("IsBox() mismatch")
	}

	if got, want := l.Boxes(), flex.ComputeLayout(spec); !maps.Equal(got, want) {
		t.Errorf("Boxes() = %v, want %v", got, want)
	}

	children := l.Children("main")
	if len(children) != 2 || children[0].ID != "header" {
		t.Errorf("Children(main) = %+v", children)
	}
	if top := l.Children(""); len(top) != 2 {
		t.Errorf("Children(\"\") has %d nodes, want 2", len(top))
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	_, l := computedPage(t)

	path := filepath.Join(t.TempDir(), "page.layout.json")
	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile: %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if !maps.Equal(got.Boxes(), l.Boxes()) {
		t.Errorf("round trip changed boxes")
	}
	if got.Nodes[3].Meta["label"] != "Body" {
		t.Errorf("meta lost: %+v", got.Nodes[3].Meta)
	}

	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		t.Fatalf("WriteLayout: %v", err)
	}
	if _, err := UnmarshalLayout(buf.Bytes()); err != nil {
		t.Errorf("UnmarshalLayout(WriteLayout) = %v", err)
	}
}

func TestUnmarshalLayoutErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid json", `{`},
		{"negative size", `{"width": -1, "height": 5, "nodes": []}`},
		{"node without id", `{"width": 1, "height": 1, "nodes": [{"kind": "leaf"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalLayout([]byte(tt.input)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := ReadLayoutFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
