package render

import (
	"bytes"
	"context"
	"image/png"
	"strings"
	"testing"

	"github.com/matzehuels/boxflow/pkg/flex"
	"github.com/matzehuels/boxflow/pkg/scene"
)

// testLayout is a 200x100 row with a padded box holding one leaf, and a
// labeled leaf next to it.
func testLayout() scene.Layout {
	spec := flex.NodeSpec{
		Width:  flex.Float(200),
		Height: flex.Float(100),
		Children: []flex.NodeSpec{
			{
				ID:      "panel",
				Grow:    flex.Float(1),
				Padding: flex.UniformPadding(10),
				Children: []flex.NodeSpec{
					{ID: "inner", Grow: flex.Float(1)},
				},
			},
			{ID: "side", Width: flex.Float(50), Metadata: map[string]any{"label": "Side & <more>"}},
		},
	}
	return scene.NewLayout(200, 100, flex.Build(spec).Entries())
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testLayout()))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200.0 100.0"`) {
		t.Errorf("unexpected svg header: %.80s", svg)
	}
	for _, want := range []string{
		`id="node-panel" x="0.00" y="0.00" width="150.00" height="100.00"`,
		`id="node-inner" x="10.00" y="10.00" width="130.00" height="80.00"`,
		`id="node-side" x="150.00" y="0.00" width="50.00" height="100.00"`,
		`class="box"`,
		`class="leaf"`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if strings.Contains(svg, "<text") {
		t.Error("labels drawn without WithLabels")
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("svg not closed")
	}
}

func TestRenderSVGLabels(t *testing.T) {
	svg := string(RenderSVG(testLayout(), WithLabels()))

	if got := strings.Count(svg, "<text"); got != 3 {
		t.Errorf("got %d labels, want 3", got)
	}
	if !strings.Contains(svg, ">Side &amp; &lt;more&gt;</text>") {
		t.Error("label text not escaped")
	}
	if !strings.Contains(svg, ">inner</text>") {
		t.Error("id not used as fallback label")
	}
}

func TestFillFor(t *testing.T) {
	if fillFor(1) != fills[0] || fillFor(2) != fills[1] {
		t.Error("depth 1 and 2 should take the first two fills")
	}
	if fillFor(len(fills)+1) != fills[0] {
		t.Error("palette should repeat")
	}
	if fillFor(0) != fills[0] {
		t.Error("depth 0 should not index out of range")
	}
}

func TestRenderPNG(t *testing.T) {
	tests := []struct {
		name  string
		opts  []Option
		wantW int
		wantH int
	}{
		{"default scale", nil, 200, 100},
		{"scale 2", []Option{WithScale(2)}, 400, 200},
		{"ignored scale", []Option{WithScale(-1)}, 200, 100},
		{"labels", []Option{WithLabels()}, 200, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := RenderPNG(testLayout(), tt.opts...)
			if err != nil {
				t.Fatalf("RenderPNG: %v", err)
			}
			img, err := png.Decode(bytes.NewReader(data))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestRenderPNGEmpty(t *testing.T) {
	data, err := RenderPNG(scene.Layout{})
	if err != nil {
		t.Fatalf("RenderPNG of empty layout: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 1 {
		t.Errorf("size = %dx%d, want 1x1", b.Dx(), b.Dy())
	}
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testLayout())

	for _, want := range []string{
		"digraph G {",
		`"__root__" [label="root\n200x100"`,
		`"panel" [label="panel\n150x100", style="rounded,filled"`,
		`"side" [label="Side & <more>\n50x100"]`,
		`"__root__" -> "panel";`,
		`"panel" -> "inner";`,
		`"__root__" -> "side";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q\n%s", want, dot)
		}
	}
}

func TestRenderGraphSVG(t *testing.T) {
	svg, err := RenderGraphSVG(context.Background(), testLayout())
	if err != nil {
		t.Fatalf("RenderGraphSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `)) {
		t.Error("svg tag not normalized")
	}
	if !bytes.Contains(svg, []byte("panel")) {
		t.Error("node missing from graph svg")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if out != want {
		t.Errorf("normalizeViewBox() = %s, want %s", out, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be unchanged")
	}
}
