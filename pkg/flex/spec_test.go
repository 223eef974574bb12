package flex

import (
	"encoding/json"
	"testing"
)

func TestResolveStyle(t *testing.T) {
	tests := []struct {
		name string
		spec NodeSpec
		want Style
	}{
		{
			name: "defaults",
			spec: NodeSpec{},
			want: DefaultStyle(),
		},
		{
			name: "negative numbers clamp",
			spec: NodeSpec{Grow: Float(-1), Shrink: Float(-2), Basis: Float(-3), Width: Float(-4)},
			want: Style{Width: Fixed(0), Height: Auto()},
		},
		{
			name: "unknown align keeps auto",
			spec: NodeSpec{AlignSelf: "baseline", Grow: Float(2)},
			want: Style{Grow: 2, Shrink: 1, AlignSelf: AlignAuto},
		},
		{
			name: "explicit sizes and align",
			spec: NodeSpec{ID: "x", AlignSelf: "center", Width: Float(10), Height: Float(20)},
			want: Style{Shrink: 1, AlignSelf: AlignCenter, Width: Fixed(10), Height: Fixed(20), ID: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveStyle(tt.spec)
			got.Metadata = nil
			if got.Grow != tt.want.Grow || got.Shrink != tt.want.Shrink || got.Basis != tt.want.Basis ||
				got.AlignSelf != tt.want.AlignSelf || got.Width != tt.want.Width ||
				got.Height != tt.want.Height || got.ID != tt.want.ID {
				t.Errorf("ResolveStyle() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveOptions(t *testing.T) {
	tests := []struct {
		name string
		spec NodeSpec
		want Options
	}{
		{
			name: "defaults",
			spec: NodeSpec{},
			want: DefaultOptions(),
		},
		{
			name: "gap shorthand",
			spec: NodeSpec{Gap: Float(4)},
			want: func() Options { o := DefaultOptions(); o.ColumnGap, o.RowGap = 4, 4; return o }(),
		},
		{
			name: "specific gap overrides shorthand",
			spec: NodeSpec{Gap: Float(4), RowGap: Float(9)},
			want: func() Options { o := DefaultOptions(); o.ColumnGap, o.RowGap = 4, 9; return o }(),
		},
		{
			name: "keywords",
			spec: NodeSpec{
				Direction:      "column-reverse",
				Wrap:           "wrap-reverse",
				JustifyContent: "space-evenly",
				AlignItems:     "flex-end",
				AlignContent:   "center",
			},
			want: Options{
				Direction:      ColumnReverse,
				Wrap:           WrapReverse,
				JustifyContent: JustifySpaceEvenly,
				AlignItems:     AlignFlexEnd,
				AlignContent:   ContentCenter,
			},
		},
		{
			name: "align-items auto falls back to stretch",
			spec: NodeSpec{AlignItems: "auto"},
			want: DefaultOptions(),
		},
		{
			name: "unknown keywords fall back",
			spec: NodeSpec{Direction: "diagonal", Wrap: "sometimes", JustifyContent: "left"},
			want: DefaultOptions(),
		},
		{
			name: "partial padding",
			spec: NodeSpec{Padding: PaddingSpec{All: Float(2), Left: Float(7), Top: Float(-1)}},
			want: func() Options {
				o := DefaultOptions()
				o.Padding = Edges{Top: 0, Right: 2, Bottom: 2, Left: 7}
				return o
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveOptions(tt.spec); got != tt.want {
				t.Errorf("ResolveOptions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPaddingSpecJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Edges
	}{
		{"scalar", `{"padding": 5}`, EdgeAll(5)},
		{"box", `{"padding": {"top": 1, "left": 4}}`, Edges{Top: 1, Left: 4}},
		{"absent", `{}`, Edges{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var spec NodeSpec
			if err := json.Unmarshal([]byte(tt.input), &spec); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if got := spec.Padding.Resolve(); got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}

	var spec NodeSpec
	if err := json.Unmarshal([]byte(`{"padding": "wide"}`), &spec); err == nil {
		t.Error("expected error for string padding")
	}
}

func TestPaddingSpecMarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		spec NodeSpec
		want string
	}{
		{"scalar", NodeSpec{Padding: UniformPadding(3)}, `{"padding":3}`},
		{"box", NodeSpec{Padding: PaddingSpec{Top: Float(1)}}, `{"padding":{"top":1}}`},
		{"omitted", NodeSpec{}, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.spec)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}
		})
	}
}

func TestPaddingSpecUnmarshalTOML(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    Edges
		wantErr bool
	}{
		{"integer", int64(3), EdgeAll(3), false},
		{"float", 2.5, EdgeAll(2.5), false},
		{"table", map[string]any{"right": int64(6), "bottom": 1.5}, Edges{Right: 6, Bottom: 1.5}, false},
		{"bad value", map[string]any{"top": "x"}, Edges{}, true},
		{"bad type", "x", Edges{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p PaddingSpec
			err := p.UnmarshalTOML(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UnmarshalTOML() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && p.Resolve() != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", p.Resolve(), tt.want)
			}
		})
	}
}

func TestNodeSpecCount(t *testing.T) {
	s := NodeSpec{Children: []NodeSpec{{}, {Children: []NodeSpec{{}, {}}}}}
	if got := s.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
	if !s.IsBox() || s.Children[0].IsBox() {
		t.Error("IsBox() mismatch")
	}
}

func TestKeywordRoundTrip(t *testing.T) {
	for d := range directionNames {
		if got, ok := ParseDirection(d.String()); !ok || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d, got, ok)
		}
	}
	for w := range wrapNames {
		if got, ok := ParseWrap(w.String()); !ok || got != w {
			t.Errorf("ParseWrap(%q) = %v, %v", w, got, ok)
		}
	}
	for j := range justifyNames {
		if got, ok := ParseJustify(j.String()); !ok || got != j {
			t.Errorf("ParseJustify(%q) = %v, %v", j, got, ok)
		}
	}
	for a := range alignNames {
		if got, ok := ParseAlign(a.String()); !ok || got != a {
			t.Errorf("ParseAlign(%q) = %v, %v", a, got, ok)
		}
	}
	for a := range contentNames {
		if got, ok := ParseAlignContent(a.String()); !ok || got != a {
			t.Errorf("ParseAlignContent(%q) = %v, %v", a, got, ok)
		}
	}
	if _, ok := ParseDirection("sideways"); ok {
		t.Error("ParseDirection accepted an unknown keyword")
	}
}
