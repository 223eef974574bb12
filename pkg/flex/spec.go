package flex

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// NodeSpec - Declarative Tree Description
// =============================================================================

// NodeSpec is the declarative, partially specified description of a node.
//
// Every field is optional. Absent numeric fields are nil, absent keywords are
// empty strings; [ResolveStyle] and [ResolveOptions] fill in defaults. A spec
// with a non-empty Children list becomes a box, any other spec a leaf.
//
// Container fields (Direction through Padding) are ignored on leaves. Width and
// Height of the root spec are the root box's own size.
type NodeSpec struct {
	ID       string         `json:"id,omitempty" toml:"id"`
	Metadata map[string]any `json:"metadata,omitempty" toml:"metadata"`

	// Flex item
	Grow      *float64 `json:"grow,omitempty" toml:"grow"`
	Shrink    *float64 `json:"shrink,omitempty" toml:"shrink"`
	Basis     *float64 `json:"basis,omitempty" toml:"basis"`
	AlignSelf string   `json:"align_self,omitempty" toml:"align_self"`
	Width     *float64 `json:"width,omitempty" toml:"width"`
	Height    *float64 `json:"height,omitempty" toml:"height"`

	// Container
	Direction      string      `json:"direction,omitempty" toml:"direction"`
	Wrap           string      `json:"wrap,omitempty" toml:"wrap"`
	Gap            *float64    `json:"gap,omitempty" toml:"gap"`
	ColumnGap      *float64    `json:"column_gap,omitempty" toml:"column_gap"`
	RowGap         *float64    `json:"row_gap,omitempty" toml:"row_gap"`
	JustifyContent string      `json:"justify_content,omitempty" toml:"justify_content"`
	AlignItems     string      `json:"align_items,omitempty" toml:"align_items"`
	AlignContent   string      `json:"align_content,omitempty" toml:"align_content"`
	Padding        PaddingSpec `json:"padding,omitzero" toml:"padding"`

	Children []NodeSpec `json:"children,omitempty" toml:"children"`
}

// IsBox reports whether the spec describes a box.
func (n NodeSpec) IsBox() bool { return len(n.Children) > 0 }

// Count returns the number of nodes in the spec, including n itself.
func (n NodeSpec) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// Float returns a pointer to v, for filling optional NodeSpec fields.
func Float(v float64) *float64 { return &v }

// =============================================================================
// PaddingSpec
// =============================================================================

// PaddingSpec is padding given either as one scalar for all sides or as a
// partial box. Explicit sides override the scalar; missing sides are 0.
type PaddingSpec struct {
	All    *float64 `json:"all,omitempty" toml:"all"`
	Top    *float64 `json:"top,omitempty" toml:"top"`
	Right  *float64 `json:"right,omitempty" toml:"right"`
	Bottom *float64 `json:"bottom,omitempty" toml:"bottom"`
	Left   *float64 `json:"left,omitempty" toml:"left"`
}

// UniformPadding returns a PaddingSpec with n on all sides.
func UniformPadding(n float64) PaddingSpec { return PaddingSpec{All: &n} }

// IsZero reports whether no side is set.
func (p PaddingSpec) IsZero() bool {
	return p.All == nil && p.Top == nil && p.Right == nil && p.Bottom == nil && p.Left == nil
}

// Resolve returns the Edges described by p.
func (p PaddingSpec) Resolve() Edges {
	var e Edges
	if p.All != nil {
		e = EdgeAll(*p.All)
	}
	setIf(&e.Top, p.Top)
	setIf(&e.Right, p.Right)
	setIf(&e.Bottom, p.Bottom)
	setIf(&e.Left, p.Left)
	return e
}

// UnmarshalJSON accepts a number or an object with top/right/bottom/left.
func (p *PaddingSpec) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = PaddingSpec{All: &n}
		return nil
	}
	type plain PaddingSpec
	var box plain
	if err := json.Unmarshal(data, &box); err != nil {
		return fmt.Errorf("padding: want number or object: %w", err)
	}
	*p = PaddingSpec(box)
	return nil
}

// MarshalJSON writes a scalar when only All is set.
func (p PaddingSpec) MarshalJSON() ([]byte, error) {
	if p.All != nil && (PaddingSpec{All: p.All}) == p {
		return json.Marshal(*p.All)
	}
	type plain PaddingSpec
	return json.Marshal(plain(p))
}

// UnmarshalTOML accepts an integer, a float or a table with top/right/bottom/left.
func (p *PaddingSpec) UnmarshalTOML(data any) error {
	v, err := ParsePadding(data)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePadding converts a decoded scalar (float64, int64 or int) or a
// map[string]any with all/top/right/bottom/left keys into a PaddingSpec.
// Decoders that produce generic values (TOML, HCL) share it.
func ParsePadding(data any) (PaddingSpec, error) {
	if n, ok := toFloat(data); ok {
		return PaddingSpec{All: &n}, nil
	}
	table, ok := data.(map[string]any)
	if !ok {
		return PaddingSpec{}, fmt.Errorf("padding: want number or table, got %T", data)
	}
	var p PaddingSpec
	for key, dst := range map[string]**float64{
		"all":    &p.All,
		"top":    &p.Top,
		"right":  &p.Right,
		"bottom": &p.Bottom,
		"left":   &p.Left,
	} {
		v, present := table[key]
		if !present {
			continue
		}
		n, ok := toFloat(v)
		if !ok {
			return PaddingSpec{}, fmt.Errorf("padding.%s: want number, got %T", key, v)
		}
		*dst = &n
	}
	return p, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// =============================================================================
// Resolution
// =============================================================================

// ResolveStyle fills every absent field of n with its default and clamps
// negative numbers to 0. Unknown keywords fall back to defaults.
func ResolveStyle(n NodeSpec) Style {
	s := DefaultStyle()
	setIf(&s.Grow, n.Grow)
	setIf(&s.Shrink, n.Shrink)
	setIf(&s.Basis, n.Basis)
	if a, ok := ParseAlign(n.AlignSelf); ok {
		s.AlignSelf = a
	}
	if n.Width != nil {
		s.Width = Fixed(*n.Width)
	}
	if n.Height != nil {
		s.Height = Fixed(*n.Height)
	}
	s.ID = n.ID
	s.Metadata = n.Metadata
	return s.normalize()
}

// ResolveOptions fills every absent container field of n with its default.
// Gap sets both gaps; ColumnGap and RowGap override it.
func ResolveOptions(n NodeSpec) Options {
	o := DefaultOptions()
	if d, ok := ParseDirection(n.Direction); ok {
		o.Direction = d
	}
	if w, ok := ParseWrap(n.Wrap); ok {
		o.Wrap = w
	}
	setIf(&o.ColumnGap, n.Gap)
	setIf(&o.RowGap, n.Gap)
	setIf(&o.ColumnGap, n.ColumnGap)
	setIf(&o.RowGap, n.RowGap)
	if j, ok := ParseJustify(n.JustifyContent); ok {
		o.JustifyContent = j
	}
	if a, ok := ParseAlign(n.AlignItems); ok {
		o.AlignItems = a
	}
	if a, ok := ParseAlignContent(n.AlignContent); ok {
		o.AlignContent = a
	}
	o.Padding = n.Padding.Resolve()
	return o.normalize()
}
