package scene

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/matzehuels/boxflow/pkg/flex"
)

// hclNode is the body of an HCL tree file and of every node block in it.
// padding and metadata stay dynamic so they can be a number or an object.
type hclNode struct {
	ID       *string   `hcl:"id,optional"`
	Metadata cty.Value `hcl:"metadata,optional"`

	Grow      *float64 `hcl:"grow,optional"`
	Shrink    *float64 `hcl:"shrink,optional"`
	Basis     *float64 `hcl:"basis,optional"`
	AlignSelf *string  `hcl:"align_self,optional"`
	Width     *float64 `hcl:"width,optional"`
	Height    *float64 `hcl:"height,optional"`

	Direction      *string   `hcl:"direction,optional"`
	Wrap           *string   `hcl:"wrap,optional"`
	Gap            *float64  `hcl:"gap,optional"`
	ColumnGap      *float64  `hcl:"column_gap,optional"`
	RowGap         *float64  `hcl:"row_gap,optional"`
	JustifyContent *string   `hcl:"justify_content,optional"`
	AlignItems     *string   `hcl:"align_items,optional"`
	AlignContent   *string   `hcl:"align_content,optional"`
	Padding        cty.Value `hcl:"padding,optional"`

	Children []*hclNode `hcl:"node,block"`
}

func decodeHCL(data []byte, filename string) (flex.NodeSpec, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return flex.NodeSpec{}, fmt.Errorf("parse %s: %w", filename, diags)
	}

	var root hclNode
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return flex.NodeSpec{}, fmt.Errorf("decode %s: %w", filename, diags)
	}
	return root.spec("root")
}

// spec converts n and its children. path names the node in error messages.
func (n *hclNode) spec(path string) (flex.NodeSpec, error) {
	s := flex.NodeSpec{
		ID:             deref(n.ID),
		Grow:           n.Grow,
		Shrink:         n.Shrink,
		Basis:          n.Basis,
		AlignSelf:      deref(n.AlignSelf),
		Width:          n.Width,
		Height:         n.Height,
		Direction:      deref(n.Direction),
		Wrap:           deref(n.Wrap),
		Gap:            n.Gap,
		ColumnGap:      n.ColumnGap,
		RowGap:         n.RowGap,
		JustifyContent: deref(n.JustifyContent),
		AlignItems:     deref(n.AlignItems),
		AlignContent:   deref(n.AlignContent),
	}

	if !n.Padding.IsNull() {
		raw, err := ctyToGo(n.Padding)
		if err != nil {
			return flex.NodeSpec{}, fmt.Errorf("%s: padding: %w", path, err)
		}
		if s.Padding, err = flex.ParsePadding(raw); err != nil {
			return flex.NodeSpec{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	if !n.Metadata.IsNull() {
		raw, err := ctyToGo(n.Metadata)
		if err != nil {
			return flex.NodeSpec{}, fmt.Errorf("%s: metadata: %w", path, err)
		}
		meta, ok := raw.(map[string]any)
		if !ok {
			return flex.NodeSpec{}, fmt.Errorf("%s: metadata must be an object, got %T", path, raw)
		}
		s.Metadata = meta
	}

	for i, child := range n.Children {
		c, err := child.spec(fmt.Sprintf("%s.node[%d]", path, i))
		if err != nil {
			return flex.NodeSpec{}, err
		}
		s.Children = append(s.Children, c)
	}
	return s, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ctyToGo converts a known cty value into float64, string, bool,
// map[string]any or []any.
func ctyToGo(val cty.Value) (any, error) {
	if !val.IsKnown() || val.IsNull() {
		return nil, nil
	}
	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty == cty.Number:
		f, _ := val.AsBigFloat().Float64()
		return f, nil
	case ty == cty.Bool:
		return val.True(), nil
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			k, v := it.Element()
			conv, err := ctyToGo(v)
			if err != nil {
				return nil, err
			}
			out[k.AsString()] = conv
		}
		return out, nil
	case ty.IsTupleType() || ty.IsListType():
		out := make([]any, 0, val.LengthInt())
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			conv, err := ctyToGo(v)
			if err != nil {
				return nil, err
			}
			out = append(out, conv)
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
}
