package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/boxflow/pkg/flex"
)

// =============================================================================
// Layout - Computed Layout Document
// =============================================================================

// Layout is the serialized result of one layout pass: the root size plus
// every other node in pre-order.
type Layout struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Nodes  []Node  `json:"nodes" bson:"nodes"`
}

// Node is one placed node. X and Y are relative to the parent and include
// its padding; AbsX and AbsY are relative to the root.
type Node struct {
	ID     string  `json:"id" bson:"id"`
	Parent string  `json:"parent,omitempty" bson:"parent,omitempty"`
	Kind   string  `json:"kind" bson:"kind"` // "leaf" or "box"
	Depth  int     `json:"depth" bson:"depth"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	AbsX   float64 `json:"abs_x" bson:"abs_x"`
	AbsY   float64 `json:"abs_y" bson:"abs_y"`

	Meta map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`
}

// IsBox reports whether the node has children.
func (n Node) IsBox() bool { return n.Kind == flex.KindBox.String() }

// Label returns meta["label"] when it is a string, else the id.
func (n Node) Label() string {
	if s, ok := n.Meta["label"].(string); ok && s != "" {
		return s
	}
	return n.ID
}

// NewLayout builds a Layout from the entries of a computed tree.
func NewLayout(width, height float64, entries []flex.Entry) Layout {
	l := Layout{Width: width, Height: height, Nodes: make([]Node, 0, len(entries))}
	for _, e := range entries {
		l.Nodes = append(l.Nodes, Node{
			ID:     e.ID,
			Parent: e.Parent,
			Kind:   e.Kind.String(),
			Depth:  e.Depth,
			X:      e.Box.Position.X,
			Y:      e.Box.Position.Y,
			Width:  e.Box.Size.Width,
			Height: e.Box.Size.Height,
			AbsX:   e.Absolute.X,
			AbsY:   e.Absolute.Y,
			Meta:   e.Metadata,
		})
	}
	return l
}

// Boxes returns the relative boxes keyed by id.
func (l Layout) Boxes() flex.Layout {
	out := make(flex.Layout, len(l.Nodes))
	for _, n := range l.Nodes {
		out[n.ID] = flex.Box{
			Position: flex.Position{X: n.X, Y: n.Y},
			Size:     flex.Size{Width: n.Width, Height: n.Height},
		}
	}
	return out
}

// Children returns the nodes whose parent is id, in document order.
// An empty id selects the children of the root.
func (l Layout) Children(id string) []Node {
	var out []Node
	for _, n := range l.Nodes {
		if n.Parent == id {
			out = append(out, n)
		}
	}
	return out
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if l.Width < 0 || l.Height < 0 {
		return Layout{}, fmt.Errorf("layout size %gx%g must not be negative", l.Width, l.Height)
	}
	for i, n := range l.Nodes {
		if n.ID == "" {
			return Layout{}, fmt.Errorf("layout node %d has no id", i)
		}
	}
	return l, nil
}

// WriteLayout writes l as JSON to w.
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
