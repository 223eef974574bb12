package flex

import "fmt"

// NodeID is a handle to a node in a [Tree]. Handles are only valid for the
// tree that issued them.
type NodeID int

// Kind distinguishes leaves from boxes.
type Kind uint8

const (
	KindLeaf Kind = iota // No children
	KindBox              // Container with options and ordered children
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindBox:
		return "box"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// node is one arena slot. opts and children are only meaningful for boxes.
type node struct {
	kind     Kind
	style    Style
	opts     Options
	children []NodeID

	// measured is a caller-supplied size hint read on the cross axis when the
	// style has no explicit size. The solver never writes it.
	measured Size

	// Outputs of the last pass.
	size Size
	pos  Position
}

// Tree is an arena of nodes rooted at a box whose size the caller supplies.
//
// A Tree is not safe for concurrent use. Layout overwrites every size and
// position below the root on each call.
type Tree struct {
	nodes []node
}

// NewTree creates a tree whose root box has the given fixed size and options.
// Negative sizes clamp to 0.
func NewTree(width, height float64, opts Options) *Tree {
	root := node{
		kind:  KindBox,
		style: DefaultStyle(),
		opts:  opts.normalize(),
		size:  Size{Width: max(0, width), Height: max(0, height)},
	}
	root.style.Width = Fixed(width)
	root.style.Height = Fixed(height)
	return &Tree{nodes: []node{root}}
}

// Root returns the handle of the root box.
func (t *Tree) Root() NodeID { return 0 }

// Len returns the number of nodes, including the root.
func (t *Tree) Len() int { return len(t.nodes) }

// AddLeaf appends a leaf with the given style to parent's children.
// It panics if parent is not a box.
func (t *Tree) AddLeaf(parent NodeID, style Style) NodeID {
	return t.add(parent, node{kind: KindLeaf, style: style.normalize()})
}

// AddBox appends a box with the given item style and container options to
// parent's children. Its own size is assigned by parent during layout unless
// style fixes it. It panics if parent is not a box.
func (t *Tree) AddBox(parent NodeID, style Style, opts Options) NodeID {
	return t.add(parent, node{kind: KindBox, style: style.normalize(), opts: opts.normalize()})
}

// AddContainer appends a box with a fixed width and height to parent's children.
func (t *Tree) AddContainer(parent NodeID, width, height float64, opts Options) NodeID {
	style := DefaultStyle()
	style.Width = Fixed(width)
	style.Height = Fixed(height)
	return t.AddBox(parent, style, opts)
}

func (t *Tree) add(parent NodeID, n node) NodeID {
	p := t.at(parent)
	if p.kind != KindBox {
		panic(fmt.Sprintf("flex: node %d is a %s and cannot have children", parent, p.kind))
	}
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	// Re-index: append may have moved the arena.
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

func (t *Tree) at(id NodeID) *node {
	if id < 0 || int(id) >= len(t.nodes) {
		panic(fmt.Sprintf("flex: node %d out of range [0, %d)", id, len(t.nodes)))
	}
	return &t.nodes[id]
}

// SetMeasured records a size hint for id. When a node has no explicit cross
// size, the hint's cross component is used for line sizing and non-stretch
// alignment.
func (t *Tree) SetMeasured(id NodeID, s Size) {
	t.at(id).measured = Size{Width: max(0, s.Width), Height: max(0, s.Height)}
}

// Kind returns the kind of id.
func (t *Tree) Kind(id NodeID) Kind { return t.at(id).kind }

// Style returns the resolved style of id.
func (t *Tree) Style(id NodeID) Style { return t.at(id).style }

// Options returns the container options of id. Leaves report DefaultOptions.
func (t *Tree) Options(id NodeID) Options {
	n := t.at(id)
	if n.kind != KindBox {
		return DefaultOptions()
	}
	return n.opts
}

// Children returns a copy of id's children in insertion order.
func (t *Tree) Children(id NodeID) []NodeID {
	return append([]NodeID(nil), t.at(id).children...)
}

// Box returns the placement of id computed by the last layout pass.
func (t *Tree) Box(id NodeID) Box {
	n := t.at(id)
	return Box{Position: n.pos, Size: n.size}
}
