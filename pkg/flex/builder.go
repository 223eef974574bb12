package flex

// Build materializes spec into a Tree. The root's width and height come from
// spec (0 when absent) and its container fields from [ResolveOptions]. Every
// descendant with children becomes a box, every other descendant a leaf.
func Build(spec NodeSpec) *Tree {
	var width, height float64
	setIf(&width, spec.Width)
	setIf(&height, spec.Height)

	t := NewTree(width, height, ResolveOptions(spec))
	t.nodes[0].style.ID = spec.ID
	t.nodes[0].style.Metadata = spec.Metadata
	for _, child := range spec.Children {
		t.addSpec(t.Root(), child)
	}
	return t
}

func (t *Tree) addSpec(parent NodeID, spec NodeSpec) {
	if !spec.IsBox() {
		t.AddLeaf(parent, ResolveStyle(spec))
		return
	}
	id := t.AddBox(parent, ResolveStyle(spec), ResolveOptions(spec))
	for _, child := range spec.Children {
		t.addSpec(id, child)
	}
}

// ComputeLayout builds spec and returns the layout of every node below the
// root.
func ComputeLayout(spec NodeSpec) Layout {
	return Build(spec).Layout()
}
