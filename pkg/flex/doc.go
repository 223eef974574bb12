// Package flex implements a flexbox-style layout solver.
//
// # Overview
//
// A layout is described as a tree of nodes. Leaves carry a [Style] (grow,
// shrink, basis, alignment, optional explicit size). Boxes additionally carry
// container [Options] (direction, wrapping, gaps, justification, alignment,
// padding) and an ordered list of children. The solver walks the tree top-down:
// every box distributes its own, already fixed, size among its children and then
// recurses into the children that are boxes themselves.
//
// The root box's size is always supplied by the caller. The package performs no
// intrinsic content measurement: a node without an explicit size gets whatever
// its container assigns to it.
//
// # Usage
//
// Build a tree from a declarative description and flatten it in one step:
//
//	width, height := 400.0, 100.0
//	l := flex.ComputeLayout(flex.NodeSpec{
//	    Width:  &width,
//	    Height: &height,
//	    Children: []flex.NodeSpec{
//	        {ID: "a", Grow: flex.Float(1)},
//	        {ID: "b", Grow: flex.Float(3)},
//	    },
//	})
//	fmt.Println(l["b"].Size.Width) // 300
//
// Or construct the arena directly:
//
//	t := flex.NewTree(400, 100, flex.DefaultOptions())
//	t.AddLeaf(t.Root(), flex.Style{Grow: 1, Shrink: 1})
//	l := t.Layout()
//
// # Coordinates
//
// Positions are relative to the owning box and already include that box's
// padding. [Tree.Entries] additionally reports absolute positions by summing
// ancestor offsets.
//
// # Determinism
//
// Layout is a pure function of the tree: identical inputs produce identical
// outputs, and every pass recomputes the full tree. Independent trees may be
// laid out concurrently; a single tree must not be mutated while a pass runs.
package flex
