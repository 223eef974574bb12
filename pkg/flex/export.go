package flex

import (
	"fmt"
	"slices"
)

// SyntheticPrefix prefixes the ids generated for nodes without an explicit ID.
const SyntheticPrefix = "node-"

// Layout maps node ids to their computed boxes. Positions are relative to the
// parent's border box and already include the parent's padding.
type Layout map[string]Box

// IDs returns the keys of l in sorted order.
func (l Layout) IDs() []string {
	ids := make([]string, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Entry is one node of a flattened tree, in pre-order.
type Entry struct {
	ID       string         // Explicit or synthetic id
	Parent   string         // Parent's id; empty for children of the root
	Kind     Kind           // Leaf or box
	Depth    int            // 1 for children of the root
	Box      Box            // Relative to the parent
	Absolute Position       // Sum of ancestor offsets plus Box.Position
	Metadata map[string]any // Carried from Style.Metadata
}

// Layout computes the tree and returns every node except the root keyed by
// id. Nodes without an explicit ID receive "node-<n>" ids numbered in
// pre-order, skipping any id used explicitly in the tree. Synthetic ids are
// only stable for one call on an unchanged tree.
//
// When two nodes share an explicit ID, the later one in pre-order wins.
func (t *Tree) Layout() Layout {
	entries := t.Entries()
	out := make(Layout, len(entries))
	for _, e := range entries {
		out[e.ID] = e.Box
	}
	return out
}

// Entries computes the tree and returns every node except the root in
// pre-order.
func (t *Tree) Entries() []Entry {
	t.Compute()
	taken := t.explicitIDs()
	out := make([]Entry, 0, len(t.nodes)-1)
	next := 1
	for _, child := range t.nodes[0].children {
		out, next = t.collect(child, "", 1, Position{}, taken, next, out)
	}
	return out
}

// collect appends id and its descendants to out. The synthetic id counter is
// passed in and the advanced value returned.
func (t *Tree) collect(id NodeID, parent string, depth int, origin Position, taken map[string]bool, next int, out []Entry) ([]Entry, int) {
	n := &t.nodes[id]
	key := n.style.ID
	if key == "" {
		key, next = syntheticID(taken, next)
	}
	abs := origin.Add(n.pos)
	out = append(out, Entry{
		ID:       key,
		Parent:   parent,
		Kind:     n.kind,
		Depth:    depth,
		Box:      Box{Position: n.pos, Size: n.size},
		Absolute: abs,
		Metadata: n.style.Metadata,
	})
	for _, child := range n.children {
		out, next = t.collect(child, key, depth+1, abs, taken, next, out)
	}
	return out, next
}

func syntheticID(taken map[string]bool, next int) (string, int) {
	for {
		id := fmt.Sprintf("%s%d", SyntheticPrefix, next)
		next++
		if !taken[id] {
			return id, next
		}
	}
}

func (t *Tree) explicitIDs() map[string]bool {
	taken := make(map[string]bool)
	for _, n := range t.nodes[1:] {
		if n.style.ID != "" {
			taken[n.style.ID] = true
		}
	}
	return taken
}
