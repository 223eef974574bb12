package flex_test

import (
	"fmt"

	"github.com/matzehuels/boxflow/pkg/flex"
)

func ExampleComputeLayout() {
	// Two growing children share a 400px row 1:3
	l := flex.ComputeLayout(flex.NodeSpec{
		Width:  flex.Float(400),
		Height: flex.Float(50),
		Gap:    flex.Float(0),
		Children: []flex.NodeSpec{
			{ID: "sidebar", Grow: flex.Float(1)},
			{ID: "content", Grow: flex.Float(3)},
		},
	})

	for _, id := range l.IDs() {
		b := l[id]
		fmt.Printf("%s: x=%g w=%g h=%g\n", id, b.Position.X, b.Size.Width, b.Size.Height)
	}
	// Output:
	// content: x=100 w=300 h=50
	// sidebar: x=0 w=100 h=50
}

func ExampleTree_Entries() {
	tree := flex.NewTree(300, 100, flex.Options{
		Wrap:         flex.WrapLines,
		AlignContent: flex.ContentFlexStart,
		Padding:      flex.EdgeAll(10),
	})
	for i := range 3 {
		style := flex.DefaultStyle()
		style.Basis = 120
		style.Height = flex.Fixed(30)
		style.ID = fmt.Sprintf("card%d", i)
		tree.AddLeaf(tree.Root(), style)
	}

	for _, e := range tree.Entries() {
		fmt.Printf("%s at (%g,%g)\n", e.ID, e.Absolute.X, e.Absolute.Y)
	}
	// Output:
	// card0 at (10,10)
	// card1 at (130,10)
	// card2 at (10,40)
}
