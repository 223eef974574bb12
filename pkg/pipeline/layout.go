package pipeline

import (
	"github.com/matzehuels/boxflow/pkg/flex"
	"github.com/matzehuels/boxflow/pkg/scene"
)

// ComputeLayout validates spec, applies the size overrides in opts and solves
// the tree. It does no caching; see [Runner.ComputeLayout].
func ComputeLayout(spec flex.NodeSpec, opts Options) (scene.Layout, error) {
	spec = applySize(spec, opts)
	if err := scene.Validate(spec); err != nil {
		return scene.Layout{}, err
	}
	tree := flex.Build(spec)
	return scene.NewLayout(*spec.Width, *spec.Height, tree.Entries()), nil
}

// applySize returns spec with the root size replaced by positive overrides.
// The children slice is shared, so spec itself is left untouched.
func applySize(spec flex.NodeSpec, opts Options) flex.NodeSpec {
	if opts.Width > 0 {
		spec.Width = flex.Float(opts.Width)
	}
	if opts.Height > 0 {
		spec.Height = flex.Float(opts.Height)
	}
	return spec
}
