package scene

import (
	"fmt"

	"github.com/matzehuels/boxflow/pkg/errors"
	"github.com/matzehuels/boxflow/pkg/flex"
)

// Validate checks the document-level rules for spec:
//   - the root has a non-negative width and height
//   - explicit ids are well-formed and unique
//   - every keyword field names a known value
//
// Violations are INVALID_INPUT errors.
func Validate(spec flex.NodeSpec) error {
	if spec.Width == nil || spec.Height == nil {
		return errors.New(errors.ErrCodeInvalidInput, "root width and height are required")
	}
	if *spec.Width < 0 || *spec.Height < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "root size %gx%g must not be negative", *spec.Width, *spec.Height)
	}
	return validateNode(spec, "root", make(map[string]string))
}

// validateNode walks spec in pre-order. seen maps ids to the path where they
// first appeared.
func validateNode(spec flex.NodeSpec, path string, seen map[string]string) error {
	if err := errors.ValidateID(spec.ID); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "%s: %s", path, errors.UserMessage(err))
	}
	if spec.ID != "" && path != "root" {
		if first, dup := seen[spec.ID]; dup {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate node id %q at %s (first used at %s)", spec.ID, path, first)
		}
		seen[spec.ID] = path
	}
	if err := validateKeywords(spec); err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "%s: %v", path, err)
	}
	for i, child := range spec.Children {
		if err := validateNode(child, fmt.Sprintf("%s.children[%d]", path, i), seen); err != nil {
			return err
		}
	}
	return nil
}

func validateKeywords(spec flex.NodeSpec) error {
	checks := []struct {
		field, value string
		ok           func(string) bool
	}{
		{"align_self", spec.AlignSelf, func(s string) bool { _, ok := flex.ParseAlign(s); return ok }},
		{"direction", spec.Direction, func(s string) bool { _, ok := flex.ParseDirection(s); return ok }},
		{"wrap", spec.Wrap, func(s string) bool { _, ok := flex.ParseWrap(s); return ok }},
		{"justify_content", spec.JustifyContent, func(s string) bool { _, ok := flex.ParseJustify(s); return ok }},
		{"align_items", spec.AlignItems, func(s string) bool { _, ok := flex.ParseAlign(s); return ok }},
		{"align_content", spec.AlignContent, func(s string) bool { _, ok := flex.ParseAlignContent(s); return ok }},
	}
	for _, c := range checks {
		if c.value != "" && !c.ok(c.value) {
			return fmt.Errorf("unknown %s %q", c.field, c.value)
		}
	}
	return nil
}
