package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxflow/pkg/errors"
	"github.com/matzehuels/boxflow/pkg/pipeline"
	"github.com/matzehuels/boxflow/pkg/scene"
)

// layoutCommand creates the layout command for solving a tree description.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		flags  layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout <tree.{json,toml,hcl}>",
		Short: "Compute a layout document from a tree description",
		Long: `Compute a layout document from a tree description.

The tree is read from a JSON, TOML or HCL file. The result is a layout
document (<input>.layout.json) listing every node with its box relative to
its parent and to the root. Pass -o - to write it to stdout.

--width and --height replace the root size given by the document.
Results are cached; see 'boxflow cache'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, flags, c.layoutOptions(cmd, flags))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, input, output string, flags layoutFlags, opts pipeline.Options) error {
	if output != "" && output != "-" {
		if err := errors.ValidatePath(output); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	l, hit, err := c.loadLayout(ctx, runner, input, opts)
	if err != nil {
		return err
	}

	if output == "-" {
		return scene.WriteLayout(l, os.Stdout)
	}
	if output == "" {
		output = basePath(input) + pipeline.Extensions[pipeline.FormatJSON]
	}
	if err := scene.WriteLayoutFile(l, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(len(l.Nodes), maxDepth(l), hit)
	printNewline()
	printNextStep("Render", "boxflow render "+output)
	return nil
}

// loadLayout returns the layout for input. Layout documents are read as-is;
// tree descriptions are solved through the runner behind a spinner.
func (c *CLI) loadLayout(ctx context.Context, runner *pipeline.Runner, input string, opts pipeline.Options) (scene.Layout, bool, error) {
	if isLayoutDocument(input) {
		l, err := scene.ReadLayoutFile(input)
		if err != nil {
			return scene.Layout{}, false, fmt.Errorf("load layout %s: %w", input, err)
		}
		c.Logger.Debug("read layout document", "path", input, "nodes", len(l.Nodes))
		return l, true, nil
	}

	spec, err := scene.ReadFile(input)
	if err != nil {
		return scene.Layout{}, false, fmt.Errorf("load tree %s: %w", input, err)
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Computing layout for %d nodes...", spec.Count()))
	spinner.Start()
	l, hit, err := runner.ComputeLayoutWithCacheInfo(ctx, spec, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return scene.Layout{}, false, fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return scene.Layout{}, false, ctx.Err()
	}
	return l, hit, nil
}

func isLayoutDocument(path string) bool {
	return strings.HasSuffix(path, pipeline.Extensions[pipeline.FormatJSON])
}

func maxDepth(l scene.Layout) int {
	depth := 0
	for _, n := range l.Nodes {
		depth = max(depth, n.Depth)
	}
	return depth
}
