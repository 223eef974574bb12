package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxflow/pkg/errors"
	"github.com/matzehuels/boxflow/pkg/pipeline"
)

// renderCommand creates the render command for drawing layouts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		formats string
		scale   float64
		labels  bool
		flags   layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "render <tree|layout.json>",
		Short: "Render a tree description or layout document",
		Long: `Render a tree description or layout document.

Formats (comma-separated with -f):
  svg    boxes as SVG
  png    boxes as PNG (--scale sets the resolution multiplier)
  dot    node hierarchy as Graphviz DOT
  graph  node hierarchy laid out by Graphviz, as SVG
  json   the layout document

Files are written as <base><ext>, where base defaults to the input path
without its extension. With a single format, -o may name the file itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.layoutOptions(cmd, flags)
			opts.Formats = parseFormats(formats)
			opts.Scale = scale
			if !cmd.Flags().Changed("scale") && c.Config.Scale > 0 {
				opts.Scale = c.Config.Scale
			}
			opts.Labels = labels
			return c.runRender(cmd.Context(), args[0], output, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: input without extension)")
	cmd.Flags().StringVarP(&formats, "format", "f", pipeline.FormatSVG, "output formats: "+strings.Join(pipeline.ValidFormats, ","))
	cmd.Flags().Float64Var(&scale, "scale", pipeline.DefaultScale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&labels, "labels", false, "draw node labels")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, input, output string, flags layoutFlags, opts pipeline.Options) error {
	if err := opts.ValidateForRender(); err != nil {
		return err
	}
	if output != "" {
		if err := errors.ValidatePath(output); err != nil {
			return err
		}
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	l, layoutHit, err := c.loadLayout(ctx, runner, input, opts)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, "Rendering "+strings.Join(opts.Formats, ", ")+"...")
	spinner.Start()
	artifacts, renderHit, err := runner.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	paths := artifactPaths(input, output, opts.Formats)
	for _, f := range opts.Formats {
		if err := writeArtifact(paths[f], artifacts[f]); err != nil {
			return err
		}
	}
	prog.done("wrote artifacts", "count", len(opts.Formats))

	printSuccess("Rendered %d artifact(s)", len(opts.Formats))
	for _, f := range opts.Formats {
		printFile(paths[f])
	}
	printStats(len(l.Nodes), maxDepth(l), layoutHit && renderHit)
	return nil
}

// artifactPaths picks an output file for each format. A single format with
// an output that already has an extension is written to output verbatim.
func artifactPaths(input, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && filepath.Ext(output) != "" {
		paths[formats[0]] = output
		return paths
	}

	base := output
	if base == "" {
		base = basePath(input)
	}
	for _, f := range formats {
		paths[f] = base + pipeline.Extensions[f]
	}
	return paths
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
