package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/matzehuels/boxflow/pkg/cache"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the layout and artifact cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached layout and artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cc, err := c.openCache(ctx, false)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer cc.Close()

			clearer, ok := cc.(cache.Clearer)
			if !ok {
				printWarning("The %s backend cannot be cleared", c.cacheLocation(cc))
				return nil
			}
			if err := clearer.Clear(ctx); err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			printSuccess("Cache cleared")
			printDetail("%s", c.cacheLocation(cc))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache lives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cc, err := c.openCache(cmd.Context(), false)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer cc.Close()

			fmt.Println(c.cacheLocation(cc))
			return nil
		},
	}
}

// cacheLocation describes cc: the directory of a file cache, "disabled" for
// the null cache, otherwise the cache URL with any password redacted.
func (c *CLI) cacheLocation(cc cache.Cache) string {
	for {
		u, ok := cc.(interface{ Unwrap() cache.Cache })
		if !ok {
			break
		}
		cc = u.Unwrap()
	}

	switch cc := cc.(type) {
	case *cache.FileCache:
		return cc.Dir()
	case *cache.NullCache:
		return "disabled"
	}
	if u, err := url.Parse(c.cacheURL); err == nil {
		return u.Redacted()
	}
	return c.cacheURL
}
