package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diagv/dot"
	"github.com/katalvlaran/diagv/render"
)

var renderFlags = struct {
	source *string
	order  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "render [dot file path]",
		Short:   "Render a graph described in DOT text",
		Example: `  cat graph.dot | diagv render`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runRender,
	}
	renderFlags.source = cmd.Flags().StringP("source", "s", "", "DOT file path (default stdin, overridden by a positional argument)")
	renderFlags.order = cmd.Flags().StringP("order", "o", "original", "node order: original|alphabetical|degree")
	rootCmd.AddCommand(cmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	path := *renderFlags.source
	if len(args) == 1 {
		path = args[0]
	}

	src := os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("diagv: cannot open %s: %w", path, err)
		}
		defer f.Close()
		src = f
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("diagv: cannot read source: %w", err)
	}

	g, _, err := dot.Parse(string(data))
	if err != nil {
		return err
	}

	order, err := resolveOrder(g, *renderFlags.order)
	if err != nil {
		return err
	}

	out, err := render.Render(g, order)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)

	return nil
}
