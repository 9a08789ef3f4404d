package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diagv/core"
	"github.com/katalvlaran/diagv/ordering"
)

var rootCmd = &cobra.Command{
	Use:   "diagv",
	Short: "Render directed graphs as ASCII box-and-line diagrams",
	Long: `diagv provides two features:
- Renders a graph parsed from DOT text into an ASCII diagram.
- Renders one of a small set of built-in generated graphs, for demos
  and regression fixtures.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the command tree and returns any error it produced.
func Execute() error {
	return rootCmd.Execute()
}

// orderStrategies names the --order flag's accepted values, independent of
// any particular label type.
var orderStrategies = []string{"original", "alphabetical", "degree"}

func validOrderStrategy(name string) bool {
	for _, s := range orderStrategies {
		if s == name {
			return true
		}
	}

	return false
}

// resolveOrder applies the named ordering strategy to g, returning an error
// naming the bad value if strategy isn't one of orderStrategies.
func resolveOrder(g *core.Graph[string], strategy string) ([]string, error) {
	switch strategy {
	case "original":
		return ordering.Original(g), nil
	case "alphabetical":
		return ordering.Alphabetical(g), nil
	case "degree":
		return ordering.Degree(g), nil
	default:
		sorted := append([]string(nil), orderStrategies...)
		sort.Strings(sorted)
		return nil, fmt.Errorf("diagv: unknown --order %q, want one of %v", strategy, sorted)
	}
}
