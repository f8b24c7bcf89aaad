// Command ttl2nt reads a Turtle file and prints its triples, one per line,
// in the canonical display form.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvasir-rdf/turtlegraph/rdf/ttl"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "ttl2nt FILE",
		Short: "Translate a Turtle document into plain triples",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			var opts []ttl.Option
			if base != "" {
				opts = append(opts, ttl.WithBase(base))
			}
			g, err := ttl.NewGraph(string(src), opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			triples := g.Parse()
			fmt.Fprintln(cmd.OutOrStdout(), triples.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "base IRI to resolve relative references against")
	return cmd
}
