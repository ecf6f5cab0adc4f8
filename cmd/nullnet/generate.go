// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nullnet/builder"
	"github.com/katalvlaran/nullnet/edgelist"
)

type generateFlags struct {
	kind   string
	n      int
	d      int
	p      float64
	seed   int64
	offset int
	output string
}

func newGenerateCmd() *cobra.Command {
	f := &generateFlags{}
	kinds := make([]string, 0, len(builder.Kinds()))
	for _, k := range builder.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic network as an edge list.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctor, err := builder.FromKind(builder.Kind(f.kind), f.n, f.d, f.p)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(
				[]builder.BuilderOption{builder.WithSeed(f.seed), builder.WithIDOffset(f.offset)},
				ctor,
			)
			if err != nil {
				return err
			}

			if f.output == "" || f.output == "-" {
				return edgelist.Write(cmd.OutOrStdout(), g.Edges())
			}
			if err = edgelist.WriteFile(f.output, g.Edges()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d nodes, %d edges to %s\n", g.NodeCount(), g.EdgeCount(), f.output)

			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.kind, "kind", string(builder.KindCycle), "topology: "+strings.Join(kinds, ", "))
	fs.IntVarP(&f.n, "nodes", "n", 10, "number of nodes (rim size for wheel)")
	fs.IntVarP(&f.d, "degree", "d", 3, "degree for regular graphs")
	fs.Float64VarP(&f.p, "prob", "p", 0.1, "edge probability for sparse graphs")
	fs.Int64VarP(&f.seed, "seed", "s", 1, "random seed for regular and sparse graphs")
	fs.IntVar(&f.offset, "offset", 1, "ID of the first node")
	fs.StringVarP(&f.output, "output", "o", "-", "output file, - for stdout")

	return cmd
}
