// SPDX-License-Identifier: MIT

package main

import (
	"context"

	"github.com/spf13/cobra"
)

func newRootCmd(ctx context.Context, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "nullnet",
		Short:         "Degree-preserving network permutation by double-edge swaps.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newPermuteCmd(ctx), newGenerateCmd())

	return root
}
