package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/agglom/pairs"
	"github.com/katalvlaran/agglom/point"
)

func newOrderCmd() *cobra.Command {
	var (
		input string
		head  int
	)

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Print the head of the global merge order",
		Long: `Prints the first --head candidate pairs in the order the clustering consumes
them: point indexes, integer distance and both points. Useful to inspect ties.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := input
			if path == "" {
				var err error
				if path, err = point.Locate(); err != nil {
					return err
				}
			}
			pts, err := point.Load(path)
			if err != nil {
				return err
			}

			order := pairs.NewOrder(pairs.Build(pts))
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "I\tJ\tDIST\tA\tB")
			for k := 0; head < 0 || k < head; k++ {
				p, ok := order.Next()
				if !ok {
					break
				}
				fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\n", p.I, p.J, p.Dist, pts[p.I], pts[p.J])
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "", "points file (default: probe the standard input locations)")
	cmd.Flags().IntVarP(&head, "head", "n", 10, "number of pairs to print; negative prints all")

	return cmd
}
