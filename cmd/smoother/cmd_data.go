package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aouyang1/go-smoother/metrics"
	"github.com/aouyang1/go-smoother/timedataset"
	"github.com/spf13/cobra"
)

func newDataCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "data",
		Short: "Print the embedded monthly sales series",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds := timedataset.Sales()
			trend, err := metrics.TrendAverage(ds.Y)
			if err != nil {
				return fmt.Errorf("unable to compute trend, %w", err)
			}

			tbl := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', tabwriter.AlignRight)
			if _, err := fmt.Fprintf(tbl, "Month\tSales\tWindow\t\n"); err != nil {
				return err
			}
			for i := range ds.Y {
				window := "train"
				if i >= timedataset.TrainLen {
					window = "test"
				}
				if _, err := fmt.Fprintf(tbl, "%s\t%.0f\t%s\t\n", ds.T[i].Format("2006-01"), ds.Y[i], window); err != nil {
					return err
				}
			}
			if err := tbl.Flush(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Average monthly change: %.2f\n", trend)
			return err
		},
	}
}
