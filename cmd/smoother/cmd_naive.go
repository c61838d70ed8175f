package main

import (
	"fmt"

	smoother "github.com/aouyang1/go-smoother"
	"github.com/spf13/cobra"
)

func newNaiveCommand() *cobra.Command {
	var (
		format    string
		outputDir string
		noRender  bool
	)
	cmd := &cobra.Command{
		Use:   "naive",
		Short: "Score naive baselines and chart the input data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			s, err := smoother.New(nil, &smoother.Options{
				OutputDir:     outputDir,
				DisableRender: noRender,
			})
			if err != nil {
				return err
			}
			nr, err := s.Naive()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if format == "json" {
				out, err := nr.JSON()
				if err != nil {
					return fmt.Errorf("unable to encode report, %w", err)
				}
				_, err = fmt.Fprintln(w, string(out))
				return err
			}
			return nr.TablePrint(w, "", "  ")
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or json")
	cmd.Flags().StringVarP(&outputDir, "out", "o", ".", "Directory charts are written under")
	cmd.Flags().BoolVar(&noRender, "no-render", false, "Skip writing charts")

	return cmd
}
