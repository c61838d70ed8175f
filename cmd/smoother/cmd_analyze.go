package main

import (
	"fmt"
	"io"
	"strings"

	smoother "github.com/aouyang1/go-smoother"
	"github.com/aouyang1/go-smoother/gridsearch"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

type analyzeFlags struct {
	method     string
	format     string
	outputDir  string
	parallel   int
	noRender   bool
	cpuProfile bool
}

func newAnalyzeCommand() *cobra.Command {
	f := &analyzeFlags{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Grid search smoothing weights and report the best fit",
		Long: `Searches the smoothing weights of each method over a fixed grid against the
held out final season, then forecasts one season past the data with the best
weights. Charts of the fit and the forecast are written as html files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, f)
		},
	}

	cmd.Flags().StringVarP(&f.method, "method", "m", "all", "Method to analyze: all, mn or mdm")
	cmd.Flags().StringVarP(&f.format, "format", "f", "table", "Output format: table or json")
	cmd.Flags().StringVarP(&f.outputDir, "out", "o", ".", "Directory charts are written under")
	cmd.Flags().IntVarP(&f.parallel, "parallel", "p", 0, "Grid search workers, 0 uses all CPUs")
	cmd.Flags().BoolVar(&f.noRender, "no-render", false, "Skip writing charts")
	cmd.Flags().BoolVar(&f.cpuProfile, "cpuprofile", false, "Write a CPU profile to the output directory")

	return cmd
}

func validateFormat(format string) error {
	if format != "table" && format != "json" {
		return fmt.Errorf("unsupported format %q: must be table or json", format)
	}
	return nil
}

func selectMethods(name string) ([]*smoother.Method, error) {
	if strings.EqualFold(name, "all") {
		return smoother.Methods()
	}
	m, err := smoother.MethodByName(name)
	if err != nil {
		return nil, err
	}
	return []*smoother.Method{m}, nil
}

func runAnalyze(cmd *cobra.Command, f *analyzeFlags) error {
	if err := validateFormat(f.format); err != nil {
		return err
	}
	methods, err := selectMethods(f.method)
	if err != nil {
		return err
	}

	if f.cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(f.outputDir)).Stop()
	}

	s, err := smoother.New(nil, &smoother.Options{
		OutputDir:     f.outputDir,
		DisableRender: f.noRender,
		SearchOptions: &gridsearch.Options{Parallelism: f.parallel},
	})
	if err != nil {
		return err
	}

	reports, err := s.AnalyzeAll(cmd.Context(), methods)
	if err != nil {
		return err
	}
	return printReports(cmd.OutOrStdout(), f.format, reports)
}

func printReports(w io.Writer, format string, reports []*smoother.Report) error {
	for _, r := range reports {
		if format == "json" {
			out, err := r.JSON()
			if err != nil {
				return fmt.Errorf("unable to encode report, %w", err)
			}
			if _, err := fmt.Fprintln(w, string(out)); err != nil {
				return err
			}
			continue
		}
		if err := r.TablePrint(w, "", "  "); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
