package main

import (
	"fmt"
	"sort"

	"github.com/facette/natsort"
	"github.com/spf13/cobra"

	"github.com/wildstyl3r/rootfind/internal/compare"
	"github.com/wildstyl3r/rootfind/internal/config"
	"github.com/wildstyl3r/rootfind/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every problem of a TOML configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		outputDir, _ := cmd.Flags().GetString("output")

		cfg, meta, err := config.LoadConfig(input)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("output") {
			cfg.OutputDir = outputDir
		}

		names := make([]string, 0, len(cfg.Problems))
		for name := range cfg.Problems {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool { return natsort.Compare(names[i], names[j]) })

		out := cmd.OutOrStdout()
		failed := 0
		for _, name := range names {
			parameters := cfg.Problems[name]
			if err := parameters.CheckAndUnify(name, &cfg, &meta); err != nil {
				logger.Error("skipping problem", "problem", name, "error", err)
				failed++
				continue
			}
			problem, err := compare.FromParameters(name, &parameters)
			if err != nil {
				logger.Error("skipping problem", "problem", name, "error", err)
				failed++
				continue
			}
			methods, _ := parameters.MethodList()

			outcomes, err := compare.Run(cmd.Context(), problem, methods, parameters.SolverConfig(), logger)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\n%s: f(x) = %s\n", name, problem.Function.Expression)
			if err := report.Table(out, outcomes); err != nil {
				return err
			}

			if cfg.OutputDir != "" {
				paths, err := report.SaveProblem(cfg.OutputDir, parameters.MakeDir, problem, outcomes)
				if err != nil {
					logger.Error("unable to save results", "problem", name, "error", err)
					failed++
					continue
				}
				logger.Info("results saved", "problem", name, "files", paths)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d problems failed", failed, len(names))
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringP("input", "i", "problems", "problem configuration in toml format")
	runCmd.Flags().StringP("output", "o", "", "output directory, overrides OutputDir")
	rootCmd.AddCommand(runCmd)
}
