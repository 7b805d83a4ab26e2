package main

import (
	"fmt"
	"rvcc/internal/compiler"
	"rvcc/internal/config"
	"rvcc/internal/logger"
	"rvcc/pkg/color"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Main entry point for the rvcc compiler.
func main() {
	logger.Init(false, false)

	if err := newRootCmd().Execute(); err != nil {
		log.Fatal("Compilation failed", "error", err)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Default()
	options := compiler.New(cfg)
	configFile := ""

	cmd := &cobra.Command{
		Use:   "rvcc [flags] <expression>",
		Short: "Compile an integer +/- expression to assembly",
		Long: `rvcc reads one expression such as "12 + 34 - 5" and prints an assembly
program that returns its value as the process exit status.

The expression must be passed as a single argument; quote it in the shell.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				loaded, err := config.Load(configFile)
				if err != nil {
					return err
				}
				options.ApplyConfig(loaded, cmd.Flags().Changed)
			}

			logger.Init(options.Verbose, options.NoColor)
			if options.NoColor {
				color.EnableColor(false)
			}
			if configFile != "" {
				log.Debug("Loaded config", "file", configFile)
			}

			options.Expression = args[0]
			return options.Compile()
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&options.Verbose, "verbose", "v", cfg.Verbose, "Verbose mode")
	flags.BoolVarP(&options.ShouldInterpret, "run", "r", false, "Run with interpreter")
	flags.BoolVarP(&options.ShouldCompile, "compile", "c", false, "Compile to binary")
	flags.BoolVarP(&options.NoColor, "no-color", "n", !cfg.Color, "No color")
	flags.StringVarP(&options.TargetArch, "arch", "a", cfg.Target,
		fmt.Sprintf("Target architecture (%s)", strings.Join(compiler.Targets, ", ")))
	flags.StringVarP(&options.OutputFile, "output", "o", cfg.Output, "Output binary name")
	flags.IntVar(&options.MaxSteps, "max-steps", cfg.MaxSteps, "Interpreter step limit (0 = unlimited)")
	flags.StringVar(&configFile, "config", "", "CUE config file")

	return cmd
}
