package main

import (
	"fmt"
	"os"

	"github.com/nvr-ai/go-combiner/calculator"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <operand1> <operator> <operand2>",
		Short: "Evaluate a binary arithmetic expression",
		Long: `Evaluates operand1 operator operand2 on 32-bit floats. Operators are
+, -, *, x, X and /. Quote * to keep the shell from expanding it.`,
		// Negative operands such as -3 must not be taken for flags.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := calculator.Evaluate(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), expr)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
