package main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/subfx/lint"
	"github.com/spf13/cobra"
)

var errLint = errors.New("substep markup has errors")

var lintCmd = &cobra.Command{
	Use:   "lint FILE",
	Short: "Check the substep markup of a presentation",
	Long: `Reports unpaired from/to windows, "only" effects combined with windows of the
same class, and style declarations which do not parse. Exits non-zero if any
finding is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, conf, err := load(cmd, args[0])
		if err != nil {
			return err
		}
		result := lint.Check(doc, conf)
		for _, f := range lint.Findings(result) {
			fmt.Fprintln(cmd.OutOrStdout(), f.Error())
		}
		if lint.HasErrors(result) {
			cmd.SilenceUsage = true
			return errLint
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
