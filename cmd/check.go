package main

import (
	"fmt"

	"github.com/rmohr/ufelim/cmd/template"
	"github.com/rmohr/ufelim/pkg/sat"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type checkOpts struct {
	in    string
	model bool
}

var checkopts = checkOpts{}

func NewCheckCmd() *cobra.Command {

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "decides a formula over Bool and bit-vectors after elimination",
		Long: `eliminates uninterpreted functions and decides the result with a SAT solver. Only formulas over Bool and
bit-vector sorts with bitwise operators, addition and ite are supported`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, err := loadFormula(checkopts.in)
			if err != nil {
				return err
			}
			result, err := newEliminator(config).Eliminate(formula)
			if err != nil {
				return err
			}
			logrus.Info("Solving the eliminated formula.")
			model, err := sat.Solve(result.Formula)
			if err != nil {
				return err
			}
			if !model.Sat {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "unsat")
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), "sat"); err != nil {
				return err
			}
			if checkopts.model {
				return template.RenderModel(cmd.OutOrStdout(), result.Translate(model.Values))
			}
			return nil
		},
	}

	checkCmd.Flags().StringVarP(&checkopts.in, "input", "i", "formula.yaml", "formula document to read")
	checkCmd.Flags().BoolVarP(&checkopts.model, "model", "m", true, "print the values of the applications if satisfiable")
	return checkCmd
}
