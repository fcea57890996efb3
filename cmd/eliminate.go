package main

import (
	"github.com/rmohr/ufelim/cmd/template"
	"github.com/rmohr/ufelim/pkg/term"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type eliminateOpts struct {
	in           string
	substitution bool
}

var eliminateopts = eliminateOpts{}

func NewEliminateCmd() *cobra.Command {

	eliminateCmd := &cobra.Command{
		Use:   "eliminate",
		Short: "replaces uninterpreted functions by fresh variables and consistency constraints",
		Long:  `reads a formula document and prints an equisatisfiable SMT-LIB script without uninterpreted functions`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, err := loadFormula(eliminateopts.in)
			if err != nil {
				return err
			}
			logrus.Info("Eliminating uninterpreted functions.")
			result, err := newEliminator(config).Eliminate(formula)
			if err != nil {
				return err
			}
			if err := term.WriteScript(cmd.OutOrStdout(), result.Formula); err != nil {
				return err
			}
			if eliminateopts.substitution {
				return template.Render(cmd.ErrOrStderr(), result)
			}
			return nil
		},
	}

	eliminateCmd.Flags().StringVarP(&eliminateopts.in, "input", "i", "formula.yaml", "formula document to read")
	eliminateCmd.Flags().BoolVarP(&eliminateopts.substitution, "substitution", "s", false, "print the replaced applications to stderr")
	return eliminateCmd
}
