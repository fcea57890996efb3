package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/rmohr/ufelim/pkg/ackermann"
	"github.com/rmohr/ufelim/pkg/fresh"
	"github.com/spf13/cobra"
)

type depthOpts struct {
	in string
}

var depthopts = depthOpts{}

func NewDepthCmd() *cobra.Command {

	depthCmd := &cobra.Command{
		Use:   "depth",
		Short: "reports nesting depth and applications of uninterpreted functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, err := loadFormula(depthopts.in)
			if err != nil {
				return err
			}
			groups := ackermann.FindApplications(formula, fresh.NewGenerator(config.FreshPrefix))
			report := toReport(ackermann.NestingDepth(formula), groups)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 1, '\t', 0)
			fmt.Fprintf(w, "Nesting depth: %d\t\n", report.Depth)
			fmt.Fprintln(w, "Function\tApplications")
			for _, name := range sortedKeys(report.Applications) {
				fmt.Fprintf(w, " %s\t%d\n", name, report.Applications[name])
			}
			return w.Flush()
		},
	}

	depthCmd.Flags().StringVarP(&depthopts.in, "input", "i", "formula.yaml", "formula document to read")
	return depthCmd
}
