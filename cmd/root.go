package main

import (
	"fmt"
	"os"

	"github.com/rmohr/ufelim/pkg/ackermann"
	"github.com/rmohr/ufelim/pkg/api/ufelim"
	"github.com/rmohr/ufelim/pkg/fresh"
	"github.com/rmohr/ufelim/pkg/input"
	"github.com/rmohr/ufelim/pkg/term"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type rootOpts struct {
	config   string
	logLevel string
}

var rootopts = rootOpts{}

var config = input.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "ufelim",
	Short: "ufelim removes uninterpreted functions from first-order formulas",
	Long: `The tool applies Ackermann's reduction: every application of an uninterpreted function is replaced by a fresh variable
and functional consistency constraints are added, so that the result is equisatisfiable and free of uninterpreted functions`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := input.LoadConfig(rootopts.config)
		if err != nil {
			return err
		}
		config = loaded
		if cmd.Flags().Changed("log-level") {
			config.LogLevel = rootopts.logLevel
		}
		level, err := logrus.ParseLevel(config.LogLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		return nil
	},
}

func Execute() {
	rootCmd.PersistentFlags().StringVarP(&rootopts.config, "config", "c", "", "config file, looked up in the XDG config directories if not set")
	rootCmd.PersistentFlags().StringVar(&rootopts.logLevel, "log-level", logrus.InfoLevel.String(), "log level (panic, fatal, error, warning, info, debug, trace)")
	rootCmd.AddCommand(NewEliminateCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewDepthCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func loadFormula(file string) (term.Term, error) {
	logrus.Infof("Loading formula from %s.", file)
	doc, err := input.LoadFormulaFile(file)
	if err != nil {
		return nil, err
	}
	return input.Build(doc)
}

func newEliminator(config *ufelim.Config) *ackermann.Eliminator {
	return ackermann.New(
		ackermann.WithGenerator(fresh.NewGenerator(config.FreshPrefix)),
		ackermann.WithLogger(logrus.WithField("prefix", config.FreshPrefix)),
	)
}
