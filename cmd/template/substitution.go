package template

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rmohr/ufelim/pkg/ackermann"
)

// Render prints which fresh variable replaced which application, followed
// by a summary of the elimination.
func Render(writer io.Writer, result *ackermann.Result) error {
	tabWriter := tabwriter.NewWriter(writer, 0, 8, 1, '\t', 0)
	if _, err := fmt.Fprintln(tabWriter, "Variable\tSort\tApplication"); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	if _, err := fmt.Fprintln(tabWriter, "Replacing:\t\t"); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	for _, app := range result.Substitution.Applications() {
		if _, err := fmt.Fprintf(tabWriter, " %v\t%v\t%v\n", app.Substitute.Name(), app.Substitute.Sort(), app.Formula); err != nil {
			return fmt.Errorf("failed to write entry: %v", err)
		}
	}
	if _, err := fmt.Fprintln(tabWriter, "\t\t\nElimination Summary:\t\t"); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	if _, err := fmt.Fprintf(tabWriter, "Replaced %s\t\t\n", plural(result.Substitution.Len(), "application")); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	if _, err := fmt.Fprintf(tabWriter, "Added %s\t\t\n", plural(len(result.Constraints), "constraint")); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	if _, err := fmt.Fprintf(tabWriter, "Nesting depth: %d\t\t\n", result.Depth); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	if err := tabWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %v", err)
	}
	return nil
}

// RenderModel prints the value each application takes in a model.
func RenderModel(writer io.Writer, assignments []ackermann.Assignment) error {
	tabWriter := tabwriter.NewWriter(writer, 0, 8, 1, '\t', 0)
	if _, err := fmt.Fprintln(tabWriter, "Application\tValue"); err != nil {
		return fmt.Errorf("failed to write header: %v", err)
	}
	for _, a := range assignments {
		if _, err := fmt.Fprintf(tabWriter, " %v\t%v\n", a.Application.Formula, a.Value); err != nil {
			return fmt.Errorf("failed to write entry: %v", err)
		}
	}
	if err := tabWriter.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %v", err)
	}
	return nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
