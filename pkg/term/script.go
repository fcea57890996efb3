package term

import (
	"fmt"
	"io"
	"strings"
)

// DeclareVar renders the declaration of a 0-arity symbol.
func DeclareVar(v *Variable) string {
	return fmt.Sprintf("(declare-fun %s () %s)", v.name, v.sort)
}

// DeclareFun renders the declaration of a function symbol.
func DeclareFun(d *FuncDecl) string {
	params := make([]string, len(d.Args))
	for i, a := range d.Args {
		params[i] = a.String()
	}
	return fmt.Sprintf("(declare-fun %s (%s) %s)", d.Name, strings.Join(params, " "), d.Return)
}

func Assert(t Term) string {
	return fmt.Sprintf("(assert %s)", t)
}

// WriteScript writes an SMT-LIB script declaring every free symbol of the
// assertions and asserting each of them.
func WriteScript(w io.Writer, assertions ...Term) error {
	declared := map[string]bool{}
	var lines []string
	for _, a := range assertions {
		for _, d := range Declarations(a) {
			if !declared[d.Name] {
				declared[d.Name] = true
				lines = append(lines, DeclareFun(d))
			}
		}
		for _, v := range FreeVariables(a) {
			if !declared[v.name] {
				declared[v.name] = true
				lines = append(lines, DeclareVar(v))
			}
		}
	}
	for _, a := range assertions {
		lines = append(lines, Assert(a))
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return fmt.Errorf("failed to write script: %v", err)
		}
	}
	return nil
}
