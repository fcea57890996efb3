package sat

import (
	"strings"

	"github.com/crillab/gophersat/bf"
	"github.com/rmohr/ufelim/pkg/term"
	"github.com/sirupsen/logrus"
)

// Model is the outcome of a satisfiability check. Values holds an SMT-LIB
// literal per variable name and is empty if the formula is unsatisfiable.
type Model struct {
	Sat    bool
	Values map[string]string
}

// Solve decides the Bool term t with gophersat.
func Solve(t term.Term) (*Model, error) {
	enc := NewEncoder()
	f, err := enc.Encode(t)
	if err != nil {
		return nil, err
	}
	vars := enc.Variables()
	logrus.Debugf("Encoded %d variables into a propositional formula.", len(vars))

	if len(vars) == 0 {
		// nothing to assign, the formula is a closed term
		return &Model{Sat: f.Eval(map[string]bool{}), Values: map[string]string{}}, nil
	}

	assignment := bf.Solve(f)
	if assignment == nil {
		return &Model{Sat: false, Values: map[string]string{}}, nil
	}
	return &Model{Sat: true, Values: decode(vars, assignment)}, nil
}

// Satisfiable is a shorthand for Solve reporting only the verdict.
func Satisfiable(t term.Term) (bool, error) {
	m, err := Solve(t)
	if err != nil {
		return false, err
	}
	return m.Sat, nil
}

func decode(vars []*term.Variable, assignment map[string]bool) map[string]string {
	values := map[string]string{}
	for _, v := range vars {
		if v.Sort().IsBool() {
			if assignment[boolName(v.Name())] {
				values[v.Name()] = "true"
			} else {
				values[v.Name()] = "false"
			}
			continue
		}
		width := int(v.Sort().Width())
		var sb strings.Builder
		sb.WriteString("#b")
		for i := width - 1; i >= 0; i-- {
			if assignment[bitName(v.Name(), i)] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		values[v.Name()] = sb.String()
	}
	return values
}
