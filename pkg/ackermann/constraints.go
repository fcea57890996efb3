package ackermann

import (
	"fmt"

	"github.com/rmohr/ufelim/pkg/term"
)

// buildConstraints enforces functional consistency: for every pair of
// applications of one declaration, equal arguments imply equal results.
func buildConstraints(groups *Groups) ([]term.Term, error) {
	var constraints []term.Term
	for _, decl := range groups.decls {
		apps := groups.apps[decl.Key()]
		for i := 0; i < len(apps); i++ {
			for j := i + 1; j < len(apps); j++ {
				c, err := consistency(apps[i], apps[j])
				if err != nil {
					return nil, err
				}
				constraints = append(constraints, c)
			}
		}
	}
	return constraints, nil
}

func consistency(a, b *Application) (term.Term, error) {
	if len(a.Args) != len(b.Args) {
		return nil, &MalformedInputError{
			Reason: fmt.Sprintf("applications of %s with %d and %d arguments", a.Formula.Decl().Name, len(a.Args), len(b.Args)),
			Terms:  []term.Term{a.Formula, b.Formula},
		}
	}

	argsEqual := make([]term.Term, len(a.Args))
	for k := range a.Args {
		eq, err := MakeEqual(a.Args[k], b.Args[k])
		if err != nil {
			return nil, withApplication(err, a.Formula)
		}
		argsEqual[k] = eq
	}

	resultsEqual, err := MakeEqual(a.Substitute, b.Substitute)
	if err != nil {
		return nil, withApplication(err, a.Formula)
	}
	// nullary functions are constants, every occurrence denotes the same value
	if len(argsEqual) == 0 {
		return resultsEqual, nil
	}
	return term.Implies(term.And(argsEqual...), resultsEqual), nil
}

// MakeEqual builds the equality of two terms with the operator matching
// their sort: equivalence for Bool, numeric equality for Int and Real,
// bit-vector equality, IEEE equality for floating point and extensional
// equality for arrays.
func MakeEqual(lhs, rhs term.Term) (term.Term, error) {
	ls, rs := lhs.Sort(), rhs.Sort()
	if !ls.Valid() || !ls.Equal(rs) {
		return nil, &UnsupportedTypeError{Left: ls, Right: rs}
	}

	var kind term.DeclKind
	switch ls.Kind() {
	case term.SortBool:
		return term.Iff(lhs, rhs), nil
	case term.SortInt, term.SortReal:
		kind = term.DeclNumEq
	case term.SortBitVec:
		kind = term.DeclBVEq
	case term.SortFloat:
		kind = term.DeclFPEq
	case term.SortArray:
		kind = term.DeclArrayEq
	default:
		return nil, &UnsupportedTypeError{Left: ls, Right: rs}
	}
	eq, err := term.Op(kind, lhs, rhs)
	if err != nil {
		return nil, &UnsupportedTypeError{Left: ls, Right: rs}
	}
	return eq, nil
}

func withApplication(err error, app term.Term) error {
	if ute, ok := err.(*UnsupportedTypeError); ok && ute.Application == nil {
		ute.Application = app
	}
	return err
}
