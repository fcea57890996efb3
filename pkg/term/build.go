package term

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIllTyped = errors.New("ill-typed term")

// SortError reports an attempt to build a node whose operands do not fit the
// operator's signature.
type SortError struct {
	Op     string
	Sorts  []Sort
	Reason string
}

func (e *SortError) Error() string {
	sorts := make([]string, len(e.Sorts))
	for i, s := range e.Sorts {
		sorts[i] = s.String()
	}
	return fmt.Sprintf("%s applied to (%s): %s", e.Op, strings.Join(sorts, " "), e.Reason)
}

func (e *SortError) Unwrap() error {
	return ErrIllTyped
}

func sortsOf(args []Term) []Sort {
	sorts := make([]Sort, len(args))
	for i, a := range args {
		sorts[i] = a.Sort()
	}
	return sorts
}

func must[T any](t T, err error) T {
	if err != nil {
		panic(err)
	}
	return t
}

// CheckApply verifies that args match the signature of decl.
func CheckApply(decl *FuncDecl, args []Term) error {
	if len(args) != len(decl.Args) {
		return &SortError{Op: decl.Name, Sorts: sortsOf(args), Reason: fmt.Sprintf("expected %d arguments", len(decl.Args))}
	}
	for i, a := range args {
		if !a.Sort().Equal(decl.Args[i]) {
			return &SortError{Op: decl.Name, Sorts: sortsOf(args), Reason: fmt.Sprintf("argument %d must be %s", i, decl.Args[i])}
		}
	}
	return nil
}

// TryApply builds an application of decl, which may be interpreted or not.
func TryApply(decl *FuncDecl, args ...Term) (*Application, error) {
	if !decl.Return.Valid() {
		return nil, &SortError{Op: decl.Name, Reason: "invalid return sort"}
	}
	if err := CheckApply(decl, args); err != nil {
		return nil, err
	}
	return newApplication(decl, args), nil
}

// Apply builds an application of decl and panics if the arguments do not
// match its signature.
func Apply(decl *FuncDecl, args ...Term) *Application {
	return must(TryApply(decl, args...))
}

// Op builds an application of an interpreted operator, deriving the
// declaration from the operand sorts.
func Op(kind DeclKind, args ...Term) (*Application, error) {
	sorts := sortsOf(args)
	ret, err := signature(kind, sorts)
	if err != nil {
		return nil, err
	}
	return newApplication(interpreted(kind, ret, sorts...), args), nil
}

func signature(kind DeclKind, sorts []Sort) (Sort, error) {
	fail := func(reason string) (Sort, error) {
		return Sort{}, &SortError{Op: kind.String(), Sorts: sorts, Reason: reason}
	}
	same := func() bool {
		for _, s := range sorts[1:] {
			if !s.Equal(sorts[0]) {
				return false
			}
		}
		return true
	}
	of := func(k SortKind) bool {
		for _, s := range sorts {
			if s.Kind() != k {
				return false
			}
		}
		return true
	}

	switch kind {
	case DeclUF:
		return fail("uninterpreted functions need a declaration")
	case DeclNumEq, DeclLt, DeclLe:
		if len(sorts) != 2 || !sorts[0].IsNumeric() || !same() {
			return fail("expected two numeric operands of the same sort")
		}
		return Bool, nil
	case DeclBVEq:
		if len(sorts) != 2 || !of(SortBitVec) || !same() {
			return fail("expected two bit-vectors of the same width")
		}
		return Bool, nil
	case DeclFPEq:
		if len(sorts) != 2 || !of(SortFloat) || !same() {
			return fail("expected two floating-point operands of the same format")
		}
		return Bool, nil
	case DeclArrayEq:
		if len(sorts) != 2 || !of(SortArray) || !same() {
			return fail("expected two arrays of the same sort")
		}
		return Bool, nil
	case DeclAdd, DeclSub, DeclMul:
		if len(sorts) < 2 || !sorts[0].IsNumeric() || !same() {
			return fail("expected numeric operands of the same sort")
		}
		return sorts[0], nil
	case DeclBVAdd, DeclBVAnd, DeclBVOr, DeclBVXor:
		if len(sorts) != 2 || !of(SortBitVec) || !same() {
			return fail("expected two bit-vectors of the same width")
		}
		return sorts[0], nil
	case DeclBVNot:
		if len(sorts) != 1 || !of(SortBitVec) {
			return fail("expected one bit-vector")
		}
		return sorts[0], nil
	case DeclSelect:
		if len(sorts) != 2 || sorts[0].Kind() != SortArray || !sorts[0].Index().Equal(sorts[1]) {
			return fail("expected an array and an index")
		}
		return sorts[0].Elem(), nil
	case DeclStore:
		if len(sorts) != 3 || sorts[0].Kind() != SortArray || !sorts[0].Index().Equal(sorts[1]) || !sorts[0].Elem().Equal(sorts[2]) {
			return fail("expected an array, an index and an element")
		}
		return sorts[0], nil
	case DeclIte:
		if len(sorts) != 3 || !sorts[0].IsBool() || !sorts[1].Equal(sorts[2]) {
			return fail("expected a condition and two branches of the same sort")
		}
		return sorts[1], nil
	}
	return fail("unknown operator")
}

func NumEq(a, b Term) *Application   { return must(Op(DeclNumEq, a, b)) }
func BVEq(a, b Term) *Application    { return must(Op(DeclBVEq, a, b)) }
func FPEq(a, b Term) *Application    { return must(Op(DeclFPEq, a, b)) }
func ArrayEq(a, b Term) *Application { return must(Op(DeclArrayEq, a, b)) }
func Add(args ...Term) *Application  { return must(Op(DeclAdd, args...)) }
func Sub(args ...Term) *Application  { return must(Op(DeclSub, args...)) }
func Mul(args ...Term) *Application  { return must(Op(DeclMul, args...)) }
func Lt(a, b Term) *Application      { return must(Op(DeclLt, a, b)) }
func Le(a, b Term) *Application      { return must(Op(DeclLe, a, b)) }
func BVAdd(a, b Term) *Application   { return must(Op(DeclBVAdd, a, b)) }
func BVAnd(a, b Term) *Application   { return must(Op(DeclBVAnd, a, b)) }
func BVOr(a, b Term) *Application    { return must(Op(DeclBVOr, a, b)) }
func BVXor(a, b Term) *Application   { return must(Op(DeclBVXor, a, b)) }
func BVNot(a Term) *Application      { return must(Op(DeclBVNot, a)) }
func Select(a, i Term) *Application  { return must(Op(DeclSelect, a, i)) }
func Store(a, i, v Term) *Application {
	return must(Op(DeclStore, a, i, v))
}
func Ite(c, a, b Term) *Application {
	return must(Op(DeclIte, c, a, b))
}

// Connect builds a connective without simplification.
func Connect(op ConnOp, operands ...Term) (*Connective, error) {
	fail := func(reason string) (*Connective, error) {
		return nil, &SortError{Op: op.String(), Sorts: sortsOf(operands), Reason: reason}
	}
	for _, o := range operands {
		if !o.Sort().IsBool() {
			return fail("operands must be Bool")
		}
	}
	switch op {
	case OpAnd, OpOr:
		if len(operands) == 0 {
			return fail("expected at least one operand")
		}
	case OpNot:
		if len(operands) != 1 {
			return fail("expected one operand")
		}
	case OpImplies, OpIff, OpXor:
		if len(operands) != 2 {
			return fail("expected two operands")
		}
	default:
		return fail("unknown connective")
	}
	return &Connective{id: nextID(), op: op, operands: append([]Term(nil), operands...)}, nil
}

// And conjoins operands. No operands yield true, a single operand is
// returned as is.
func And(operands ...Term) Term {
	switch len(operands) {
	case 0:
		return True()
	case 1:
		return must(operands[0], CheckBool(operands[0]))
	}
	return must(Connect(OpAnd, operands...))
}

// Or disjoins operands. No operands yield false, a single operand is
// returned as is.
func Or(operands ...Term) Term {
	switch len(operands) {
	case 0:
		return False()
	case 1:
		return must(operands[0], CheckBool(operands[0]))
	}
	return must(Connect(OpOr, operands...))
}

func Not(a Term) *Connective        { return must(Connect(OpNot, a)) }
func Implies(a, b Term) *Connective { return must(Connect(OpImplies, a, b)) }
func Iff(a, b Term) *Connective     { return must(Connect(OpIff, a, b)) }
func Xor(a, b Term) *Connective     { return must(Connect(OpXor, a, b)) }

func CheckBool(ts ...Term) error {
	for _, t := range ts {
		if !t.Sort().IsBool() {
			return &SortError{Op: "bool", Sorts: sortsOf(ts), Reason: fmt.Sprintf("%s is not Bool", t)}
		}
	}
	return nil
}

func Quantify(kind QuantKind, bound []*Variable, body Term) (*Quantifier, error) {
	if err := CheckBool(body); err != nil {
		return nil, err
	}
	if kind != Forall && kind != Exists {
		return nil, &SortError{Op: kind.String(), Reason: "unknown quantifier"}
	}
	return &Quantifier{id: nextID(), kind: kind, bound: append([]*Variable(nil), bound...), body: body}, nil
}

func ForAll(bound []*Variable, body Term) *Quantifier {
	return must(Quantify(Forall, bound, body))
}

func Exist(bound []*Variable, body Term) *Quantifier {
	return must(Quantify(Exists, bound, body))
}
