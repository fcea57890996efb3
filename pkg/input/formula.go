package input

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rmohr/ufelim/pkg/api"
	"github.com/rmohr/ufelim/pkg/term"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"
)

func LoadFormulaFile(file string) (*api.Formula, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ParseFormula(data)
}

// ParseFormula reads a formula document in YAML or JSON.
func ParseFormula(data []byte) (*api.Formula, error) {
	formula := &api.Formula{}
	if err := yaml.Unmarshal(data, formula); err != nil {
		return nil, fmt.Errorf("failed to parse formula: %v", err)
	}
	return formula, nil
}

func WriteFormulaFile(file string, formula *api.Formula) error {
	data, err := yaml.Marshal(formula)
	if err != nil {
		return fmt.Errorf("failed to marshal formula: %v", err)
	}
	return os.WriteFile(file, data, 0666)
}

type builder struct {
	funcs map[string]*term.FuncDecl
	vars  map[string]*term.Variable
}

// Build turns a formula document into the conjunction of its assertions.
func Build(formula *api.Formula) (term.Term, error) {
	b := &builder{
		funcs: map[string]*term.FuncDecl{},
		vars:  map[string]*term.Variable{},
	}
	for _, fn := range formula.Functions {
		if _, exists := b.funcs[fn.Name]; exists {
			return nil, fmt.Errorf("function %s declared twice", fn.Name)
		}
		ret, err := ParseSort(fn.Returns)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", fn.Name, err)
		}
		args := make([]term.Sort, len(fn.Args))
		for i, a := range fn.Args {
			if args[i], err = ParseSort(a); err != nil {
				return nil, fmt.Errorf("function %s: %w", fn.Name, err)
			}
		}
		b.funcs[fn.Name] = term.NewUF(fn.Name, ret, args...)
	}
	for _, v := range formula.Variables {
		if _, exists := b.vars[v.Name]; exists {
			return nil, fmt.Errorf("variable %s declared twice", v.Name)
		}
		sort, err := ParseSort(v.Sort)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", v.Name, err)
		}
		b.vars[v.Name] = term.Var(v.Name, sort)
	}

	if len(formula.Assert) == 0 {
		return nil, fmt.Errorf("formula has no assertions")
	}
	assertions := make([]term.Term, len(formula.Assert))
	for i, e := range formula.Assert {
		t, err := b.expr(e, nil)
		if err != nil {
			return nil, fmt.Errorf("assertion %d: %w", i, err)
		}
		if err := term.CheckBool(t); err != nil {
			return nil, fmt.Errorf("assertion %d: %w", i, err)
		}
		assertions[i] = t
	}

	result := term.And(assertions...)
	if formula.Share {
		in := term.NewInterner()
		result = in.Intern(result)
		logrus.Debugf("Shared formula has %d distinct nodes.", in.Len())
	}
	return result, nil
}

var connectives = map[string]term.ConnOp{
	api.OpAnd:     term.OpAnd,
	api.OpOr:      term.OpOr,
	api.OpNot:     term.OpNot,
	api.OpImplies: term.OpImplies,
	api.OpIff:     term.OpIff,
	api.OpXor:     term.OpXor,
}

var operators = map[string]term.DeclKind{
	api.OpFPEq:   term.DeclFPEq,
	api.OpAdd:    term.DeclAdd,
	api.OpSub:    term.DeclSub,
	api.OpMul:    term.DeclMul,
	api.OpLt:     term.DeclLt,
	api.OpLe:     term.DeclLe,
	api.OpBVAdd:  term.DeclBVAdd,
	api.OpBVAnd:  term.DeclBVAnd,
	api.OpBVOr:   term.DeclBVOr,
	api.OpBVXor:  term.DeclBVXor,
	api.OpBVNot:  term.DeclBVNot,
	api.OpSelect: term.DeclSelect,
	api.OpStore:  term.DeclStore,
	api.OpIte:    term.DeclIte,
}

func (b *builder) expr(e *api.Expr, scope map[string]*term.Variable) (term.Term, error) {
	if e == nil {
		return nil, fmt.Errorf("missing expression")
	}
	switch e.Op {
	case api.OpVar:
		if v, ok := scope[e.Name]; ok {
			return v, nil
		}
		if v, ok := b.vars[e.Name]; ok {
			return v, nil
		}
		return nil, fmt.Errorf("undeclared variable %s", e.Name)
	case api.OpConst:
		return constant(e.Value, e.Sort)
	case api.OpApply:
		decl, ok := b.funcs[e.Name]
		if !ok {
			return nil, fmt.Errorf("undeclared function %s", e.Name)
		}
		args, err := b.exprs(e.Args, scope)
		if err != nil {
			return nil, err
		}
		return term.TryApply(decl, args...)
	case api.OpEq:
		args, err := b.exprs(e.Args, scope)
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, fmt.Errorf("eq expects two arguments, got %d", len(args))
		}
		return equality(args[0], args[1])
	case api.OpForall, api.OpExists:
		inner := map[string]*term.Variable{}
		for k, v := range scope {
			inner[k] = v
		}
		bound := make([]*term.Variable, len(e.Bound))
		for i, v := range e.Bound {
			sort, err := ParseSort(v.Sort)
			if err != nil {
				return nil, fmt.Errorf("bound variable %s: %w", v.Name, err)
			}
			bound[i] = term.Var(v.Name, sort)
			inner[v.Name] = bound[i]
		}
		body, err := b.expr(e.Body, inner)
		if err != nil {
			return nil, err
		}
		kind := term.Forall
		if e.Op == api.OpExists {
			kind = term.Exists
		}
		return term.Quantify(kind, bound, body)
	}

	args, err := b.exprs(e.Args, scope)
	if err != nil {
		return nil, err
	}
	if op, ok := connectives[e.Op]; ok {
		return term.Connect(op, args...)
	}
	if kind, ok := operators[e.Op]; ok {
		return term.Op(kind, args...)
	}
	return nil, fmt.Errorf("unknown operator %q", e.Op)
}

func (b *builder) exprs(es []*api.Expr, scope map[string]*term.Variable) ([]term.Term, error) {
	ts := make([]term.Term, len(es))
	for i, e := range es {
		t, err := b.expr(e, scope)
		if err != nil {
			return nil, err
		}
		ts[i] = t
	}
	return ts, nil
}

// equality picks the equality operator for the sort of the operands.
// Floating-point operands compare with IEEE semantics.
func equality(lhs, rhs term.Term) (term.Term, error) {
	switch lhs.Sort().Kind() {
	case term.SortBool:
		return term.Connect(term.OpIff, lhs, rhs)
	case term.SortInt, term.SortReal:
		return term.Op(term.DeclNumEq, lhs, rhs)
	case term.SortBitVec:
		return term.Op(term.DeclBVEq, lhs, rhs)
	case term.SortFloat:
		return term.Op(term.DeclFPEq, lhs, rhs)
	case term.SortArray:
		return term.Op(term.DeclArrayEq, lhs, rhs)
	}
	return nil, fmt.Errorf("no equality for sort %s", lhs.Sort())
}

// constant reads a literal. Without an explicit sort, true and false are
// Bool, #b literals bit-vectors, decimals with a point Real and other
// numbers Int.
func constant(value, sortName string) (term.Term, error) {
	var sort term.Sort
	switch {
	case sortName != "":
		s, err := ParseSort(sortName)
		if err != nil {
			return nil, err
		}
		sort = s
	case value == "true" || value == "false":
		sort = term.Bool
	case strings.HasPrefix(value, "#b"):
		if len(value) <= 2 {
			return nil, fmt.Errorf("invalid bit-vector literal %q", value)
		}
		sort = term.BitVec(uint(len(value) - 2))
	case strings.Contains(value, "."):
		sort = term.Real
	default:
		sort = term.Int
	}

	switch sort.Kind() {
	case term.SortBool:
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid Bool literal %q", value)
		}
		return term.BoolConst(value == "true"), nil
	case term.SortInt:
		i, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid Int literal %q", value)
		}
		return term.IntConst(i), nil
	case term.SortBitVec:
		if strings.HasPrefix(value, "#b") {
			c := term.Const(value, sort)
			if _, err := c.Bits(); err != nil {
				return nil, err
			}
			return c, nil
		}
		v, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid bit-vector literal %q", value)
		}
		return term.BVConst(v, sort.Width()), nil
	}
	return term.Const(value, sort), nil
}
