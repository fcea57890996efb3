package ackermann

import (
	"math/rand"

	"github.com/rmohr/ufelim/pkg/fresh"
	"github.com/rmohr/ufelim/pkg/term"
)

func newTestEliminator() *Eliminator {
	return New(WithGenerator(fresh.NewGenerator("s")))
}

func countUFs(ts ...term.Term) int {
	n := 0
	for _, t := range ts {
		term.Walk(t, func(x term.Term) bool {
			if a, ok := x.(*term.Application); ok && a.Decl().Uninterpreted() {
				n++
			}
			return true
		})
	}
	return n
}

func render(ts []term.Term) []string {
	s := make([]string, len(ts))
	for i, t := range ts {
		s[i] = t.String()
	}
	return s
}

// interpretation assigns Bool variables and tables of Bool-valued
// uninterpreted functions over Bool arguments.
type interpretation struct {
	vars  map[string]bool
	funcs map[string][]bool
}

func (in interpretation) eval(t term.Term) bool {
	switch n := t.(type) {
	case *term.Variable:
		return in.vars[n.Name()]
	case *term.Constant:
		return n.Value() == "true"
	case *term.Connective:
		ops := n.Operands()
		switch n.Op() {
		case term.OpAnd:
			for _, o := range ops {
				if !in.eval(o) {
					return false
				}
			}
			return true
		case term.OpOr:
			for _, o := range ops {
				if in.eval(o) {
					return true
				}
			}
			return false
		case term.OpNot:
			return !in.eval(ops[0])
		case term.OpImplies:
			return !in.eval(ops[0]) || in.eval(ops[1])
		case term.OpIff:
			return in.eval(ops[0]) == in.eval(ops[1])
		case term.OpXor:
			return in.eval(ops[0]) != in.eval(ops[1])
		}
	case *term.Application:
		idx := 0
		for i, a := range n.Args() {
			if in.eval(a) {
				idx |= 1 << i
			}
		}
		return in.funcs[n.Decl().Name][idx]
	}
	panic("cannot evaluate " + t.String())
}

// bruteForceSat enumerates every interpretation of vars and decls.
func bruteForceSat(f term.Term, vars []*term.Variable, decls []*term.FuncDecl) bool {
	bits := len(vars)
	for _, d := range decls {
		bits += 1 << d.Arity()
	}
	for mask := 0; mask < 1<<bits; mask++ {
		in := interpretation{vars: map[string]bool{}, funcs: map[string][]bool{}}
		pos := 0
		next := func() bool {
			b := mask&(1<<pos) != 0
			pos++
			return b
		}
		for _, v := range vars {
			in.vars[v.Name()] = next()
		}
		for _, d := range decls {
			table := make([]bool, 1<<d.Arity())
			for i := range table {
				table[i] = next()
			}
			in.funcs[d.Name] = table
		}
		if in.eval(f) {
			return true
		}
	}
	return false
}

func randomAtom(r *rand.Rand, decls []*term.FuncDecl, vars []*term.Variable, nesting int) term.Term {
	if nesting == 0 || r.Intn(2) == 0 {
		return vars[r.Intn(len(vars))]
	}
	d := decls[r.Intn(len(decls))]
	args := make([]term.Term, d.Arity())
	for i := range args {
		args[i] = randomAtom(r, decls, vars, nesting-1)
	}
	return term.Apply(d, args...)
}

func randomFormula(r *rand.Rand, decls []*term.FuncDecl, vars []*term.Variable, depth int) term.Term {
	if depth == 0 || r.Intn(4) == 0 {
		return randomAtom(r, decls, vars, 2)
	}
	a := randomFormula(r, decls, vars, depth-1)
	switch r.Intn(5) {
	case 0:
		return term.And(a, randomFormula(r, decls, vars, depth-1))
	case 1:
		return term.Or(a, randomFormula(r, decls, vars, depth-1))
	case 2:
		return term.Not(a)
	case 3:
		return term.Iff(a, randomFormula(r, decls, vars, depth-1))
	default:
		return term.Implies(a, randomFormula(r, decls, vars, depth-1))
	}
}
