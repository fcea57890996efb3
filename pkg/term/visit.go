package term

import "fmt"

// Visitor dispatches on the node kind. Every kind must be handled.
type Visitor[R any] interface {
	VisitVariable(v *Variable) R
	VisitConstant(c *Constant) R
	VisitApplication(a *Application) R
	VisitConnective(c *Connective) R
	VisitQuantifier(q *Quantifier) R
}

func Visit[R any](t Term, v Visitor[R]) R {
	switch n := t.(type) {
	case *Variable:
		return v.VisitVariable(n)
	case *Constant:
		return v.VisitConstant(n)
	case *Application:
		return v.VisitApplication(n)
	case *Connective:
		return v.VisitConnective(n)
	case *Quantifier:
		return v.VisitQuantifier(n)
	}
	panic(fmt.Sprintf("unknown term %T", t))
}

// Children returns the direct subterms of t. Bound variables of a
// quantifier are not children, only its body is.
func Children(t Term) []Term {
	switch n := t.(type) {
	case *Application:
		return n.Args()
	case *Connective:
		return n.Operands()
	case *Quantifier:
		return []Term{n.body}
	}
	return nil
}

// Rebuild returns a node like t with its children replaced. If every child
// is the same node t already has, t itself is returned and keeps its ID.
func Rebuild(t Term, children []Term) Term {
	old := Children(t)
	if len(old) != len(children) {
		panic(fmt.Sprintf("rebuild of %s with %d children, expected %d", t.Kind(), len(children), len(old)))
	}
	changed := false
	for i := range old {
		if old[i] != children[i] {
			changed = true
			break
		}
	}
	if !changed {
		return t
	}
	switch n := t.(type) {
	case *Application:
		if n.decl.Uninterpreted() {
			return Apply(n.decl, children...)
		}
		return must(Op(n.decl.Kind, children...))
	case *Connective:
		return must(Connect(n.op, children...))
	case *Quantifier:
		return must(Quantify(n.kind, n.bound, children[0]))
	}
	return t
}

// Walk visits every node reachable from t in pre-order. Nodes shared by
// reference are visited once. Children are skipped if fn returns false.
func Walk(t Term, fn func(Term) bool) {
	seen := map[ID]bool{}
	var walk func(Term)
	walk = func(t Term) {
		if seen[t.ID()] {
			return
		}
		seen[t.ID()] = true
		if !fn(t) {
			return
		}
		for _, c := range Children(t) {
			walk(c)
		}
	}
	walk(t)
}

// Substitute replaces every node whose ID is a key of m by the mapped term.
// Matching is top-down: a replaced node is not descended into. Replacements
// must have the sort of the node they replace.
func Substitute(t Term, m map[ID]Term) Term {
	if len(m) == 0 {
		return t
	}
	memo := map[ID]Term{}
	var subst func(Term) Term
	subst = func(t Term) Term {
		if r, ok := m[t.ID()]; ok {
			if !r.Sort().Equal(t.Sort()) {
				panic(&SortError{Op: "substitute", Sorts: []Sort{t.Sort(), r.Sort()}, Reason: "replacement changes the sort"})
			}
			return r
		}
		if r, ok := memo[t.ID()]; ok {
			return r
		}
		children := Children(t)
		for i, c := range children {
			children[i] = subst(c)
		}
		r := t
		if len(children) > 0 {
			r = Rebuild(t, children)
		}
		memo[t.ID()] = r
		return r
	}
	return subst(t)
}

// FreeVariables lists the variables occurring free in t, by name, in order
// of first occurrence.
func FreeVariables(t Term) []*Variable {
	var vars []*Variable
	seen := map[string]bool{}
	var collect func(t Term, bound map[string]bool)
	collect = func(t Term, bound map[string]bool) {
		switch n := t.(type) {
		case *Variable:
			if !bound[n.name] && !seen[n.name] {
				seen[n.name] = true
				vars = append(vars, n)
			}
		case *Quantifier:
			inner := map[string]bool{}
			for k := range bound {
				inner[k] = true
			}
			for _, v := range n.bound {
				inner[v.name] = true
			}
			collect(n.body, inner)
		default:
			for _, c := range Children(t) {
				collect(c, bound)
			}
		}
	}
	collect(t, map[string]bool{})
	return vars
}

// Declarations lists the uninterpreted functions applied in t, in order of
// first occurrence.
func Declarations(t Term) []*FuncDecl {
	var decls []*FuncDecl
	seen := map[string]bool{}
	Walk(t, func(n Term) bool {
		if a, ok := n.(*Application); ok && a.decl.Uninterpreted() && !seen[a.decl.Key()] {
			seen[a.decl.Key()] = true
			decls = append(decls, a.decl)
		}
		return true
	})
	return decls
}
