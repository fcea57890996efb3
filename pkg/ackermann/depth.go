package ackermann

import "github.com/rmohr/ufelim/pkg/term"

// NestingDepth returns the largest number of uninterpreted function
// applications on a single root-to-leaf path of f.
func NestingDepth(f term.Term) int {
	d := &depthVisitor{memo: map[term.ID]int{}}
	return d.depth(f)
}

type depthVisitor struct {
	memo map[term.ID]int
}

func (d *depthVisitor) depth(t term.Term) int {
	if n, ok := d.memo[t.ID()]; ok {
		return n
	}
	n := term.Visit[int](t, d)
	d.memo[t.ID()] = n
	return n
}

func (d *depthVisitor) deepest(ts []term.Term) int {
	m := 0
	for _, t := range ts {
		m = max(m, d.depth(t))
	}
	return m
}

func (d *depthVisitor) VisitVariable(*term.Variable) int { return 0 }
func (d *depthVisitor) VisitConstant(*term.Constant) int { return 0 }

func (d *depthVisitor) VisitApplication(a *term.Application) int {
	n := d.deepest(a.Args())
	if a.Decl().Uninterpreted() {
		n++
	}
	return n
}

func (d *depthVisitor) VisitConnective(c *term.Connective) int {
	return d.deepest(c.Operands())
}

func (d *depthVisitor) VisitQuantifier(q *term.Quantifier) int {
	return d.depth(q.Body())
}
