package ackermann

import "github.com/rmohr/ufelim/pkg/term"

// escapingApplications returns the applications whose arguments mention a
// variable bound by an enclosing quantifier. Their consistency constraints
// sit at the top level, where that variable is free.
func escapingApplications(f term.Term) []*term.Application {
	var escaping []*term.Application
	found := map[term.ID]bool{}
	term.Walk(f, func(n term.Term) bool {
		q, ok := n.(*term.Quantifier)
		if !ok {
			return true
		}
		bound := map[string]bool{}
		for _, v := range q.Bound() {
			bound[v.Name()] = true
		}
		term.Walk(q.Body(), func(b term.Term) bool {
			app, ok := b.(*term.Application)
			if !ok || !app.Decl().Uninterpreted() || found[app.ID()] {
				return true
			}
			for _, v := range term.FreeVariables(app) {
				if bound[v.Name()] {
					found[app.ID()] = true
					escaping = append(escaping, app)
					break
				}
			}
			return true
		})
		return true
	})
	return escaping
}
