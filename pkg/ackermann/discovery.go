package ackermann

import (
	"github.com/rmohr/ufelim/pkg/fresh"
	"github.com/rmohr/ufelim/pkg/term"
)

// Application is one occurrence of an uninterpreted function together with
// the fresh variable standing in for it.
type Application struct {
	Formula    *term.Application
	Args       []term.Term
	Substitute *term.Variable
}

// Groups holds the discovered applications per declaration. Declarations
// keep the order in which they were first seen, applications the order in
// which they were visited.
type Groups struct {
	decls []*term.FuncDecl
	apps  map[string][]*Application
}

func (g *Groups) Decls() []*term.FuncDecl {
	return append([]*term.FuncDecl(nil), g.decls...)
}

func (g *Groups) Applications(decl *term.FuncDecl) []*Application {
	return append([]*Application(nil), g.apps[decl.Key()]...)
}

// Len is the number of applications over all declarations.
func (g *Groups) Len() int {
	n := 0
	for _, apps := range g.apps {
		n += len(apps)
	}
	return n
}

// FindApplications collects every uninterpreted function application
// reachable from f, including those inside quantifier bodies and inside
// arguments of other applications. Every node instance gets its own fresh
// variable; a node shared by reference is collected once.
func FindApplications(f term.Term, names *fresh.Generator) *Groups {
	groups := &Groups{apps: map[string][]*Application{}}
	term.Walk(f, func(n term.Term) bool {
		app, ok := n.(*term.Application)
		if !ok || !app.Decl().Uninterpreted() {
			return true
		}
		key := app.Decl().Key()
		if _, exists := groups.apps[key]; !exists {
			groups.decls = append(groups.decls, app.Decl())
		}
		groups.apps[key] = append(groups.apps[key], &Application{
			Formula:    app,
			Args:       app.Args(),
			Substitute: term.Var(names.Next(), app.Sort()),
		})
		return true
	})
	return groups
}
