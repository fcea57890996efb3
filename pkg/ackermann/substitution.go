package ackermann

import "github.com/rmohr/ufelim/pkg/term"

// Substitution maps application nodes, by identity, to the fresh variables
// replacing them. It is read-only once built.
type Substitution struct {
	apps []*Application
	m    map[term.ID]term.Term
}

func newSubstitution(groups *Groups) *Substitution {
	s := &Substitution{m: map[term.ID]term.Term{}}
	for _, decl := range groups.decls {
		for _, app := range groups.apps[decl.Key()] {
			s.apps = append(s.apps, app)
			s.m[app.Formula.ID()] = app.Substitute
		}
	}
	return s
}

// Lookup returns the substitute for the node t. Structurally equal but
// distinct nodes are not found.
func (s *Substitution) Lookup(t term.Term) (term.Term, bool) {
	r, ok := s.m[t.ID()]
	return r, ok
}

func (s *Substitution) Len() int {
	return len(s.apps)
}

// Applications returns the substituted applications grouped by declaration.
func (s *Substitution) Applications() []*Application {
	return append([]*Application(nil), s.apps...)
}

// Apply rewrites f, replacing every node that is a key of s. Nodes not in s
// are kept, unchanged subtrees keep their identity.
func Apply(f term.Term, s *Substitution) term.Term {
	return term.Substitute(f, s.m)
}
