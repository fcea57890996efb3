// Package ackermann removes uninterpreted functions from formulas by
// Ackermann's reduction: every application is replaced by a fresh variable
// and functional consistency is restored by explicit constraints.
package ackermann

import (
	"github.com/rmohr/ufelim/pkg/fresh"
	"github.com/rmohr/ufelim/pkg/term"
	"github.com/sirupsen/logrus"
)

type Result struct {
	// Formula is the UF-free formula, equisatisfiable with the input.
	Formula term.Term
	// Constraints are the functional consistency constraints contained in
	// Formula, already free of applications.
	Constraints []term.Term
	// Substitution is the replacement of applications done on the input.
	Substitution *Substitution
	// Depth is the nesting depth of applications in the input.
	Depth int
}

// Assignment is the value of one replaced application in a model.
type Assignment struct {
	Application *Application
	Value       string
}

// Translate maps values of substitute variables, keyed by variable name,
// back to the applications they stand for. Applications without a value are
// skipped.
func (r *Result) Translate(values map[string]string) []Assignment {
	var assignments []Assignment
	for _, app := range r.Substitution.apps {
		if v, ok := values[app.Substitute.Name()]; ok {
			assignments = append(assignments, Assignment{Application: app, Value: v})
		}
	}
	return assignments
}

type Eliminator struct {
	names *fresh.Generator
	log   logrus.FieldLogger
}

type Option func(*Eliminator)

// WithGenerator makes the eliminator draw substitute names from g instead of
// the process-wide generator.
func WithGenerator(g *fresh.Generator) Option {
	return func(e *Eliminator) {
		e.names = g
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Eliminator) {
		e.log = l
	}
}

func New(opts ...Option) *Eliminator {
	e := &Eliminator{
		names: fresh.Default,
		log:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Eliminate is a shorthand for New().Eliminate(f).
func Eliminate(f term.Term) (*Result, error) {
	return New().Eliminate(f)
}

// Eliminate applies Ackermann's reduction to the Boolean formula f.
func (e *Eliminator) Eliminate(f term.Term) (*Result, error) {
	if !f.Sort().IsBool() {
		return nil, &MalformedInputError{Reason: "formula is not Boolean", Terms: []term.Term{f}}
	}

	groups := FindApplications(f, e.names)
	constraints, err := buildConstraints(groups)
	if err != nil {
		return nil, err
	}
	depth := NestingDepth(f)
	subst := newSubstitution(groups)

	for _, app := range escapingApplications(f) {
		e.log.WithField("application", app.String()).Warn("Application mentions a quantified variable, its consistency constraints leave the quantifier scope.")
	}

	formula := Apply(f, subst)
	// constraints compare arguments, which may still hold applications
	// nested up to depth levels, e.g. f(g(x)) = f(g(y))
	for i := 0; i < depth; i++ {
		for k, c := range constraints {
			constraints[k] = Apply(c, subst)
		}
	}

	e.log.WithFields(logrus.Fields{
		"functions":    len(groups.decls),
		"applications": groups.Len(),
		"constraints":  len(constraints),
		"depth":        depth,
	}).Debug("Eliminated uninterpreted functions.")

	return &Result{
		Formula:      conjoin(formula, constraints),
		Constraints:  constraints,
		Substitution: subst,
		Depth:        depth,
	}, nil
}

func conjoin(f term.Term, constraints []term.Term) term.Term {
	if len(constraints) == 0 {
		return f
	}
	var conjuncts []term.Term
	if c, ok := f.(*term.Connective); ok && c.Op() == term.OpAnd {
		conjuncts = c.Operands()
	} else {
		conjuncts = []term.Term{f}
	}
	return term.And(append(conjuncts, constraints...)...)
}
