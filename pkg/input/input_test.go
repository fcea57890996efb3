package input

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/rmohr/ufelim/pkg/api"
	"github.com/rmohr/ufelim/pkg/term"
)

func TestParseSort(t *testing.T) {
	tests := []struct {
		input    string
		expected term.Sort
	}{
		{input: "Bool", expected: term.Bool},
		{input: " Int ", expected: term.Int},
		{input: "Real", expected: term.Real},
		{input: "BitVec<8>", expected: term.BitVec(8)},
		{input: "FP<8,24>", expected: term.FloatingPoint(8, 24)},
		{input: "Array<Int, BitVec<4>>", expected: term.Array(term.Int, term.BitVec(4))},
		{input: "Array<Int,Array<Int,Bool>>", expected: term.Array(term.Int, term.Array(term.Int, term.Bool))},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			g := NewGomegaWithT(t)
			sort, err := ParseSort(tt.input)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(sort.Equal(tt.expected)).To(BeTrue())
		})
	}

	for _, invalid := range []string{"", "bool", "BitVec<0>", "BitVec<x>", "FP<1,2>", "Array<Int>", "Array<Int,Foo>", "List<Int>"} {
		t.Run("invalid "+invalid, func(t *testing.T) {
			g := NewGomegaWithT(t)
			_, err := ParseSort(invalid)
			g.Expect(err).To(HaveOccurred())
		})
	}
}

const scenario = `
functions:
  - name: f
    args: [Int]
    returns: Int
variables:
  - name: x
    sort: Int
  - name: y
    sort: Int
assert:
  - op: eq
    args:
      - {op: apply, name: f, args: [{op: var, name: x}]}
      - {op: const, value: "0"}
  - op: eq
    args:
      - {op: apply, name: f, args: [{op: var, name: y}]}
      - {op: const, value: "0"}
  - op: eq
    args:
      - {op: var, name: x}
      - {op: var, name: y}
`

func TestBuildFormula(t *testing.T) {
	g := NewGomegaWithT(t)
	doc, err := ParseFormula([]byte(scenario))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(doc.Functions).To(HaveLen(1))
	g.Expect(doc.Assert).To(HaveLen(3))

	f, err := Build(doc)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(f.String()).To(Equal("(and (= (f x) 0) (= (f y) 0) (= x y))"))
}

func TestBuildSharesWhenRequested(t *testing.T) {
	g := NewGomegaWithT(t)
	doc, err := ParseFormula([]byte(scenario))
	g.Expect(err).ToNot(HaveOccurred())
	doc.Assert = append(doc.Assert, doc.Assert[0])
	doc.Share = true

	f, err := Build(doc)
	g.Expect(err).ToNot(HaveOccurred())
	conjuncts := term.Children(f)
	g.Expect(conjuncts).To(HaveLen(4))
	g.Expect(conjuncts[3]).To(BeIdenticalTo(conjuncts[0]))
}

func TestBuildExpressions(t *testing.T) {
	v := func(name string) *api.Expr { return &api.Expr{Op: api.OpVar, Name: name} }
	c := func(value, sort string) *api.Expr { return &api.Expr{Op: api.OpConst, Value: value, Sort: sort} }
	op := func(op string, args ...*api.Expr) *api.Expr { return &api.Expr{Op: op, Args: args} }

	tests := []struct {
		name     string
		expr     *api.Expr
		expected string
	}{
		{name: "bool equality", expr: op(api.OpEq, v("p"), c("true", "")), expected: "(= p true)"},
		{name: "bit-vector literal", expr: op(api.OpEq, v("u"), c("#b0110", "")), expected: "(= u #b0110)"},
		{name: "bit-vector decimal", expr: op(api.OpEq, v("u"), op(api.OpBVAnd, v("u"), c("3", "BitVec<4>"))), expected: "(= u (bvand u #b0011))"},
		{name: "negative int", expr: op(api.OpLt, c("-2", ""), v("x")), expected: "(< (- 2) x)"},
		{name: "real", expr: op(api.OpLe, v("r"), c("1.5", "")), expected: "(<= r 1.5)"},
		{name: "float", expr: op(api.OpEq, v("h"), v("h")), expected: "(fp.eq h h)"},
		{name: "array", expr: op(api.OpEq, op(api.OpSelect, v("a"), v("x")), v("x")), expected: "(= (select a x) x)"},
		{name: "ite", expr: op(api.OpEq, op(api.OpIte, v("p"), v("x"), c("1", "Int")), v("x")), expected: "(= (ite p x 1) x)"},
		{name: "connectives", expr: op(api.OpImplies, op(api.OpNot, v("p")), op(api.OpXor, v("p"), v("p"))), expected: "(=> (not p) (xor p p))"},
		{name: "forall", expr: &api.Expr{
			Op:    api.OpForall,
			Bound: []api.Variable{{Name: "x", Sort: "Bool"}},
			Body:  op(api.OpOr, v("x"), v("p")),
		}, expected: "(forall ((x Bool)) (or x p))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			f, err := Build(&api.Formula{
				Variables: []api.Variable{
					{Name: "p", Sort: "Bool"},
					{Name: "x", Sort: "Int"},
					{Name: "r", Sort: "Real"},
					{Name: "u", Sort: "BitVec<4>"},
					{Name: "h", Sort: "FP<5,11>"},
					{Name: "a", Sort: "Array<Int,Int>"},
				},
				Assert: []*api.Expr{tt.expr},
			})
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(f.String()).To(Equal(tt.expected))
		})
	}
}

func TestBuildRejectsInvalidDocuments(t *testing.T) {
	x := &api.Expr{Op: api.OpVar, Name: "x"}
	tests := []struct {
		name    string
		formula *api.Formula
	}{
		{name: "no assertions", formula: &api.Formula{}},
		{name: "undeclared variable", formula: &api.Formula{Assert: []*api.Expr{x}}},
		{name: "non-bool assertion", formula: &api.Formula{
			Variables: []api.Variable{{Name: "x", Sort: "Int"}},
			Assert:    []*api.Expr{x},
		}},
		{name: "duplicate variable", formula: &api.Formula{
			Variables: []api.Variable{{Name: "x", Sort: "Bool"}, {Name: "x", Sort: "Int"}},
			Assert:    []*api.Expr{x},
		}},
		{name: "undeclared function", formula: &api.Formula{
			Assert: []*api.Expr{{Op: api.OpApply, Name: "f"}},
		}},
		{name: "wrong argument sort", formula: &api.Formula{
			Functions: []api.Function{{Name: "p", Args: []string{"Int"}, Returns: "Bool"}},
			Variables: []api.Variable{{Name: "x", Sort: "Bool"}},
			Assert:    []*api.Expr{{Op: api.OpApply, Name: "p", Args: []*api.Expr{x}}},
		}},
		{name: "unknown operator", formula: &api.Formula{
			Variables: []api.Variable{{Name: "x", Sort: "Bool"}},
			Assert:    []*api.Expr{{Op: "nand", Args: []*api.Expr{x, x}}},
		}},
		{name: "bad literal", formula: &api.Formula{
			Assert: []*api.Expr{{Op: api.OpConst, Value: "maybe", Sort: "Bool"}},
		}},
		{name: "empty bit-vector literal", formula: &api.Formula{
			Variables: []api.Variable{{Name: "u", Sort: "BitVec<2>"}},
			Assert:    []*api.Expr{{Op: api.OpEq, Args: []*api.Expr{{Op: api.OpVar, Name: "u"}, {Op: api.OpConst, Value: "#b"}}}},
		}},
		{name: "missing body", formula: &api.Formula{
			Assert: []*api.Expr{{Op: api.OpExists, Bound: []api.Variable{{Name: "y", Sort: "Int"}}}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGomegaWithT(t)
			var err error
			g.Expect(func() { _, err = Build(tt.formula) }).ToNot(Panic())
			g.Expect(err).To(HaveOccurred())
		})
	}

	g := NewGomegaWithT(t)
	_, err := Build(&api.Formula{
		Variables: []api.Variable{{Name: "x", Sort: "Int"}},
		Assert:    []*api.Expr{{Op: api.OpAnd, Args: []*api.Expr{x}}},
	})
	g.Expect(errors.Is(err, term.ErrIllTyped)).To(BeTrue())
}

func TestFormulaFileRoundTrip(t *testing.T) {
	g := NewGomegaWithT(t)
	doc, err := ParseFormula([]byte(scenario))
	g.Expect(err).ToNot(HaveOccurred())

	file := filepath.Join(t.TempDir(), "formula.yaml")
	g.Expect(WriteFormulaFile(file, doc)).To(Succeed())
	loaded, err := LoadFormulaFile(file)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(loaded).To(Equal(doc))

	_, err = LoadFormulaFile(filepath.Join(t.TempDir(), "missing.yaml"))
	g.Expect(err).To(HaveOccurred())
}

func TestLoadConfig(t *testing.T) {
	g := NewGomegaWithT(t)
	dir := t.TempDir()

	file := filepath.Join(dir, "config.yaml")
	g.Expect(os.WriteFile(file, []byte("logLevel: debug\nfreshPrefix: k_\n"), 0666)).To(Succeed())
	config, err := LoadConfig(file)
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(config.LogLevel).To(Equal("debug"))
	g.Expect(config.FreshPrefix).To(Equal("k_"))

	partial, err := ParseConfig([]byte("logLevel: warning\n"))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(partial.FreshPrefix).To(Equal(DefaultConfig().FreshPrefix))

	_, err = ParseConfig([]byte("logLevel: loud\n"))
	g.Expect(err).To(HaveOccurred())
	_, err = ParseConfig([]byte("unknown: 1\n"))
	g.Expect(err).To(HaveOccurred())
	_, err = ParseConfig([]byte("freshPrefix: \"\"\n"))
	g.Expect(err).To(HaveOccurred())
	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	g.Expect(err).To(HaveOccurred())
}
