// Package term holds the typed formula tree that the elimination passes
// operate on. Nodes are immutable once built; each construction yields a new
// node with a process-unique ID, and identity is always the ID, never the
// structure.
package term

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// ID identifies a node instance. Structurally equal nodes built separately
// have different IDs.
type ID uint64

var lastID atomic.Uint64

func nextID() ID {
	return ID(lastID.Add(1))
}

type Kind int

const (
	KindVariable Kind = iota + 1
	KindConstant
	KindApplication
	KindConnective
	KindQuantifier
)

func (k Kind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindConstant:
		return "constant"
	case KindApplication:
		return "application"
	case KindConnective:
		return "connective"
	case KindQuantifier:
		return "quantifier"
	}
	return "unknown"
}

// Term is a node of the formula tree. The set of implementations is closed:
// *Variable, *Constant, *Application, *Connective and *Quantifier.
type Term interface {
	ID() ID
	Kind() Kind
	Sort() Sort
	String() string
	isTerm()
}

type Variable struct {
	id   ID
	name string
	sort Sort
}

func Var(name string, sort Sort) *Variable {
	if !sort.Valid() {
		panic(fmt.Sprintf("variable %s has invalid sort", name))
	}
	return &Variable{id: nextID(), name: name, sort: sort}
}

func (v *Variable) ID() ID         { return v.id }
func (v *Variable) Kind() Kind     { return KindVariable }
func (v *Variable) Sort() Sort     { return v.sort }
func (v *Variable) Name() string   { return v.name }
func (v *Variable) String() string { return v.name }
func (*Variable) isTerm()          {}

type Constant struct {
	id    ID
	value string
	sort  Sort
}

// Const builds a constant from its SMT-LIB literal. The literal is not
// validated against the sort, use the typed helpers where possible.
func Const(value string, sort Sort) *Constant {
	if !sort.Valid() {
		panic(fmt.Sprintf("constant %s has invalid sort", value))
	}
	return &Constant{id: nextID(), value: value, sort: sort}
}

func True() *Constant {
	return Const("true", Bool)
}

func False() *Constant {
	return Const("false", Bool)
}

func BoolConst(b bool) *Constant {
	if b {
		return True()
	}
	return False()
}

func IntConst(i int64) *Constant {
	if i < 0 {
		return Const(fmt.Sprintf("(- %d)", -i), Int)
	}
	return Const(fmt.Sprintf("%d", i), Int)
}

// BVConst builds a bit-vector literal of the given width from the low bits
// of v.
func BVConst(v uint64, width uint) *Constant {
	sort := BitVec(width)
	var sb strings.Builder
	sb.WriteString("#b")
	for i := int(width) - 1; i >= 0; i-- {
		if i < 64 && v&(1<<uint(i)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return Const(sb.String(), sort)
}

func (c *Constant) ID() ID         { return c.id }
func (c *Constant) Kind() Kind     { return KindConstant }
func (c *Constant) Sort() Sort     { return c.sort }
func (c *Constant) Value() string  { return c.value }
func (c *Constant) String() string { return c.value }
func (*Constant) isTerm()          {}

// Bits returns the bits of a bit-vector literal, least significant first.
func (c *Constant) Bits() ([]bool, error) {
	if c.sort.Kind() != SortBitVec {
		return nil, fmt.Errorf("constant %s is not a bit-vector", c.value)
	}
	if !strings.HasPrefix(c.value, "#b") || uint(len(c.value)-2) != c.sort.Width() {
		return nil, fmt.Errorf("malformed bit-vector literal %s", c.value)
	}
	digits := c.value[2:]
	bits := make([]bool, len(digits))
	for i := range digits {
		switch digits[len(digits)-1-i] {
		case '1':
			bits[i] = true
		case '0':
		default:
			return nil, fmt.Errorf("malformed bit-vector literal %s", c.value)
		}
	}
	return bits, nil
}

type Application struct {
	id   ID
	decl *FuncDecl
	args []Term
}

func newApplication(decl *FuncDecl, args []Term) *Application {
	return &Application{id: nextID(), decl: decl, args: append([]Term(nil), args...)}
}

func (a *Application) ID() ID          { return a.id }
func (a *Application) Kind() Kind      { return KindApplication }
func (a *Application) Sort() Sort      { return a.decl.Return }
func (a *Application) Decl() *FuncDecl { return a.decl }
func (*Application) isTerm()           {}

// Args returns a copy of the argument list.
func (a *Application) Args() []Term {
	return append([]Term(nil), a.args...)
}

func (a *Application) String() string {
	if len(a.args) == 0 {
		return a.decl.Name
	}
	return list(a.decl.Name, a.args)
}

type ConnOp int

const (
	OpAnd ConnOp = iota + 1
	OpOr
	OpNot
	OpImplies
	OpIff
	OpXor
)

func (op ConnOp) String() string {
	switch op {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpNot:
		return "not"
	case OpImplies:
		return "=>"
	case OpIff:
		return "="
	case OpXor:
		return "xor"
	}
	return "?"
}

type Connective struct {
	id       ID
	op       ConnOp
	operands []Term
}

func (c *Connective) ID() ID         { return c.id }
func (c *Connective) Kind() Kind     { return KindConnective }
func (c *Connective) Sort() Sort     { return Bool }
func (c *Connective) Op() ConnOp     { return c.op }
func (c *Connective) String() string { return list(c.op.String(), c.operands) }
func (*Connective) isTerm()          {}

func (c *Connective) Operands() []Term {
	return append([]Term(nil), c.operands...)
}

type QuantKind int

const (
	Forall QuantKind = iota + 1
	Exists
)

func (q QuantKind) String() string {
	if q == Exists {
		return "exists"
	}
	return "forall"
}

type Quantifier struct {
	id    ID
	kind  QuantKind
	bound []*Variable
	body  Term
}

func (q *Quantifier) ID() ID                { return q.id }
func (q *Quantifier) Kind() Kind            { return KindQuantifier }
func (q *Quantifier) Sort() Sort            { return Bool }
func (q *Quantifier) Quantifier() QuantKind { return q.kind }
func (q *Quantifier) Body() Term            { return q.body }
func (*Quantifier) isTerm()                 {}

func (q *Quantifier) Bound() []*Variable {
	return append([]*Variable(nil), q.bound...)
}

func (q *Quantifier) String() string {
	vars := make([]string, len(q.bound))
	for i, v := range q.bound {
		vars[i] = fmt.Sprintf("(%s %s)", v.name, v.sort)
	}
	return fmt.Sprintf("(%s (%s) %s)", q.kind, strings.Join(vars, " "), q.body)
}

func list(head string, args []Term) string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(head)
	for _, a := range args {
		sb.WriteByte(' ')
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
