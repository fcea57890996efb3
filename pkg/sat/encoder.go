package sat

import (
	"errors"
	"fmt"

	"github.com/crillab/gophersat/bf"
	"github.com/rmohr/ufelim/pkg/term"
)

// ErrUnsupportedTerm is returned for terms outside the fragment that can be
// bit-blasted: Bool and bit-vector variables and constants, connectives,
// bit-vector equality, bitwise operators, addition and ite.
var ErrUnsupportedTerm = errors.New("term cannot be encoded")

// Encoder bit-blasts terms into propositional formulas. A Bool variable x
// becomes the propositional variable "b:x", bit i of a bit-vector variable
// x becomes "v:x#i". The prefixes keep the two name spaces apart.
type Encoder struct {
	bools map[term.ID]bf.Formula
	bits  map[term.ID][]bf.Formula
	// vars lists the encoded variables in order of first occurrence
	vars  []*term.Variable
	known map[string]bool
}

func NewEncoder() *Encoder {
	return &Encoder{
		bools: map[term.ID]bf.Formula{},
		bits:  map[term.ID][]bf.Formula{},
		known: map[string]bool{},
	}
}

func boolName(name string) string {
	return "b:" + name
}

func bitName(name string, i int) string {
	return fmt.Sprintf("v:%s#%d", name, i)
}

func unsupported(t term.Term) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedTerm, t)
}

func (e *Encoder) record(v *term.Variable) {
	if !e.known[v.Name()] {
		e.known[v.Name()] = true
		e.vars = append(e.vars, v)
	}
}

// Encode translates a Bool term.
func (e *Encoder) Encode(t term.Term) (bf.Formula, error) {
	if f, ok := e.bools[t.ID()]; ok {
		return f, nil
	}
	if !t.Sort().IsBool() {
		return nil, unsupported(t)
	}
	f, err := e.encode(t)
	if err != nil {
		return nil, err
	}
	e.bools[t.ID()] = f
	return f, nil
}

func (e *Encoder) encode(t term.Term) (bf.Formula, error) {
	switch n := t.(type) {
	case *term.Variable:
		e.record(n)
		return bf.Var(boolName(n.Name())), nil
	case *term.Constant:
		switch n.Value() {
		case "true":
			return bf.True, nil
		case "false":
			return bf.False, nil
		}
		return nil, unsupported(t)
	case *term.Connective:
		ops, err := e.encodeAll(n.Operands())
		if err != nil {
			return nil, err
		}
		switch n.Op() {
		case term.OpAnd:
			return bf.And(ops...), nil
		case term.OpOr:
			return bf.Or(ops...), nil
		case term.OpNot:
			return bf.Not(ops[0]), nil
		case term.OpImplies:
			return bf.Implies(ops[0], ops[1]), nil
		case term.OpIff:
			return bf.Eq(ops[0], ops[1]), nil
		case term.OpXor:
			return bf.Xor(ops[0], ops[1]), nil
		}
	case *term.Application:
		args := n.Args()
		switch n.Decl().Kind {
		case term.DeclBVEq:
			lhs, err := e.BitVector(args[0])
			if err != nil {
				return nil, err
			}
			rhs, err := e.BitVector(args[1])
			if err != nil {
				return nil, err
			}
			eqs := make([]bf.Formula, len(lhs))
			for i := range lhs {
				eqs[i] = bf.Eq(lhs[i], rhs[i])
			}
			return bf.And(eqs...), nil
		case term.DeclIte:
			ops, err := e.encodeAll(args)
			if err != nil {
				return nil, err
			}
			return ite(ops[0], ops[1], ops[2]), nil
		}
	}
	return nil, unsupported(t)
}

func (e *Encoder) encodeAll(ts []term.Term) ([]bf.Formula, error) {
	fs := make([]bf.Formula, len(ts))
	for i, t := range ts {
		f, err := e.Encode(t)
		if err != nil {
			return nil, err
		}
		fs[i] = f
	}
	return fs, nil
}

// BitVector translates a bit-vector term into one formula per bit, least
// significant first.
func (e *Encoder) BitVector(t term.Term) ([]bf.Formula, error) {
	if bits, ok := e.bits[t.ID()]; ok {
		return bits, nil
	}
	if t.Sort().Kind() != term.SortBitVec {
		return nil, unsupported(t)
	}
	bits, err := e.bitVector(t)
	if err != nil {
		return nil, err
	}
	e.bits[t.ID()] = bits
	return bits, nil
}

func (e *Encoder) bitVector(t term.Term) ([]bf.Formula, error) {
	width := int(t.Sort().Width())
	switch n := t.(type) {
	case *term.Variable:
		e.record(n)
		bits := make([]bf.Formula, width)
		for i := range bits {
			bits[i] = bf.Var(bitName(n.Name(), i))
		}
		return bits, nil
	case *term.Constant:
		values, err := n.Bits()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedTerm, err)
		}
		bits := make([]bf.Formula, width)
		for i, v := range values {
			bits[i] = bf.False
			if v {
				bits[i] = bf.True
			}
		}
		return bits, nil
	case *term.Application:
		args := n.Args()
		if n.Decl().Kind == term.DeclIte {
			c, err := e.Encode(args[0])
			if err != nil {
				return nil, err
			}
			a, b, err := e.pair(args[1], args[2])
			if err != nil {
				return nil, err
			}
			bits := make([]bf.Formula, width)
			for i := range bits {
				bits[i] = ite(c, a[i], b[i])
			}
			return bits, nil
		}
		if n.Decl().Kind == term.DeclBVNot {
			a, err := e.BitVector(args[0])
			if err != nil {
				return nil, err
			}
			bits := make([]bf.Formula, width)
			for i := range bits {
				bits[i] = bf.Not(a[i])
			}
			return bits, nil
		}

		var op func(a, b bf.Formula) bf.Formula
		switch n.Decl().Kind {
		case term.DeclBVAnd:
			op = func(a, b bf.Formula) bf.Formula { return bf.And(a, b) }
		case term.DeclBVOr:
			op = func(a, b bf.Formula) bf.Formula { return bf.Or(a, b) }
		case term.DeclBVXor:
			op = func(a, b bf.Formula) bf.Formula { return bf.Xor(a, b) }
		case term.DeclBVAdd:
			a, b, err := e.pair(args[0], args[1])
			if err != nil {
				return nil, err
			}
			return add(a, b), nil
		default:
			return nil, unsupported(t)
		}
		a, b, err := e.pair(args[0], args[1])
		if err != nil {
			return nil, err
		}
		bits := make([]bf.Formula, width)
		for i := range bits {
			bits[i] = op(a[i], b[i])
		}
		return bits, nil
	}
	return nil, unsupported(t)
}

func (e *Encoder) pair(x, y term.Term) (a, b []bf.Formula, err error) {
	if a, err = e.BitVector(x); err != nil {
		return nil, nil, err
	}
	if b, err = e.BitVector(y); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func ite(c, a, b bf.Formula) bf.Formula {
	return bf.Or(bf.And(c, a), bf.And(bf.Not(c), b))
}

// add is a ripple-carry adder, overflow is dropped.
func add(a, b []bf.Formula) []bf.Formula {
	sum := make([]bf.Formula, len(a))
	var carry bf.Formula = bf.False
	for i := range a {
		half := bf.Xor(a[i], b[i])
		sum[i] = bf.Xor(half, carry)
		carry = bf.Or(bf.And(a[i], b[i]), bf.And(carry, half))
	}
	return sum
}

// Variables returns the variables encoded so far.
func (e *Encoder) Variables() []*term.Variable {
	return append([]*term.Variable(nil), e.vars...)
}
