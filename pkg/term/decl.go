package term

import (
	"fmt"
	"strings"
)

type DeclKind int

const (
	DeclUF DeclKind = iota + 1
	DeclNumEq
	DeclBVEq
	DeclFPEq
	DeclArrayEq
	DeclAdd
	DeclSub
	DeclMul
	DeclLt
	DeclLe
	DeclBVAdd
	DeclBVAnd
	DeclBVOr
	DeclBVXor
	DeclBVNot
	DeclSelect
	DeclStore
	DeclIte
)

func (k DeclKind) String() string {
	switch k {
	case DeclUF:
		return "uf"
	case DeclNumEq, DeclBVEq, DeclArrayEq:
		return "="
	case DeclFPEq:
		return "fp.eq"
	case DeclAdd:
		return "+"
	case DeclSub:
		return "-"
	case DeclMul:
		return "*"
	case DeclLt:
		return "<"
	case DeclLe:
		return "<="
	case DeclBVAdd:
		return "bvadd"
	case DeclBVAnd:
		return "bvand"
	case DeclBVOr:
		return "bvor"
	case DeclBVXor:
		return "bvxor"
	case DeclBVNot:
		return "bvnot"
	case DeclSelect:
		return "select"
	case DeclStore:
		return "store"
	case DeclIte:
		return "ite"
	}
	return "?"
}

// FuncDecl names a function symbol together with its signature. Two
// declarations denote the same function iff their keys are equal.
type FuncDecl struct {
	Name   string
	Args   []Sort
	Return Sort
	Kind   DeclKind
}

// NewUF declares an uninterpreted function.
func NewUF(name string, ret Sort, args ...Sort) *FuncDecl {
	return &FuncDecl{Name: name, Args: args, Return: ret, Kind: DeclUF}
}

func interpreted(kind DeclKind, ret Sort, args ...Sort) *FuncDecl {
	return &FuncDecl{Name: kind.String(), Args: args, Return: ret, Kind: kind}
}

func (d *FuncDecl) Uninterpreted() bool {
	return d.Kind == DeclUF
}

func (d *FuncDecl) Arity() int {
	return len(d.Args)
}

func (d *FuncDecl) Key() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d:%s(", d.Kind, d.Name)
	for i, a := range d.Args {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(a.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (d *FuncDecl) Equal(o *FuncDecl) bool {
	return d.Key() == o.Key()
}

func (d *FuncDecl) String() string {
	args := make([]string, len(d.Args))
	for i, a := range d.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("(%s (%s) %s)", d.Name, strings.Join(args, " "), d.Return)
}
