package term

import "fmt"

type SortKind int

const (
	SortBool SortKind = iota + 1
	SortInt
	SortReal
	SortBitVec
	SortFloat
	SortArray
)

// Sort is the semantic type of a term. The zero value is not a valid sort.
type Sort struct {
	kind     SortKind
	width    uint
	exponent uint
	mantissa uint
	index    *Sort
	elem     *Sort
}

var (
	Bool = Sort{kind: SortBool}
	Int  = Sort{kind: SortInt}
	Real = Sort{kind: SortReal}
)

func BitVec(width uint) Sort {
	if width == 0 {
		panic("bit-vector width must be positive")
	}
	return Sort{kind: SortBitVec, width: width}
}

func FloatingPoint(exponent, mantissa uint) Sort {
	if exponent < 2 || mantissa < 2 {
		panic(fmt.Sprintf("invalid floating-point format %d/%d", exponent, mantissa))
	}
	return Sort{kind: SortFloat, exponent: exponent, mantissa: mantissa}
}

func Array(index, elem Sort) Sort {
	return Sort{kind: SortArray, index: &index, elem: &elem}
}

func (s Sort) Kind() SortKind {
	return s.kind
}

// Width is the bit-vector width, zero for other sorts.
func (s Sort) Width() uint {
	return s.width
}

// Format returns exponent and significand sizes of a floating-point sort.
func (s Sort) Format() (exponent, mantissa uint) {
	return s.exponent, s.mantissa
}

func (s Sort) Index() Sort {
	if s.index == nil {
		return Sort{}
	}
	return *s.index
}

func (s Sort) Elem() Sort {
	if s.elem == nil {
		return Sort{}
	}
	return *s.elem
}

func (s Sort) Valid() bool {
	switch s.kind {
	case SortBool, SortInt, SortReal:
		return true
	case SortBitVec:
		return s.width > 0
	case SortFloat:
		return s.exponent > 1 && s.mantissa > 1
	case SortArray:
		return s.index != nil && s.elem != nil && s.index.Valid() && s.elem.Valid()
	}
	return false
}

func (s Sort) Equal(o Sort) bool {
	if s.kind != o.kind {
		return false
	}
	switch s.kind {
	case SortBitVec:
		return s.width == o.width
	case SortFloat:
		return s.exponent == o.exponent && s.mantissa == o.mantissa
	case SortArray:
		return s.Index().Equal(o.Index()) && s.Elem().Equal(o.Elem())
	}
	return true
}

func (s Sort) IsBool() bool {
	return s.kind == SortBool
}

func (s Sort) IsNumeric() bool {
	return s.kind == SortInt || s.kind == SortReal
}

func (s Sort) String() string {
	switch s.kind {
	case SortBool:
		return "Bool"
	case SortInt:
		return "Int"
	case SortReal:
		return "Real"
	case SortBitVec:
		return fmt.Sprintf("(_ BitVec %d)", s.width)
	case SortFloat:
		return fmt.Sprintf("(_ FloatingPoint %d %d)", s.exponent, s.mantissa)
	case SortArray:
		return fmt.Sprintf("(Array %s %s)", s.Index(), s.Elem())
	}
	return "<invalid>"
}
