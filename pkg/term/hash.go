package term

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes a structural hash of t. Structurally equal terms have
// the same fingerprint regardless of their IDs.
func Fingerprint(t Term) uint64 {
	return fingerprint(t, map[ID]uint64{})
}

func fingerprint(t Term, memo map[ID]uint64) uint64 {
	if h, ok := memo[t.ID()]; ok {
		return h
	}
	d := xxhash.New()
	var buf [8]byte
	writeUint := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}
	writeString := func(s string) {
		writeUint(uint64(len(s)))
		_, _ = d.WriteString(s)
	}

	writeUint(uint64(t.Kind()))
	writeString(t.Sort().String())
	switch n := t.(type) {
	case *Variable:
		writeString(n.name)
	case *Constant:
		writeString(n.value)
	case *Application:
		writeString(n.decl.Key())
	case *Connective:
		writeUint(uint64(n.op))
	case *Quantifier:
		writeUint(uint64(n.kind))
		for _, v := range n.bound {
			writeString(v.name)
			writeString(v.sort.String())
		}
	}
	for _, c := range Children(t) {
		writeUint(fingerprint(c, memo))
	}
	h := d.Sum64()
	memo[t.ID()] = h
	return h
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b Term) bool {
	if a == b {
		return true
	}
	if Fingerprint(a) != Fingerprint(b) {
		return false
	}
	return equal(a, b)
}

func equal(a, b Term) bool {
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() || !a.Sort().Equal(b.Sort()) {
		return false
	}
	switch x := a.(type) {
	case *Variable:
		return x.name == b.(*Variable).name
	case *Constant:
		return x.value == b.(*Constant).value
	case *Application:
		if !x.decl.Equal(b.(*Application).decl) {
			return false
		}
	case *Connective:
		if x.op != b.(*Connective).op {
			return false
		}
	case *Quantifier:
		y := b.(*Quantifier)
		if x.kind != y.kind || len(x.bound) != len(y.bound) {
			return false
		}
		for i := range x.bound {
			if !equal(x.bound[i], y.bound[i]) {
				return false
			}
		}
	}
	ac, bc := Children(a), Children(b)
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !equal(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// Interner hash-conses terms: structurally equal subterms passed through the
// same Interner come back as one shared node.
type Interner struct {
	buckets map[uint64][]Term
	memo    map[ID]Term
	hashes  map[ID]uint64
}

func NewInterner() *Interner {
	return &Interner{buckets: map[uint64][]Term{}, memo: map[ID]Term{}, hashes: map[ID]uint64{}}
}

func (in *Interner) Intern(t Term) Term {
	if r, ok := in.memo[t.ID()]; ok {
		return r
	}
	children := Children(t)
	for i, c := range children {
		children[i] = in.Intern(c)
	}
	r := t
	if len(children) > 0 {
		r = Rebuild(t, children)
	}
	h := fingerprint(r, in.hashes)
	for _, cand := range in.buckets[h] {
		if equal(cand, r) {
			in.memo[t.ID()] = cand
			return cand
		}
	}
	in.buckets[h] = append(in.buckets[h], r)
	in.memo[t.ID()] = r
	return r
}

// Len is the number of distinct terms held.
func (in *Interner) Len() int {
	n := 0
	for _, b := range in.buckets {
		n += len(b)
	}
	return n
}
