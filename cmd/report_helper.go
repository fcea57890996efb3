package main

import (
	"cmp"
	"slices"

	"github.com/rmohr/ufelim/pkg/ackermann"
	"golang.org/x/exp/maps"
)

type report struct {
	Depth int
	// Applications counts applications per function signature.
	Applications map[string]int
}

func sortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

func toReport(depth int, groups *ackermann.Groups) *report {
	r := &report{Depth: depth, Applications: map[string]int{}}
	for _, decl := range groups.Decls() {
		r.Applications[decl.String()] = len(groups.Applications(decl))
	}
	return r
}
