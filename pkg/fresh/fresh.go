// Package fresh hands out names for substitute variables.
package fresh

import (
	"strconv"
	"sync/atomic"
)

const DefaultPrefix = "__UF_fresh_"

// Default is shared by every elimination that does not bring its own
// generator, so names stay unique for the whole process.
var Default = NewGenerator(DefaultPrefix)

// Generator produces names from a monotonically increasing counter. It is
// safe for concurrent use and never returns the same name twice.
type Generator struct {
	prefix  string
	counter atomic.Uint64
}

func NewGenerator(prefix string) *Generator {
	return &Generator{prefix: prefix}
}

func (g *Generator) Next() string {
	return g.prefix + strconv.FormatUint(g.counter.Add(1), 10)
}

func (g *Generator) Prefix() string {
	return g.prefix
}

// Issued returns how many names were handed out so far.
func (g *Generator) Issued() uint64 {
	return g.counter.Load()
}
