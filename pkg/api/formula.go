package api

const (
	OpVar     = "var"
	OpConst   = "const"
	OpApply   = "apply"
	OpAnd     = "and"
	OpOr      = "or"
	OpNot     = "not"
	OpImplies = "implies"
	OpIff     = "iff"
	OpXor     = "xor"
	OpEq      = "eq"
	OpFPEq    = "fpeq"
	OpAdd     = "add"
	OpSub     = "sub"
	OpMul     = "mul"
	OpLt      = "lt"
	OpLe      = "le"
	OpBVAdd   = "bvadd"
	OpBVAnd   = "bvand"
	OpBVOr    = "bvor"
	OpBVXor   = "bvxor"
	OpBVNot   = "bvnot"
	OpSelect  = "select"
	OpStore   = "store"
	OpIte     = "ite"
	OpForall  = "forall"
	OpExists  = "exists"
)

type Function struct {
	Name    string   `json:"name"`
	Args    []string `json:"args,omitempty"`
	Returns string   `json:"returns"`
}

type Variable struct {
	Name string `json:"name"`
	Sort string `json:"sort"`
}

type Expr struct {
	Op    string     `json:"op"`
	Name  string     `json:"name,omitempty"`
	Value string     `json:"value,omitempty"`
	Sort  string     `json:"sort,omitempty"`
	Args  []*Expr    `json:"args,omitempty"`
	Bound []Variable `json:"bound,omitempty"`
	Body  *Expr      `json:"body,omitempty"`
}

// Formula is a set of declarations and assertions. The assertions are
// conjoined.
type Formula struct {
	Functions []Function `json:"functions,omitempty"`
	Variables []Variable `json:"variables,omitempty"`
	Assert    []*Expr    `json:"assert"`
	// Share makes structurally equal subterms one node.
	Share bool `json:"share,omitempty"`
}
