package routing

// Node is the routing-relevant structure of one parsed SQL command. The
// concrete types cover exactly the grammar subset the classifier
// understands; any command outside that subset arrives as UnknownNode and
// fails classification instead of silently defaulting.
type Node interface {
	node()
}

// ExplainNode is an EXPLAIN or EXPLAIN QUERY PLAN wrapper. The wrapped
// statement is irrelevant for routing; the whole command reads plan data.
type ExplainNode struct{}

// BeginNode opens an explicit transaction.
type BeginNode struct{}

// CommitNode ends a transaction (COMMIT or END).
type CommitNode struct{}

// RollbackNode ends a transaction by rolling it back.
type RollbackNode struct{}

type SelectNode struct{}
type InsertNode struct{}
type UpdateNode struct{}
type DeleteNode struct{}
type DropTableNode struct{}
type AlterTableNode struct{}
type CreateIndexNode struct{}

// CreateTableNode carries the temporary flag and any schema qualifier of
// the target table so TEMP objects can be excluded from replication.
type CreateTableNode struct {
	Temporary bool
	Schema    string // database qualifier of the table name, "" if none
}

// CreateVirtualTableNode has no temporary flag in the grammar; only a
// TEMP schema qualifier can make it session-local.
type CreateVirtualTableNode struct {
	Schema string
}

type CreateTriggerNode struct {
	Temporary bool
	Schema    string
}

// PragmaNode is a PRAGMA command. HasArg is true when the pragma carries
// an argument, via either `PRAGMA name = value` or `PRAGMA name(value)`.
type PragmaNode struct {
	Name   string
	HasArg bool
}

// UnknownNode is any command the routing grammar does not model
// (VACUUM, ATTACH, savepoints, views, unrecognized DDL, ...).
type UnknownNode struct {
	Keyword string // leading keyword, kept for diagnostics
}

func (ExplainNode) node()            {}
func (BeginNode) node()              {}
func (CommitNode) node()             {}
func (RollbackNode) node()           {}
func (SelectNode) node()             {}
func (InsertNode) node()             {}
func (UpdateNode) node()             {}
func (DeleteNode) node()             {}
func (DropTableNode) node()          {}
func (AlterTableNode) node()         {}
func (CreateIndexNode) node()        {}
func (CreateTableNode) node()        {}
func (CreateVirtualTableNode) node() {}
func (CreateTriggerNode) node()      {}
func (PragmaNode) node()             {}
func (UnknownNode) node()            {}

// Command pairs a node with the statement text it was parsed from.
type Command struct {
	SQL  string
	Node Node
}

// Source yields parsed commands one at a time, in input order. Next
// returns io.EOF once the input is exhausted and *SyntaxError when the
// underlying parser cannot make sense of the input; after a *SyntaxError
// the source produces no further commands. Sources hold parser state for
// exactly one input text and may be abandoned at any point.
type Source interface {
	Next() (Command, error)
}
