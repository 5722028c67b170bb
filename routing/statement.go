package routing

import "github.com/hava-db/routeguard/telemetry"

// Statement is one classified SQL command, ready to be routed. Values are
// built once per parsed command and never mutated afterwards; they hold no
// external resources.
type Statement struct {
	SQL      string
	Category Category
	// IsMutation is true iff the command is an INSERT, UPDATE or DELETE,
	// the subset requiring write-ahead log propagation to replicas.
	IsMutation bool
	IsInsert   bool
}

// Build classifies cmd and produces its routing record. It returns
// ErrUnsupportedStatement when the command has no routing category.
func Build(cmd Command) (Statement, error) {
	category, ok := Classify(cmd.Node)
	if !ok {
		telemetry.UnsupportedStatementsTotal.Inc()
		return Statement{}, ErrUnsupportedStatement
	}

	var isMutation, isInsert bool
	switch cmd.Node.(type) {
	case InsertNode:
		isMutation, isInsert = true, true
	case UpdateNode, DeleteNode:
		isMutation = true
	}

	telemetry.StatementsClassifiedTotal.With(category.String()).Inc()
	return Statement{
		SQL:        cmd.SQL,
		Category:   category,
		IsMutation: isMutation,
		IsInsert:   isInsert,
	}, nil
}

// IsReadOnly reports whether the statement is eligible for a replica on
// its own, independent of overall transaction state. Transaction control
// qualifies: it writes nothing by itself.
func (s Statement) IsReadOnly() bool {
	switch s.Category {
	case CategoryRead, CategoryTxnBegin, CategoryTxnEnd:
		return true
	default:
		return false
	}
}
