// Package routing decides whether SQL statements may be served by a
// read-only replica or must go to the writable primary, and tracks whether
// a statement sequence leaves an open transaction. It consumes parsed
// commands from a Source; it never parses SQL text itself.
package routing

// Category is the routing kind assigned to a classified SQL command.
type Category int

const (
	// CategoryTxnBegin opens an explicit transaction
	CategoryTxnBegin Category = iota
	// CategoryTxnEnd commits or rolls back an explicit transaction
	CategoryTxnEnd
	// CategoryRead is servable by primary or replica
	CategoryRead
	// CategoryWrite must be served by the primary
	CategoryWrite
	// CategoryOther has no data-plane effect (EXPLAIN wrappers)
	CategoryOther
)

func (c Category) String() string {
	switch c {
	case CategoryTxnBegin:
		return "txn_begin"
	case CategoryTxnEnd:
		return "txn_end"
	case CategoryRead:
		return "read"
	case CategoryWrite:
		return "write"
	case CategoryOther:
		return "other"
	default:
		return "unknown"
	}
}
