package routing

// TxnState tracks whether a session's statement stream is inside an
// explicit transaction. Each logical session owns its own TxnState; there
// is no shared or global state, so concurrent sessions need no locking.
type TxnState int

const (
	// TxnStateInit means no transaction is open
	TxnStateInit TxnState = iota
	// TxnStateInTxn means an explicit transaction is open
	TxnStateInTxn
	// TxnStateInvalid means a begin/end pairing violation was observed.
	// It is absorbing: no later statement can leave it. It is a sentinel
	// for the caller, not a hard failure.
	TxnStateInvalid
)

func (s TxnState) String() string {
	switch s {
	case TxnStateInit:
		return "init"
	case TxnStateInTxn:
		return "in_txn"
	case TxnStateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Step advances the transaction state machine by one category.
func Step(state TxnState, c Category) TxnState {
	switch {
	case state == TxnStateInvalid:
		return TxnStateInvalid
	case state == TxnStateInit && c == CategoryTxnBegin:
		return TxnStateInTxn
	case state == TxnStateInTxn && c == CategoryTxnEnd:
		return TxnStateInit
	case c == CategoryTxnBegin || c == CategoryTxnEnd:
		// BEGIN inside a transaction, or COMMIT/ROLLBACK outside one
		return TxnStateInvalid
	default:
		// reads, writes and other statements leave the state unchanged
		return state
	}
}

// Advance steps the state in place.
func (s *TxnState) Advance(c Category) {
	*s = Step(*s, c)
}

// Reset unconditionally forces the state back to Init. Used when the
// session is known to start fresh, e.g. a new connection or an
// out-of-band rollback.
func (s *TxnState) Reset() {
	*s = TxnStateInit
}

// PredictFinalState folds the transition function over the categories of
// stmts, starting from initial. The router calls this before dispatching a
// batch: a batch that opens or stays inside a transaction must be pinned
// to a single node for its whole duration.
func PredictFinalState(initial TxnState, stmts []Statement) TxnState {
	state := initial
	for _, stmt := range stmts {
		state = Step(state, stmt.Category)
	}
	return state
}
