package parser

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hava-db/routeguard/routing"
	"github.com/hava-db/routeguard/telemetry"
)

// Validator cross-checks statement syntax against in-memory SQLite, the
// engine routed statements ultimately execute on. The AST parser trails
// the engine's grammar in places; Prepare is the authority.
type Validator struct {
	connPool chan *sql.DB
}

func NewValidator(poolSize int) (*Validator, error) {
	pool := make(chan *sql.DB, poolSize)
	for i := 0; i < poolSize; i++ {
		db, err := sql.Open("sqlite3", ":memory:")
		if err != nil {
			for j := 0; j < i; j++ {
				closeDB := <-pool
				closeDB.Close()
			}
			return nil, err
		}
		pool <- db
	}
	return &Validator{connPool: pool}, nil
}

func (v *Validator) Close() {
	close(v.connPool)
	for db := range v.connPool {
		db.Close()
	}
}

// Validate prepares the statement and reports true syntax errors. Schema
// errors mean the syntax is fine and the objects are merely absent from
// the scratch database; those pass.
func (v *Validator) Validate(stmt routing.Statement) error {
	if !shouldValidate(stmt.Category) {
		return nil
	}

	db := <-v.connPool
	defer func() { v.connPool <- db }()

	prepared, err := db.Prepare(stmt.SQL)
	if err != nil {
		if isSchemaError(err) {
			return nil
		}
		telemetry.ValidationFailuresTotal.Inc()
		return err
	}
	prepared.Close()
	return nil
}

// shouldValidate limits cross-checking to the data-plane categories;
// transaction control carries no grammar worth a pool round-trip.
func shouldValidate(c routing.Category) bool {
	switch c {
	case routing.CategoryRead, routing.CategoryWrite:
		return true
	default:
		return false
	}
}

func isSchemaError(err error) bool {
	errStr := err.Error()
	return strings.Contains(errStr, "no such table") ||
		strings.Contains(errStr, "no such column") ||
		strings.Contains(errStr, "no such index") ||
		strings.Contains(errStr, "no such view") ||
		strings.Contains(errStr, "no such trigger")
}
