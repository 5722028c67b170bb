package parser

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	rqlitesql "github.com/rqlite/sql"

	"github.com/hava-db/routeguard/routing"
)

// Source produces routing commands from one SQL text, lazily and in input
// order. It implements routing.Source: io.EOF at exhaustion, and a
// *routing.SyntaxError ends the sequence since parser recovery is not
// assumed usable.
type Source struct {
	sp     *splitter
	cache  *Cache
	failed bool
}

// NewSource returns a source over sqlText.
func NewSource(sqlText string) *Source {
	return &Source{sp: newSplitter(sqlText)}
}

// NewCachedSource returns a source that consults cache before parsing.
// The cache may be shared across sources and sessions.
func NewCachedSource(sqlText string, cache *Cache) *Source {
	return &Source{sp: newSplitter(sqlText), cache: cache}
}

// Scan wraps a new source over sqlText in a statement scanner.
func Scan(sqlText string) *routing.Scanner {
	return routing.NewScanner(NewSource(sqlText))
}

func (s *Source) Next() (routing.Command, error) {
	if s.failed {
		return routing.Command{}, io.EOF
	}
	ch, ok := s.sp.next()
	if !ok {
		return routing.Command{}, io.EOF
	}
	if s.cache != nil {
		if cmd, ok := s.cache.get(ch.sql); ok {
			return cmd, nil
		}
	}
	cmd, err := s.parse(ch)
	if err != nil {
		s.failed = true
		return routing.Command{}, err
	}
	if s.cache != nil {
		s.cache.put(ch.sql, cmd)
	}
	return cmd, nil
}

func (s *Source) parse(ch chunk) (routing.Command, error) {
	if node, ok := recognize(ch.sql); ok {
		// Head-recognized statements keep their original text. For
		// CREATE VIRTUAL TABLE this is required: round-tripping through
		// an AST rendering is not reliable for that statement kind, so
		// the verbatim source substring is authoritative.
		return routing.Command{SQL: ch.sql, Node: node}, nil
	}

	p := rqlitesql.NewParser(strings.NewReader(ch.sql))
	astStmt, err := p.ParseStatement()
	if err != nil {
		return routing.Command{}, locateSyntaxError(ch, err)
	}

	text := ch.sql
	if str, ok := astStmt.(fmt.Stringer); ok {
		text = str.String()
	}
	return routing.Command{SQL: text, Node: mapNode(astStmt, ch)}, nil
}

// mapNode converts an AST statement into a routing node. Node types
// outside the routing grammar become UnknownNode, which classification
// rejects as unsupported.
func mapNode(stmt rqlitesql.Statement, ch chunk) routing.Node {
	switch stmt.(type) {
	case *rqlitesql.SelectStatement:
		return routing.SelectNode{}
	case *rqlitesql.InsertStatement:
		// covers REPLACE and INSERT OR REPLACE as well
		return routing.InsertNode{}
	case *rqlitesql.UpdateStatement:
		return routing.UpdateNode{}
	case *rqlitesql.DeleteStatement:
		return routing.DeleteNode{}
	case *rqlitesql.DropTableStatement:
		return routing.DropTableNode{}
	case *rqlitesql.AlterTableStatement:
		return routing.AlterTableNode{}
	case *rqlitesql.CreateIndexStatement:
		return routing.CreateIndexNode{}
	case *rqlitesql.CreateTableStatement:
		// the head recognizer only keeps TEMP and schema-qualified
		// variants for itself; a plain CREATE TABLE parses here
		return routing.CreateTableNode{}
	case *rqlitesql.CreateTriggerStatement:
		return routing.CreateTriggerNode{}
	default:
		// savepoints, views, ANALYZE, DROP INDEX/VIEW/TRIGGER, ...
		return routing.UnknownNode{Keyword: leadingKeyword(ch.sql)}
	}
}

func leadingKeyword(stmt string) string {
	sc := &headScanner{s: stmt}
	word, _ := sc.next()
	return word
}

// The AST parser formats errors as "L:C: message", usually quoting the
// offending token. Extract what is there; fall back to the chunk origin
// and leading keyword when the shape differs.
var (
	errPosRe   = regexp.MustCompile(`(\d+):(\d+): `)
	errTokenRe = regexp.MustCompile(`'([^']+)'`)
)

func locateSyntaxError(ch chunk, err error) *routing.SyntaxError {
	syntaxErr := &routing.SyntaxError{Line: ch.line, Column: ch.col, Token: leadingKeyword(ch.sql)}
	msg := err.Error()
	if m := errPosRe.FindStringSubmatch(msg); m != nil {
		l, _ := strconv.Atoi(m[1])
		c, _ := strconv.Atoi(m[2])
		if l <= 1 {
			// same line as the chunk start; columns add up
			syntaxErr.Column = ch.col + c - 1
		} else {
			syntaxErr.Column = c
		}
		syntaxErr.Line = ch.line + l - 1
	}
	if m := errTokenRe.FindStringSubmatch(msg); m != nil {
		syntaxErr.Token = m[1]
	}
	return syntaxErr
}
