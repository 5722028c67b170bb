package parser

import (
	"strings"

	"github.com/hava-db/routeguard/routing"
)

// headScanner tokenizes the front of a single statement: bare words come
// back lowercased, quoted identifiers unquoted, anything else as a single
// character. Just enough lexing to recognize statement heads.
type headScanner struct {
	s string
	i int
}

func (h *headScanner) next() (string, bool) {
	h.skipBlanks()
	if h.i >= len(h.s) {
		return "", false
	}
	c := h.s[h.i]
	switch {
	case isWordByte(c):
		start := h.i
		for h.i < len(h.s) && isWordByte(h.s[h.i]) {
			h.i++
		}
		return strings.ToLower(h.s[start:h.i]), true
	case c == '"' || c == '`' || c == '[':
		closing := c
		if c == '[' {
			closing = ']'
		}
		h.i++
		start := h.i
		for h.i < len(h.s) && h.s[h.i] != closing {
			h.i++
		}
		tok := strings.ToLower(h.s[start:h.i])
		if h.i < len(h.s) {
			h.i++
		}
		return tok, true
	default:
		h.i++
		return string(c), true
	}
}

func (h *headScanner) skipBlanks() {
	for h.i < len(h.s) {
		c := h.s[h.i]
		switch {
		case isSpaceByte(c):
			h.i++
		case c == '-' && h.i+1 < len(h.s) && h.s[h.i+1] == '-':
			for h.i < len(h.s) && h.s[h.i] != '\n' {
				h.i++
			}
		case c == '/' && h.i+1 < len(h.s) && h.s[h.i+1] == '*':
			h.i += 2
			for h.i < len(h.s) {
				if h.s[h.i] == '*' && h.i+1 < len(h.s) && h.s[h.i+1] == '/' {
					h.i += 2
					break
				}
				h.i++
			}
		default:
			return
		}
	}
}

// recognize resolves statement kinds from the head tokens alone: the ones
// the AST parser has no grammar for, plus the CREATE family, where the
// temporary flag and schema qualifier decide routing. ok=false hands the
// statement to the AST parser.
func recognize(stmt string) (routing.Node, bool) {
	sc := &headScanner{s: stmt}
	word, ok := sc.next()
	if !ok {
		return nil, false
	}
	switch word {
	case "explain":
		return routing.ExplainNode{}, true
	case "begin":
		return routing.BeginNode{}, true
	case "commit", "end":
		return routing.CommitNode{}, true
	case "rollback":
		return routing.RollbackNode{}, true
	case "pragma":
		return recognizePragma(sc)
	case "create":
		return recognizeCreate(sc)
	case "vacuum", "attach", "detach", "reindex":
		// valid SQLite the AST parser rejects; unsupported, not a syntax error
		return routing.UnknownNode{Keyword: word}, true
	default:
		return nil, false
	}
}

func recognizePragma(sc *headScanner) (routing.Node, bool) {
	name, ok := sc.next()
	if !ok {
		// bare PRAGMA; let the parser report the syntax error
		return nil, false
	}
	tok, ok := sc.next()
	if ok && tok == "." {
		// schema qualifier does not affect pragma policy
		name, ok = sc.next()
		if !ok {
			return nil, false
		}
		tok, ok = sc.next()
	}
	hasArg := ok && (tok == "=" || tok == "(")
	return routing.PragmaNode{Name: name, HasArg: hasArg}, true
}

func recognizeCreate(sc *headScanner) (routing.Node, bool) {
	word, ok := sc.next()
	if !ok {
		return nil, false
	}
	temporary := false
	if word == "temp" || word == "temporary" {
		temporary = true
		word, ok = sc.next()
		if !ok {
			return nil, false
		}
	}
	switch word {
	case "virtual":
		if temporary {
			return nil, false
		}
		if word, ok = sc.next(); !ok || word != "table" {
			return nil, false
		}
		schema, ok := scanTargetSchema(sc)
		if !ok {
			return nil, false
		}
		return routing.CreateVirtualTableNode{Schema: schema}, true
	case "table":
		schema, ok := scanTargetSchema(sc)
		if !ok {
			return nil, false
		}
		if !temporary && schema == "" {
			// plain CREATE TABLE is within the AST parser's grammar;
			// let it check the whole body
			return nil, false
		}
		return routing.CreateTableNode{Temporary: temporary, Schema: schema}, true
	case "trigger":
		schema, ok := scanTargetSchema(sc)
		if !ok {
			return nil, false
		}
		return routing.CreateTriggerNode{Temporary: temporary, Schema: schema}, true
	case "unique":
		if word, ok = sc.next(); !ok || word != "index" {
			return nil, false
		}
		return routing.CreateIndexNode{}, true
	case "index":
		return routing.CreateIndexNode{}, true
	default:
		// views and anything else go to the AST parser
		return nil, false
	}
}

// scanTargetSchema reads the object name after CREATE ... TABLE/TRIGGER
// and returns its schema qualifier, if any.
func scanTargetSchema(sc *headScanner) (string, bool) {
	name, ok := sc.next()
	if !ok {
		return "", false
	}
	if name == "if" {
		if word, ok := sc.next(); !ok || word != "not" {
			return "", false
		}
		if word, ok := sc.next(); !ok || word != "exists" {
			return "", false
		}
		name, ok = sc.next()
		if !ok {
			return "", false
		}
	}
	if dot, ok := sc.next(); ok && dot == "." {
		return name, true
	}
	return "", true
}
