// Package parser turns raw SQLite SQL text into routing commands. It is
// the command source behind the routing package: a statement splitter
// finds statement boundaries, a head-token recognizer resolves the kinds
// the AST parser does not model (PRAGMA, EXPLAIN, transaction control,
// the CREATE family), and github.com/rqlite/sql handles everything else.
package parser

import "strings"

// chunk is one statement's worth of source text plus where it starts.
type chunk struct {
	sql  string
	line int // 1-based
	col  int // 1-based, in bytes
}

// splitter yields one chunk per top-level semicolon-terminated statement.
// It understands single/double/backtick/bracket quoting and both comment
// forms, and tracks BEGIN/CASE..END nesting inside CREATE statements so
// trigger bodies are not split at embedded semicolons.
type splitter struct {
	input string
	pos   int
	line  int
	col   int
}

func newSplitter(input string) *splitter {
	return &splitter{input: input, line: 1, col: 1}
}

func isWordByte(c byte) bool {
	return c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}

// next returns the next non-empty chunk, or ok=false at end of input.
func (s *splitter) next() (chunk, bool) {
	for {
		s.skipSpaceAndComments()
		if s.pos >= len(s.input) {
			return chunk{}, false
		}
		if s.input[s.pos] == ';' {
			s.advance()
			continue
		}

		start, line, col := s.pos, s.line, s.col
		// Trigger bodies hold semicolons between BEGIN and END; CASE..END
		// expressions nest inside them. Only CREATE statements have that
		// shape, so END depth is tracked for those alone.
		trackEnds := false
		first := true
		depth := 0
		for s.pos < len(s.input) {
			c := s.input[s.pos]
			switch {
			case c == ';' && depth == 0:
				text := strings.TrimRight(s.input[start:s.pos], " \t\r\n\v\f")
				s.advance()
				return chunk{sql: text, line: line, col: col}, true
			case c == '\'' || c == '"' || c == '`' || c == '[':
				s.skipQuoted(c)
			case c == '-' && s.peekByte(1) == '-':
				s.skipLineComment()
			case c == '/' && s.peekByte(1) == '*':
				s.skipBlockComment()
			case isWordByte(c):
				word := s.scanWord()
				if first {
					trackEnds = word == "create"
					first = false
				} else if trackEnds {
					switch word {
					case "begin", "case":
						depth++
					case "end":
						if depth > 0 {
							depth--
						}
					}
				}
			default:
				s.advance()
			}
		}

		// unterminated final statement
		text := strings.TrimRight(s.input[start:], " \t\r\n\v\f")
		return chunk{sql: text, line: line, col: col}, true
	}
}

func (s *splitter) advance() {
	if s.input[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos++
}

func (s *splitter) peekByte(offset int) byte {
	if s.pos+offset >= len(s.input) {
		return 0
	}
	return s.input[s.pos+offset]
}

func (s *splitter) skipSpaceAndComments() {
	for s.pos < len(s.input) {
		switch c := s.input[s.pos]; {
		case isSpaceByte(c):
			s.advance()
		case c == '-' && s.peekByte(1) == '-':
			s.skipLineComment()
		case c == '/' && s.peekByte(1) == '*':
			s.skipBlockComment()
		default:
			return
		}
	}
}

func (s *splitter) skipLineComment() {
	for s.pos < len(s.input) && s.input[s.pos] != '\n' {
		s.advance()
	}
}

func (s *splitter) skipBlockComment() {
	s.advance()
	s.advance()
	for s.pos < len(s.input) {
		if s.input[s.pos] == '*' && s.peekByte(1) == '/' {
			s.advance()
			s.advance()
			return
		}
		s.advance()
	}
}

// skipQuoted consumes a quoted string or identifier including its
// delimiters. Doubled delimiters escape inside quoted text.
func (s *splitter) skipQuoted(open byte) {
	closing := open
	if open == '[' {
		closing = ']'
	}
	s.advance()
	for s.pos < len(s.input) {
		c := s.input[s.pos]
		s.advance()
		if c == closing {
			if closing != ']' && s.pos < len(s.input) && s.input[s.pos] == closing {
				s.advance()
				continue
			}
			return
		}
	}
}

func (s *splitter) scanWord() string {
	start := s.pos
	for s.pos < len(s.input) && isWordByte(s.input[s.pos]) {
		s.advance()
	}
	return strings.ToLower(s.input[start:s.pos])
}
