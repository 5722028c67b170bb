package routing

import (
	"errors"
	"io"

	"github.com/hava-db/routeguard/telemetry"
)

// Scanner drains a Source one classified statement at a time. Statements
// are produced lazily; callers may stop early without leaking anything.
type Scanner struct {
	src  Source
	done bool
}

func NewScanner(src Source) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next statement record. It returns io.EOF once the
// input is exhausted, ErrUnsupportedStatement for a command without a
// routing category (scanning continues past it), and *SyntaxError when
// the source reports malformed input, after which the scanner is
// exhausted.
func (s *Scanner) Next() (Statement, error) {
	if s.done {
		return Statement{}, io.EOF
	}

	cmd, err := s.src.Next()
	if err != nil {
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			telemetry.SyntaxErrorsTotal.Inc()
			s.done = true
		} else if err == io.EOF {
			s.done = true
		}
		return Statement{}, err
	}

	return Build(cmd)
}
