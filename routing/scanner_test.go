package routing

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource replays a scripted command sequence, so the scanner and
// classifier are exercised without any SQL parsing.
type fakeSource struct {
	cmds []Command
	err  error // returned after cmds are drained, instead of io.EOF
	pos  int
}

func (f *fakeSource) Next() (Command, error) {
	if f.pos >= len(f.cmds) {
		if f.err != nil {
			err := f.err
			f.err = nil
			return Command{}, err
		}
		return Command{}, io.EOF
	}
	cmd := f.cmds[f.pos]
	f.pos++
	return cmd, nil
}

func TestScanner_ClassifiesInOrder(t *testing.T) {
	t.Parallel()

	src := &fakeSource{cmds: []Command{
		{SQL: "BEGIN", Node: BeginNode{}},
		{SQL: "INSERT INTO t VALUES (1)", Node: InsertNode{}},
		{SQL: "COMMIT", Node: CommitNode{}},
	}}
	scanner := NewScanner(src)

	var stmts []Statement
	for {
		stmt, err := scanner.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		stmts = append(stmts, stmt)
	}

	require.Len(t, stmts, 3)
	assert.Equal(t, CategoryTxnBegin, stmts[0].Category)
	assert.Equal(t, CategoryWrite, stmts[1].Category)
	assert.Equal(t, CategoryTxnEnd, stmts[2].Category)
	assert.Equal(t, "INSERT INTO t VALUES (1)", stmts[1].SQL)
	assert.Equal(t, TxnStateInit, PredictFinalState(TxnStateInit, stmts))
}

func TestScanner_UnsupportedDoesNotStopScanning(t *testing.T) {
	t.Parallel()

	src := &fakeSource{cmds: []Command{
		{SQL: "VACUUM", Node: UnknownNode{Keyword: "vacuum"}},
		{SQL: "SELECT 1", Node: SelectNode{}},
	}}
	scanner := NewScanner(src)

	_, err := scanner.Next()
	require.ErrorIs(t, err, ErrUnsupportedStatement)

	stmt, err := scanner.Next()
	require.NoError(t, err)
	assert.Equal(t, CategoryRead, stmt.Category)

	_, err = scanner.Next()
	assert.Equal(t, io.EOF, err)
}

func TestScanner_SyntaxErrorExhaustsSequence(t *testing.T) {
	t.Parallel()

	src := &fakeSource{
		cmds: []Command{{SQL: "SELECT 1", Node: SelectNode{}}},
		err:  &SyntaxError{Line: 2, Column: 1, Token: "SELEC"},
	}
	scanner := NewScanner(src)

	_, err := scanner.Next()
	require.NoError(t, err)

	_, err = scanner.Next()
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "syntax error around L2:1: `SELEC`", syntaxErr.Error())

	// the scanner is exhausted after a syntax error
	_, err = scanner.Next()
	assert.Equal(t, io.EOF, err)
}

func TestBuild_MutationFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		node       Node
		isMutation bool
		isInsert   bool
	}{
		{"insert", InsertNode{}, true, true},
		{"update", UpdateNode{}, true, false},
		{"delete", DeleteNode{}, true, false},
		{"select", SelectNode{}, false, false},
		{"create table", CreateTableNode{}, false, false},
		{"begin", BeginNode{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt, err := Build(Command{SQL: "x", Node: tt.node})
			require.NoError(t, err)
			assert.Equal(t, tt.isMutation, stmt.IsMutation)
			assert.Equal(t, tt.isInsert, stmt.IsInsert)
			if stmt.IsInsert {
				assert.True(t, stmt.IsMutation, "is_insert implies is_mutation")
			}
		})
	}
}

func TestStatement_IsReadOnly(t *testing.T) {
	t.Parallel()

	assert.True(t, Statement{Category: CategoryRead}.IsReadOnly())
	assert.True(t, Statement{Category: CategoryTxnBegin}.IsReadOnly())
	assert.True(t, Statement{Category: CategoryTxnEnd}.IsReadOnly())
	assert.False(t, Statement{Category: CategoryWrite}.IsReadOnly())
	assert.False(t, Statement{Category: CategoryOther}.IsReadOnly())
}
