package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPragmaCategory_Tiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		pragma string
		hasArg bool
		want   Category
		ok     bool
	}{
		// tier 1: pure informational reads
		{"table_info reads", "table_info", true, CategoryRead, true},
		{"table_list reads", "table_list", false, CategoryRead, true},
		{"index_list reads", "index_list", true, CategoryRead, true},
		{"compile_options reads", "compile_options", false, CategoryRead, true},
		{"function_list reads", "function_list", false, CategoryRead, true},
		{"encoding reads", "encoding", false, CategoryRead, true},

		// tier 2: whole-database-state reads, primary only
		{"integrity_check pinned to primary", "integrity_check", false, CategoryWrite, true},
		{"foreign_key_check pinned to primary", "foreign_key_check", false, CategoryWrite, true},
		{"freelist_count pinned to primary", "freelist_count", false, CategoryWrite, true},
		{"data_version pinned to primary", "data_version", false, CategoryWrite, true},
		{"collation_list pinned to primary", "collation_list", false, CategoryWrite, true},

		// tier 3: configuration getters; setting is rejected
		{"cache_size getter", "cache_size", false, CategoryWrite, true},
		{"cache_size setter rejected", "cache_size", true, 0, false},
		{"journal_mode getter", "journal_mode", false, CategoryWrite, true},
		{"journal_mode setter rejected", "journal_mode", true, 0, false},
		{"synchronous getter", "synchronous", false, CategoryWrite, true},
		{"busy_timeout setter rejected", "busy_timeout", true, 0, false},
		{"auto_vacuum getter", "auto_vacuum", false, CategoryWrite, true},

		// tier 4: denied unconditionally
		{"wal_checkpoint denied", "wal_checkpoint", false, 0, false},
		{"shrink_memory denied", "shrink_memory", false, 0, false},
		{"optimize denied", "optimize", false, 0, false},
		{"incremental_vacuum denied", "incremental_vacuum", true, 0, false},
		{"parser_trace denied", "parser_trace", false, 0, false},
		{"case_sensitive_like denied", "case_sensitive_like", true, 0, false},
		{"ignore_check_constraints denied", "ignore_check_constraints", false, 0, false},

		// unmatched names
		{"unknown pragma rejected", "made_up_pragma", false, 0, false},
		{"unknown pragma with arg rejected", "made_up_pragma", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PragmaCategory(tt.pragma, tt.hasArg)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestPragmaCategory_CaseInsensitive(t *testing.T) {
	t.Parallel()

	got, ok := PragmaCategory("TABLE_INFO", false)
	assert.True(t, ok)
	assert.Equal(t, CategoryRead, got)

	got, ok = PragmaCategory("Cache_Size", false)
	assert.True(t, ok)
	assert.Equal(t, CategoryWrite, got)
}

// Each supported pragma name must live in exactly one tier.
func TestPragmaPolicyTable_TiersAreDisjoint(t *testing.T) {
	t.Parallel()

	tiers := []map[string]bool{readPragmas, primaryPragmas, getterPragmas, deniedPragmas}
	seen := map[string]int{}
	for _, tier := range tiers {
		for name := range tier {
			seen[name]++
		}
	}
	for name, count := range seen {
		assert.Equalf(t, 1, count, "pragma %q appears in %d tiers", name, count)
	}
}
