package routing

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hava-db/routeguard/telemetry"
)

// The pragma policy table. Every supported pragma name belongs to exactly
// one tier; classifying a newly encountered pragma means placing it into
// exactly one of these maps. Revisit whenever the SQLite pragma catalog
// changes.

// readPragmas are pure informational reads, safe on primary or replicas.
var readPragmas = map[string]bool{
	"table_list":      true,
	"index_list":      true,
	"table_info":      true,
	"table_xinfo":     true,
	"index_xinfo":     true,
	"pragma_list":     true,
	"compile_options": true,
	"database_list":   true,
	"function_list":   true,
	"module_list":     true,
	// encoding is effectively read-only for connections against an
	// already-created database, which is always the case here
	"encoding": true,
}

// primaryPragmas read whole-database state; replicas may lag behind the
// authoritative state these inspect, so they are pinned to the primary.
var primaryPragmas = map[string]bool{
	"foreign_key":        true,
	"foreign_key_list":   true,
	"foreign_key_check":  true,
	"collation_list":     true,
	"data_version":       true,
	"freelist_count":     true,
	"integrity_check":    true,
	"legacy_file_format": true,
	"page_count":         true,
	"quick_check":        true,
	"stats":              true,
}

// getterPragmas configure the connection or engine. Without an argument
// they act as getters and are servable by the primary; with an argument
// they would mutate per-connection state that cannot be propagated
// through the routing layer, so they are rejected.
var getterPragmas = map[string]bool{
	"analysis_limit":            true,
	"application_id":            true,
	"auto_vacuum":               true,
	"automatic_index":           true,
	"busy_timeout":              true,
	"cache_size":                true,
	"cache_spill":               true,
	"cell_size_check":           true,
	"checkpoint_fullfsync":      true,
	"defer_foreign_keys":        true,
	"fullfsync":                 true,
	"hard_heap_limit":           true,
	"journal_mode":              true,
	"journal_size_limit":        true,
	"legacy_alter_table":        true,
	"locking_mode":              true,
	"max_page_count":            true,
	"mmap_size":                 true,
	"page_size":                 true,
	"query_only":                true,
	"read_uncommitted":          true,
	"recursive_triggers":        true,
	"reverse_unordered_selects": true,
	"schema_version":            true,
	"secure_delete":             true,
	"soft_heap_limit":           true,
	"synchronous":               true,
	"temp_store":                true,
	"threads":                   true,
	"trusted_schema":            true,
	"user_version":              true,
	"wal_autocheckpoint":        true,
}

// deniedPragmas have side effects incompatible with pooled, routed
// execution and are rejected unconditionally.
var deniedPragmas = map[string]bool{
	"case_sensitive_like":      true,
	"ignore_check_constraints": true,
	"incremental_vacuum":       true,
	// TODO: check whether optimize can be performed safely
	"optimize":       true,
	"parser_trace":   true,
	"shrink_memory":  true,
	"wal_checkpoint": true,
}

// PragmaCategory resolves the routing category for a pragma by name.
// ok is false when the pragma is unsupported; unknown names additionally
// emit a non-fatal diagnostic.
func PragmaCategory(name string, hasArg bool) (Category, bool) {
	name = strings.ToLower(name)
	switch {
	case readPragmas[name]:
		return CategoryRead, true
	case primaryPragmas[name]:
		return CategoryWrite, true
	case getterPragmas[name]:
		if hasArg {
			return 0, false
		}
		return CategoryWrite, true
	case deniedPragmas[name]:
		return 0, false
	default:
		log.Debug().Str("pragma", name).Msg("Unknown pragma")
		telemetry.UnknownPragmasTotal.Inc()
		return 0, false
	}
}
