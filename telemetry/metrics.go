package telemetry

// Classification metrics
var (
	// StatementsClassifiedTotal counts classified statements by category
	StatementsClassifiedTotal CounterVec = noopCounterVec{}

	// UnsupportedStatementsTotal counts commands with no routing category
	UnsupportedStatementsTotal Counter = NoopStat{}

	// UnknownPragmasTotal counts pragma names missing from the policy table
	UnknownPragmasTotal Counter = NoopStat{}

	// SyntaxErrorsTotal counts inputs aborted by a parser syntax error
	SyntaxErrorsTotal Counter = NoopStat{}
)

// Parser metrics
var (
	// ClassifierCacheEventsTotal counts classification cache lookups by result (hit, miss)
	ClassifierCacheEventsTotal CounterVec = noopCounterVec{}

	// ValidationFailuresTotal counts statements rejected by the SQLite cross-validator
	ValidationFailuresTotal Counter = NoopStat{}
)

// InitMetrics initializes all Prometheus metrics.
// Must be called after InitializeTelemetry().
func InitMetrics() {
	StatementsClassifiedTotal = NewCounterVec(
		"statements_classified_total",
		"Classified statements by routing category",
		[]string{"category"},
	)
	UnsupportedStatementsTotal = NewCounter(
		"unsupported_statements_total",
		"Commands rejected because no routing category applies",
	)
	UnknownPragmasTotal = NewCounter(
		"unknown_pragmas_total",
		"Pragma names not present in the policy table",
	)
	SyntaxErrorsTotal = NewCounter(
		"syntax_errors_total",
		"Inputs aborted by a parser syntax error",
	)
	ClassifierCacheEventsTotal = NewCounterVec(
		"classifier_cache_events_total",
		"Classification cache lookups by result",
		[]string{"result"},
	)
	ValidationFailuresTotal = NewCounter(
		"validation_failures_total",
		"Statements rejected by the SQLite cross-validator",
	)
}
