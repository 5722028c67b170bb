package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hava-db/routeguard/cfg"
	"github.com/hava-db/routeguard/parser"
	"github.com/hava-db/routeguard/routing"
	"github.com/hava-db/routeguard/telemetry"
)

func main() {
	flag.Parse()

	// Load configuration
	if err := cfg.Load(*cfg.ConfigPathFlag); err != nil {
		panic(err)
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	// Setup logging
	var writer io.Writer = zerolog.NewConsoleWriter()
	if cfg.Config.Logging.Format == "json" {
		writer = os.Stderr
	}
	gLog := zerolog.New(writer).
		With().
		Timestamp().
		Logger()

	if cfg.Config.Logging.Verbose {
		log.Logger = gLog.Level(zerolog.DebugLevel)
	} else {
		log.Logger = gLog.Level(zerolog.InfoLevel)
	}

	telemetry.InitializeTelemetry()
	telemetry.InitMetrics()
	serveMetrics()

	sqlText, err := readInput(*cfg.InputFlag)
	if err != nil {
		log.Fatal().Err(err).Str("input", *cfg.InputFlag).Msg("Failed to read input")
	}

	os.Exit(run(sqlText))
}

func serveMetrics() {
	handler := telemetry.GetMetricsHandler()
	if handler == nil {
		return
	}
	addr := fmt.Sprintf("%s:%d", cfg.Config.Prometheus.Address, cfg.Config.Prometheus.Port)
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Error().Err(err).Msg("Metrics server stopped")
		}
	}()
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// run scans the input and prints one routing decision per statement plus
// the predicted final transaction state. Exit status is non-zero for
// syntax errors, validation failures and unbalanced transactions.
func run(sqlText string) int {
	var src routing.Source
	if cfg.Config.Parser.CacheSize > 0 {
		cache, err := parser.NewCache(cfg.Config.Parser.CacheSize)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create classification cache")
		}
		src = parser.NewCachedSource(sqlText, cache)
	} else {
		src = parser.NewSource(sqlText)
	}

	var validator *parser.Validator
	if cfg.Config.Parser.Validate {
		var err error
		validator, err = parser.NewValidator(cfg.Config.Parser.ValidatorPoolSize)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create SQLite validator")
		}
		defer validator.Close()
	}

	scanner := routing.NewScanner(src)
	state := routing.TxnStateInit
	exit := 0
	for i := 1; ; i++ {
		stmt, err := scanner.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Printf("%3d  %-9s  %v\n", i, "error", err)
			var syntaxErr *routing.SyntaxError
			if errors.As(err, &syntaxErr) {
				exit = 1
				break
			}
			continue
		}
		if validator != nil {
			if err := validator.Validate(stmt); err != nil {
				fmt.Printf("%3d  %-9s  %v\n", i, "invalid", err)
				exit = 1
				continue
			}
		}
		state.Advance(stmt.Category)
		fmt.Printf("%3d  %-9s  read_only=%-5v mutation=%-5v insert=%-5v  %s\n",
			i, stmt.Category, stmt.IsReadOnly(), stmt.IsMutation, stmt.IsInsert, stmt.SQL)
	}

	fmt.Printf("final transaction state: %s\n", state)
	if state == routing.TxnStateInvalid {
		exit = 1
	}
	return exit
}
