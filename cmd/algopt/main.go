// Command algopt brackets and minimizes one of a set of named univariate
// functions and prints the minimizer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/btracey/algopt/internal/config"
	"github.com/btracey/algopt/internal/functions"
	"github.com/btracey/algopt/univariate"
	"github.com/btracey/algopt/write"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(c config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level: %s", c.Level)
	}

	var zc zap.Config
	switch c.Format {
	case "", "console":
		zc = zap.NewDevelopmentConfig()
	case "json":
		zc = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", c.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file")
	function := flag.String("func", "", "function to minimize, overrides the configuration")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	traceCSV := flag.String("trace", "", "write a CSV row per iteration to this file")
	list := flag.Bool("list", false, "list the available functions and exit")
	flag.Parse()

	if *list {
		for _, name := range functions.Names() {
			fmt.Println(name)
		}
		return
	}

	if err := run(*configPath, *function, *logLevel, *traceCSV); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, function, logLevel, traceCSV string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if function != "" {
		conf.Function = function
	}
	if logLevel != "" {
		conf.Logging.Level = logLevel
	}
	if traceCSV != "" {
		conf.Trace.CSV = traceCSV
	}

	logger, err := newLogger(conf.Logging)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	f, err := functions.Lookup(conf.Function)
	if err != nil {
		return err
	}

	settings := conf.Settings()
	ws := &write.WriteSettings{}
	if logger.Core().Enabled(zapcore.DebugLevel) {
		ws.Zap = logger
	}
	if conf.Trace.Display {
		ws.DisplayWriters = append(ws.DisplayWriters, write.Writer{Writer: os.Stdout, T: write.Displayer})
	}
	if conf.Trace.CSV != "" {
		file, err := os.Create(conf.Trace.CSV)
		if err != nil {
			return fmt.Errorf("creating trace file: %w", err)
		}
		defer file.Close()
		ws.DisplayWriters = append(ws.DisplayWriters, write.Writer{Writer: file, T: write.Logger})
	}
	settings.WriteSettings = ws

	logger.Info("minimizing",
		zap.String("function", conf.Function),
		zap.Float64("initialLocation", settings.InitialLocation),
		zap.Int("maxIter", settings.MaxIter),
		zap.Int("maxOptIter", settings.MaxOptIter),
	)

	result, err := univariate.Minimize(f, settings)
	var inf *univariate.Infeasible
	if errors.As(err, &inf) {
		logger.Error("no bracket found", zap.String("function", conf.Function), zap.Error(err))
		return err
	}
	if err != nil {
		return err
	}
	if result.WriteErr != nil {
		logger.Warn("trace incomplete", zap.Error(result.WriteErr))
	}

	left, right := result.Bracket.Interval()
	logger.Info("minimum found",
		zap.Float64("x", result.X),
		zap.Float64("y", result.Y),
		zap.Float64("bracketLeft", left),
		zap.Float64("bracketRight", right),
		zap.Stringer("status", result.Status),
		zap.Int("iterations", result.Iterations),
		zap.Int("functionEvaluations", result.FunctionEvaluations),
		zap.Duration("runtime", result.Runtime),
	)
	fmt.Printf("x = %.17g\ny = %.17g\n", result.X, result.Y)
	return nil
}
