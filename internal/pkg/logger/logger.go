// Package logger provides a custom logging solution built on top of Uber's Zap logging library.
// It includes functionality for creating and configuring a logger instance and an HTTP
// round tripper to log outgoing API requests.
package logger

import (
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Logger wraps the zap.Logger to provide additional logging functionality.
type Logger struct {
	*zap.Logger
}

// newLogger initializes a new Logger instance using the production configuration of Zap.
// In case of an error during creation, it logs the error using the standard log package.
func newLogger() *Logger {
	customLog, err := zap.NewProduction()
	if err != nil {
		log.Println(err)
	}
	return &Logger{Logger: customLog}
}

// CreateLogger creates and configures a Logger with the specified log level.
// It parses the provided level, applies it to the production configuration, and builds a new Zap logger.
func CreateLogger(level string) (customLog *Logger, err error) {
	log := newLogger()
	defer log.Sync()

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return log, err
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return log, err
	}

	log.Logger = zl
	return log, nil
}

// RoundTripper wraps next so that every outgoing HTTP request is logged with
// its method, URL path, status code, and duration.
func (log *Logger) RoundTripper(next http.RoundTripper) http.RoundTripper {
	return &loggingTransport{log: log, next: next}
}

type loggingTransport struct {
	log  *Logger
	next http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t1 := time.Now()
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		t.log.Warn("request failed",
			zap.String("method", req.Method),
			zap.String("uri", req.URL.Path),
			zap.Duration("duration", time.Since(t1)),
			zap.Error(err))
		return nil, err
	}

	t.log.Info("request",
		zap.String("method", req.Method),
		zap.String("uri", req.URL.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(t1)))
	return resp, nil
}
