package main

import (
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	md2site "github.com/alnah/go-md2site"
	"github.com/alnah/go-md2site/internal/config"
)

// stageLogger is the subset of glog.Logger used by the build.
type stageLogger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
}

// Compile-time interface check.
var _ stageLogger = (glog.Logger)(nil)

// newLogger builds the build logger from the log settings.
func newLogger(cfg config.LogConfig) stageLogger {
	options := []glog.Option{}

	if level := logLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(cfg.Format) {
	case config.LogFormatJSON:
		options = append(options, glog.WithLoggerTypeJSON())
	case config.LogFormatPretty:
		options = append(options, glog.WithLoggerTypePretty())
	default:
		options = append(options, glog.WithLoggerTypeConsole())
	}

	return glog.NewLogger(options...).GetLogger("md2site")
}

// logLevel maps a config level to a glog level; "" keeps the glog default.
func logLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn":
		return glog.Warn
	case "error":
		return glog.Error
	}
	return ""
}

// logObserver logs generation events: stages at debug, blocks at trace,
// failures at error.
type logObserver struct {
	log stageLogger
}

// Observe implements md2site.Observer.
func (o *logObserver) Observe(e md2site.Event) {
	if e.Err != nil {
		o.log.Error("stage failed", "source", e.Source, "stage", string(e.Stage), "error", e.Err)
		return
	}
	o.log.Debug("stage done", "source", e.Source, "stage", string(e.Stage), "duration", e.Duration)
}

// ObserveBlock logs one classified block.
func (o *logObserver) ObserveBlock(e md2site.BlockEvent) {
	o.log.Trace("block", "source", e.Source, "index", e.Index, "kind", e.Kind, "level", e.Level)
}

// Compile-time interface check.
var _ md2site.Observer = (*logObserver)(nil)
