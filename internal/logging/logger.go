// Package logging provides component loggers backed by logrus.
//
// All components share one underlying logger so the level can be changed
// once, after configuration has been loaded, and apply everywhere.
package logging

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// EnvLevel overrides the configured log level.
const EnvLevel = "GH_GHQ_CD_LOG_LEVEL"

// DefaultLevel keeps normal interactive use quiet.
const DefaultLevel = "warn"

var (
	base     = newBase()
	loggers  = make(map[string]*logrus.Entry)
	loggerMu sync.Mutex
)

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&TextFormatter{})
	l.SetLevel(parseLevel(os.Getenv(EnvLevel), logrus.WarnLevel))
	return l
}

// NewLogger returns the logger for a component, creating it on first use.
func NewLogger(component string) *logrus.Entry {
	loggerMu.Lock()
	defer loggerMu.Unlock()

	if entry, ok := loggers[component]; ok {
		return entry
	}
	entry := base.WithField("component", component)
	loggers[component] = entry
	return entry
}

// SetLevel applies level to every component logger. The environment
// variable wins over the argument. Unknown levels fall back to warn.
func SetLevel(level string) {
	if v := os.Getenv(EnvLevel); v != "" {
		level = v
	}
	base.SetLevel(parseLevel(level, logrus.WarnLevel))
}

func parseLevel(s string, fallback logrus.Level) logrus.Level {
	if s == "" {
		return fallback
	}
	level, err := logrus.ParseLevel(s)
	if err != nil {
		return fallback
	}
	return level
}

// TextFormatter renders "[LEVEL] [component] message key=value" lines
// without timestamps.
type TextFormatter struct{}

// Format renders a single log entry.
func (f *TextFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b strings.Builder

	level := entry.Level.String()
	if level == "warning" {
		level = "warn"
	}
	b.WriteString(fmt.Sprintf("[%s]", strings.ToUpper(level)))

	if component, ok := entry.Data["component"]; ok {
		b.WriteString(fmt.Sprintf(" [%v]", component))
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "component" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(fmt.Sprintf(" %s=%v", k, entry.Data[k]))
	}

	b.WriteString("\n")
	return []byte(b.String()), nil
}
