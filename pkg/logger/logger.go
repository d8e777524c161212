package logger

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

var log zerolog.Logger

// Leading fields of every line written by orderedJSONWriter
var fieldOrder = []string{"time", "level", "scope", "message"}

// orderedJSONWriter keeps time, level, scope and message at the front of each line
type orderedJSONWriter struct {
	output io.Writer
}

// Write re-encodes one zerolog line with the leading fields first
func (w *orderedJSONWriter) Write(p []byte) (n int, err error) {
	var entry map[string]interface{}
	if err := json.Unmarshal(p, &entry); err != nil {
		return w.output.Write(p)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	writeField := func(key string, value interface{}) {
		encoded, err := json.Marshal(value)
		if err != nil {
			return
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		keyJSON, _ := json.Marshal(key)
		buf.Write(keyJSON)
		buf.WriteByte(':')
		buf.Write(encoded)
	}

	for _, key := range fieldOrder {
		if value, ok := entry[key]; ok {
			writeField(key, value)
			delete(entry, key)
		}
	}
	for key, value := range entry {
		writeField(key, value)
	}
	buf.WriteString("}\n")

	if _, err := w.output.Write(buf.Bytes()); err != nil {
		return 0, err
	}
	return len(p), nil
}

// init installs a UTC JSON logger so packages can log before Init runs
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().In(time.UTC)
	}
	log = newLogger(os.Stdout)
}

// newLogger builds the base logger on top of writer
func newLogger(writer io.Writer) zerolog.Logger {
	l := zerolog.New(writer).
		With().
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	zerolog.DefaultContextLogger = &l
	return l
}

// Init configures the logger with timezone settings and an environment specific writer
func Init(timezone, environment string) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
		log.Warn().Err(err).Str("timezone", timezone).Msg("Invalid timezone, using UTC")
	}

	zerolog.TimestampFieldName = "time"
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.LevelFieldName = "level"
	zerolog.MessageFieldName = "message"
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().In(loc)
	}

	var writer io.Writer = os.Stdout
	if environment != "prod" {
		writer = &orderedJSONWriter{output: os.Stdout}
	}
	log = newLogger(writer)

	log.Debug().Str("timezone", loc.String()).Str("environment", environment).Msg("Logger reconfigured")
}

// Debug returns a debug level log event
func Debug() *zerolog.Event {
	return log.Debug()
}

// Info returns an info level log event
func Info() *zerolog.Event {
	return log.Info()
}

// Warn returns a warning level log event
func Warn() *zerolog.Event {
	return log.Warn()
}

// Error returns an error level log event
func Error() *zerolog.Event {
	return log.Error()
}

// ScopedLogger represents a logger with predefined scope
type ScopedLogger struct {
	logger zerolog.Logger
}

// WithScope creates a new scoped logger instance with predefined scope
func WithScope(scope string) *ScopedLogger {
	return &ScopedLogger{
		logger: log.With().Str("scope", scope).Logger(),
	}
}

// Debug returns a debug level log event with scope
func (s *ScopedLogger) Debug() *zerolog.Event {
	return s.logger.Debug()
}

// Info returns an info level log event with scope
func (s *ScopedLogger) Info() *zerolog.Event {
	return s.logger.Info()
}

// Warn returns a warning level log event with scope
func (s *ScopedLogger) Warn() *zerolog.Event {
	return s.logger.Warn()
}

// Error returns an error level log event with scope
func (s *ScopedLogger) Error() *zerolog.Event {
	return s.logger.Error()
}
