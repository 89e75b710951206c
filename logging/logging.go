// logging/logging.go
package logging

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/pankajvermacr7/rediskit/sentry"
)

// SentryHook is a custom hook for zerolog to send logs to Sentry.
type SentryHook struct{}

// Run implements the zerolog Hook interface.
func (h SentryHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	// Only proceed if the level is Error or higher
	if level < zerolog.ErrorLevel {
		return
	}
	eventID := sentry.CaptureMessage(msg)
	if eventID != "" {
		e.Str("sentry_event_id", eventID)
	}
}

// InitLogger configures the global zerolog logger.
func InitLogger() {
	configureLogLevel()

	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02 15:04:05",
		NoColor:    os.Getenv("ENVIRONMENT") == "prod",
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Caller().
		Logger().
		Hook(SentryHook{})
}

func configureLogLevel() {
	level := viper.GetString("logging.level")
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// NewLogger returns a logger writing to stderr with the Sentry hook attached.
func NewLogger() zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    false,
	}

	return zerolog.New(output).
		With().
		Timestamp().
		Caller().
		Logger().
		Hook(SentryHook{})
}

// LogError reports an error to Sentry and logs it with the event ID.
func LogError(err error, msg string) {
	logger := NewLogger()

	if _, ok := err.(stackTracer); !ok {
		err = errors.WithStack(err)
	}
	eventID := sentry.CaptureError(err)

	logger.Error().
		Err(err).
		Str("sentry_event_id", eventID).
		Msg(msg)
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}
