package log

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/cartorio-digital/apostille-platform-server/package/env"
)

// prefork silences log events emitted from fiber child processes so that
// prefork mode does not duplicate every line.
type prefork struct{}

func (p prefork) Run(e *zerolog.Event, level zerolog.Level, message string) {
	if fiber.IsChild() {
		e.Discard()
	}
}

func LevelFromEnv(envKey string, defaultLevel zerolog.Level) zerolog.Level {
	levelStr, err := env.Get(envKey, "")
	if err != nil || levelStr == "" {
		return defaultLevel
	}

	switch strings.ToUpper(levelStr) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "FATAL":
		return zerolog.FatalLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	default:
		return defaultLevel
	}
}

// New builds the process-wide logger. The level comes from LOG_LEVEL.
func New() zerolog.Logger {
	zerolog.SetGlobalLevel(LevelFromEnv("LOG_LEVEL", zerolog.InfoLevel))
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339Nano,
	}

	return zerolog.New(writer).With().
		Timestamp().
		Caller().
		Logger().
		Hook(prefork{})
}
