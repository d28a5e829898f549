package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

const serviceName = "imagerelay"

// New builds the service logger. Development gets a colored console at
// debug level; production logs plain at info. The level is carried on the
// logger itself rather than the global zerolog state.
func New(environment string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		NoColor:    environment == "production",
	}

	level := zerolog.DebugLevel
	if environment == "production" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Str("env", environment).
		Logger()
}
