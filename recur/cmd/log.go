package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logLevelEnv names the environment variable holding the log level.
const logLevelEnv = "RECUR_LOG_LEVEL"

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "recur"})

func newLogger(w io.Writer) (*log.Logger, error) {
	level := log.InfoLevel
	if s := os.Getenv(logLevelEnv); s != "" {
		var err error
		if level, err = log.ParseLevel(s); err != nil {
			return nil, fmt.Errorf("%s: %w", logLevelEnv, err)
		}
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: "recur",
		Level:  level,
	}), nil
}
