package utils

import (
	"io"
	"os"

	"github.com/gofiber/fiber/v2/log"
)

// SetupLogger configures the fiber default logger. Debug output is enabled
// outside production. When logFile is set, logs are appended to it as well
// as stderr; the returned closer releases the file.
func SetupLogger(goEnv, logFile string) (io.Closer, error) {
	if goEnv == "production" {
		log.SetLevel(log.LevelInfo)
	} else {
		log.SetLevel(log.LevelDebug)
	}

	if logFile == "" {
		log.SetOutput(os.Stderr)
		return io.NopCloser(nil), nil
	}

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(os.Stderr, file))
	return file, nil
}
