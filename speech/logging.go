package speech

import (
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// InitLogging sets the global log level. In debug mode log output is
// routed to a file under the user's ruvox directory so pass traces do
// not interleave with normalized text on the terminal.
func InitLogging(debug bool) error {
	if !debug {
		log.SetLevel(log.InfoLevel)
		return nil
	}

	log.SetLevel(log.DebugLevel)
	path, err := setupDebugLogFile()
	if err != nil {
		log.Warn("failed to set up debug log file", "error", err)
		return nil
	}
	log.Debug("debug logging enabled", "file", path)
	return nil
}

func setupDebugLogFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(home, ".ruvox")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, "debug.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", err
	}

	// The file stays open for the lifetime of the process.
	log.SetDefault(log.NewWithOptions(file, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.DebugLevel,
	}))
	return path, nil
}
