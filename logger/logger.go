package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shpjp/quicker-api/config"
)

// InitLogger configures the standard logrus logger from cfg. When cfg.File
// cannot be opened, output falls back to stdout. The returned closer
// releases the log file, if any.
func InitLogger(cfg config.LogConfig) io.Closer {
	var closer io.Closer = nopCloser{}
	logrus.SetOutput(os.Stdout)
	if cfg.File != "" {
		logFile, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			logrus.Warnf("Failed to open log file (%s), using stdout: %v", cfg.File, err)
		} else {
			logrus.SetOutput(logFile)
			closer = logFile
		}
	}

	if strings.EqualFold(cfg.Format, "text") {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339Nano})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	}

	SetLevel(cfg.Level)
	logrus.WithField("level", logrus.GetLevel().String()).Info("Logger initialized")
	return closer
}

// SetLevel changes the standard logger's level. Unparseable levels are
// logged and ignored.
func SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithError(err).Warn("invalid log level, keeping current")
		return
	}
	if lvl != logrus.GetLevel() {
		logrus.SetLevel(lvl)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
