package cli

import (
	"io"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"

	"github.com/rhaeguard/pfx/internal/config"
)

// newLogger returns a JSON logger writing to stderr, or to a size-rotated
// file when cfg.LogFile is set. The returned closer is nil for stderr.
func newLogger(cfg *config.Config, stderr io.Writer) (*logrus.Logger, io.Closer) {
	var out io.Writer = stderr
	var closer io.Closer

	if cfg.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		out, closer = file, file
	}

	log := &logrus.Logger{
		Out:       out,
		Formatter: new(logrus.JSONFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     cfg.LogLevel,
	}
	return log, closer
}
