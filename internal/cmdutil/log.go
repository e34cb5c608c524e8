// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger writing plain text lines to dst.
// quiet keeps errors only; verbose adds per-record debug lines.
func NewLogger(dst io.Writer, quiet, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(dst)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	switch {
	case quiet:
		log.SetLevel(logrus.ErrorLevel)
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
