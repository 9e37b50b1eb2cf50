package cli

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the stderr logger used by every command
func NewLogger(level string, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: lvl < logrus.DebugLevel,
		FullTimestamp:    true,
	})
	return log, nil
}
