// Package logger constructs the application logger.
package logger

import "github.com/sirupsen/logrus"

// New returns a logrus logger at the given level. Unknown levels fall
// back to warn so a typo in config never silences errors.
func New(level string) *logrus.Logger {
	log := logrus.New()
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.WarnLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log
}
