package commands

import (
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Configuration keys, shared by flags, environment (SHA2SUM_*) and the config file
const (
	keyFormat   = "format"
	keyWorkers  = "workers"
	keyTimeout  = "timeout"
	keyLogLevel = "log-level"
	keyVerbose  = "verbose"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// log writes diagnostics to stderr so stdout only carries digests
var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = os.Stderr
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	l.Level = logrus.WarnLevel
	return l
}

// configureLogger applies log-level and verbose from viper
func configureLogger() {
	level, err := logrus.ParseLevel(viper.GetString(keyLogLevel))
	if err != nil {
		log.WithField("log-level", viper.GetString(keyLogLevel)).Warn("unknown log level, using warn")
		level = logrus.WarnLevel
	}
	if viper.GetBool(keyVerbose) && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
}

// outputFormat returns the configured format, normalised
func outputFormat() string {
	return strings.ToLower(strings.TrimSpace(viper.GetString(keyFormat)))
}

// fetchTimeout returns the per-URL timeout, falling back to 30s on a bad value
func fetchTimeout() time.Duration {
	d := viper.GetDuration(keyTimeout)
	if d <= 0 {
		return time.Second * 30
	}
	return d
}

// getUserHomeDir returns the user's home directory
func getUserHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return home, nil
}
