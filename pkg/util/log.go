package util

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is shared by every fgobj package. Library code logs at debug
// level only; the CLI decides what reaches stderr.
var Logger = logrus.New()

func init() {
	Logger.SetOutput(os.Stderr)
	Logger.SetLevel(logrus.InfoLevel)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
}

// SetupLogging applies the CLI logging flags: debug when verbose, warn
// otherwise, and JSON records when asJSON is set.
func SetupLogging(verbose, asJSON bool) {
	if verbose {
		Logger.SetLevel(logrus.DebugLevel)
	} else {
		Logger.SetLevel(logrus.WarnLevel)
	}
	if asJSON {
		SetJSONFormat()
	}
}

// SetLogLevel sets the level by name ("debug", "warn", ...).
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger.SetLevel(lvl)
	return nil
}

// SetLogOutput redirects log records.
func SetLogOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// SetJSONFormat switches to one JSON object per record.
func SetJSONFormat() {
	Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
}

// WithFields returns an entry carrying fields.
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return Logger.WithFields(fields)
}

// WithKind returns an entry scoped to an object kind.
func WithKind(kind string) *logrus.Entry {
	return Logger.WithField("kind", kind)
}

// WithObject returns an entry scoped to one configuration object.
func WithObject(kind string, id interface{}) *logrus.Entry {
	return WithKind(kind).WithField("id", id)
}

func Debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	Logger.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	Logger.Warnf(format, args...)
}
