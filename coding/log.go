package coding

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the package-level logger an Encode call writes decision
// points to when its Options.Logger is nil: the estimated version, chosen block/ECC-byte counts, and
// for automatic masking the penalty of every candidate and the winner.
// It mirrors myqro's single static Logger (logger.hpp/cpp), generalized
// to an injectable *logrus.Logger per spec.md §9's direction to replace
// global log-level state with a handle.
var Log = logrus.New()

func init() {
	Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// SetLogLevel parses one of critical|error|warning|debug|info|void (the
// same vocabulary myqro's Logger::SetLogLevel(const std::string&)
// accepts) and applies it to Log. "void" has no logrus equivalent, so it
// silences output by redirecting Log's destination to io.Discard rather
// than by picking a level, the same effect myqro gets from
// LogLevel::VOID being larger than every real level.
func SetLogLevel(level string) error {
	switch strings.ToLower(level) {
	case "void":
		Log.SetOutput(io.Discard)
		return nil
	case "critical":
		Log.SetLevel(logrus.FatalLevel)
	case "error":
		Log.SetLevel(logrus.ErrorLevel)
	case "warning":
		Log.SetLevel(logrus.WarnLevel)
	case "info":
		Log.SetLevel(logrus.InfoLevel)
	case "debug":
		Log.SetLevel(logrus.DebugLevel)
	default:
		return newError(InvalidArgument, "invalid log level %q", level)
	}
	return nil
}
