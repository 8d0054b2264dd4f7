package logflags

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var arch = false
var regs = false

var logOut io.Writer

// SetLogOut redirects the output of every logger created by this
// package to w. It must be called before any logger is created.
func SetLogOut(w io.Writer) {
	logOut = w
}

func makeLogger(level logrus.Level, fields Fields) Logger {
	if loggerFactory != nil {
		return loggerFactory(level, fields, logOut)
	}
	logger := logrus.New()
	if logOut != nil {
		logger.Out = logOut
	}
	logger.Level = level
	return &logrusLogger{logger.WithFields(logrus.Fields(fields))}
}

// makeFlaggableLogger creates loggers that only emit debug output when
// their component flag was enabled through Setup. Errors are emitted
// regardless, so diagnostics like an unrecognized architecture name
// always surface.
func makeFlaggableLogger(flag bool, fields Fields) Logger {
	level := logrus.ErrorLevel
	if flag {
		level = logrus.DebugLevel
	}
	return makeLogger(level, fields)
}

// Arch returns true if the architecture registry should emit debug
// output.
func Arch() bool {
	return arch
}

// ArchLogger returns a logger for architecture name parsing and
// effective-architecture resolution.
func ArchLogger() Logger {
	return makeFlaggableLogger(arch, Fields{"layer": "arch"})
}

// Regs returns true if register set decoding should emit debug output.
func Regs() bool {
	return regs
}

// RegsLogger returns a logger for register set decoding.
func RegsLogger() Logger {
	return makeFlaggableLogger(regs, Fields{"layer": "regs"})
}

var errLogstrWithoutLog = errors.New("log output specified without logging enabled")

// Setup enables debug logging for the components listed in logstr, a
// comma-separated subset of "arch" and "regs". With logFlag false no
// component may be listed and only error output is emitted.
func Setup(logFlag bool, logstr string) error {
	if !logFlag {
		if logstr != "" {
			return errLogstrWithoutLog
		}
		return nil
	}
	if logstr == "" {
		logstr = "regs"
	}
	for _, logcmd := range strings.Split(logstr, ",") {
		switch logcmd {
		case "arch":
			arch = true
		case "regs":
			regs = true
		default:
			return fmt.Errorf("invalid log output specifier %q", logcmd)
		}
	}
	return nil
}
