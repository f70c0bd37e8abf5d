package logger

import (
	"fmt"
	"io"
	"net"
	"os"
	"strings"

	logrustash "github.com/bshuster-repo/logrus-logstash-hook"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Level        string
	Format       string
	LogstashAddr string
	Service      string
}

// Logger is a printf-style facade over logrus. Info and warn entries go to
// stdout, error entries to stderr.
type Logger struct {
	info  *logrus.Entry
	warn  *logrus.Entry
	error *logrus.Entry
}

func New() *Logger {
	return newLogger(os.Stdout, os.Stderr, logrus.InfoLevel, &logrus.TextFormatter{FullTimestamp: true})
}

// NewWithOptions builds a logger from runtime settings. A logstash address that
// cannot be dialed is reported and otherwise ignored.
func NewWithOptions(opts Options) *Logger {
	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	var formatter logrus.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	if strings.EqualFold(opts.Format, "json") {
		formatter = &logrus.JSONFormatter{}
	}

	l := newLogger(os.Stdout, os.Stderr, level, formatter)

	if opts.LogstashAddr != "" {
		conn, err := net.Dial("tcp", opts.LogstashAddr)
		if err != nil {
			l.Warn("Logstash unavailable at %s: %v", opts.LogstashAddr, err)
		} else {
			hook := logrustash.New(conn, logrustash.DefaultFormatter(logrus.Fields{"type": opts.Service}))
			l.info.Logger.AddHook(hook)
			l.error.Logger.AddHook(hook)
		}
	}

	if opts.Service != "" {
		l = l.WithFields(logrus.Fields{"service": opts.Service})
	}
	return l
}

func newLogger(out, errOut io.Writer, level logrus.Level, formatter logrus.Formatter) *Logger {
	stdout := logrus.New()
	stdout.SetOutput(out)
	stdout.SetLevel(level)
	stdout.SetFormatter(formatter)

	stderr := logrus.New()
	stderr.SetOutput(errOut)
	stderr.SetLevel(level)
	stderr.SetFormatter(formatter)

	return &Logger{
		info:  logrus.NewEntry(stdout),
		warn:  logrus.NewEntry(stdout),
		error: logrus.NewEntry(stderr),
	}
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.info.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.warn.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.error.Error(fmt.Sprintf(format, args...))
}

// WithFields returns a child logger that attaches fields to every entry.
func (l *Logger) WithFields(fields logrus.Fields) *Logger {
	return &Logger{
		info:  l.info.WithFields(fields),
		warn:  l.warn.WithFields(fields),
		error: l.error.WithFields(fields),
	}
}
