// Package log builds the per-run console logger and its optional filesystem-backed persistence.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/castgrab/castgrab/filesystem"
	"github.com/castgrab/castgrab/key"
	"github.com/castgrab/castgrab/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// New returns a console logger writing to stderr.
// Info lines are emitted only when verbose is set; warnings and errors always are.
// When logs.write is enabled every entry that passes the console level is also appended to today's log file.
// The returned close function releases that file and is always safe to call.
func New(verbose bool) (*logrus.Logger, func() error, error) {
	logger := NewWithOutput(os.Stderr, verbose)
	noop := func() error { return nil }

	if !viper.GetBool(key.LogsWrite) {
		return logger, noop, nil
	}

	hook, err := newFileHook(where.Logs(), time.Now())
	if err != nil {
		return logger, noop, err
	}
	logger.AddHook(hook)

	return logger, hook.Close, nil
}

// NewWithOutput returns a console logger writing to out.
func NewWithOutput(out io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
		PadLevelText:           true,
	})

	if verbose {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}

	return logger
}

// fileHook mirrors log entries into a file using its own formatter and level.
type fileHook struct {
	out       io.WriteCloser
	formatter logrus.Formatter
	level     logrus.Level
}

func newFileHook(dir string, now time.Time) (*fileHook, error) {
	if dir == "" {
		return nil, errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", now.Format("2006-01-02")))
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	hook := &fileHook{out: f}

	if viper.GetBool(key.LogsJson) {
		hook.formatter = &logrus.JSONFormatter{}
	} else {
		hook.formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	}

	hook.level, err = logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		hook.level = logrus.InfoLevel
	}

	return hook, nil
}

// Levels implements logrus.Hook.
func (h *fileHook) Levels() []logrus.Level {
	levels := make([]logrus.Level, 0, len(logrus.AllLevels))
	for _, l := range logrus.AllLevels {
		if l <= h.level {
			levels = append(levels, l)
		}
	}
	return levels
}

// Fire implements logrus.Hook.
func (h *fileHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	_, err = h.out.Write(line)
	return err
}

// Close releases the log file.
func (h *fileHook) Close() error {
	return h.out.Close()
}
