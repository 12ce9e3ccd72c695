package log

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/castgrab/castgrab/filesystem"
	"github.com/castgrab/castgrab/key"
	"github.com/castgrab/castgrab/where"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestNewWithOutput(t *testing.T) {
	Convey("Given a console logger", t, func() {
		var buf bytes.Buffer

		Convey("When verbose is off", func() {
			logger := NewWithOutput(&buf, false)
			logger.Infof("Downloading %s", "episode")
			logger.Warnf("File already exists: %s", "episode")

			Convey("Then info lines are suppressed", func() {
				So(buf.String(), ShouldNotContainSubstring, "Downloading episode")
				So(buf.String(), ShouldContainSubstring, "File already exists: episode")
			})
		})

		Convey("When verbose is on", func() {
			logger := NewWithOutput(&buf, true)
			logger.Infof("Feed Title: %s", "My Show")

			Convey("Then info lines are emitted", func() {
				So(buf.String(), ShouldContainSubstring, "Feed Title: My Show")
			})
		})
	})
}

func TestFileHook(t *testing.T) {
	Convey("Given a file hook", t, func() {
		dir := "/logs"
		lo.Must0(filesystem.API().MkdirAll(dir, 0o755))
		viper.Set(key.LogsJson, false)
		viper.Set(key.LogsLevel, "warn")

		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		hook, err := newFileHook(dir, now)
		So(err, ShouldBeNil)

		Convey("It only subscribes to levels up to the configured one", func() {
			So(hook.Levels(), ShouldContain, logrus.ErrorLevel)
			So(hook.Levels(), ShouldContain, logrus.WarnLevel)
			So(hook.Levels(), ShouldNotContain, logrus.InfoLevel)
		})

		Convey("It appends entries to the dated file", func() {
			logger := NewWithOutput(&bytes.Buffer{}, true)
			logger.AddHook(hook)
			logger.Error("Failed to download Ep 1")

			content := lo.Must(filesystem.API().ReadFile(filepath.Join(dir, "2024-03-01.log")))
			So(string(content), ShouldContainSubstring, "Failed to download Ep 1")
		})

		Convey("It stops writing once closed", func() {
			So(hook.Close(), ShouldBeNil)

			logger := NewWithOutput(&bytes.Buffer{}, true)
			logger.AddHook(hook)
			logger.Error("Failed after close")

			content := lo.Must(filesystem.API().ReadFile(filepath.Join(dir, "2024-03-01.log")))
			So(string(content), ShouldNotContainSubstring, "Failed after close")
		})

		Convey("It rejects an empty directory", func() {
			_, err := newFileHook("", now)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestNew(t *testing.T) {
	Convey("Given the persisted log setting", t, func() {
		t.Setenv(where.EnvConfigPath, "/castgrab")

		Convey("When file logging is disabled", func() {
			viper.Set(key.LogsWrite, false)
			logger, closeLog, err := New(false)

			Convey("Then only the console logger is built", func() {
				So(err, ShouldBeNil)
				So(logger.Hooks, ShouldBeEmpty)
				So(closeLog(), ShouldBeNil)
			})
		})

		Convey("When file logging is enabled", func() {
			viper.Set(key.LogsWrite, true)
			defer viper.Set(key.LogsWrite, false)
			viper.Set(key.LogsLevel, "info")

			logger, closeLog, err := New(true)

			Convey("Then entries reach the log directory until closed", func() {
				So(err, ShouldBeNil)
				logger.Warn("File already exists: Ep 1")
				So(closeLog(), ShouldBeNil)

				entries := lo.Must(filesystem.API().ReadDir(where.Logs()))
				So(entries, ShouldHaveLength, 1)
				content := lo.Must(filesystem.API().ReadFile(filepath.Join(where.Logs(), entries[0].Name())))
				So(string(content), ShouldContainSubstring, "File already exists: Ep 1")
			})
		})
	})
}
