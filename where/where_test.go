package where

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/castgrab/castgrab/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Use in-memory filesystem for tests to avoid creating real directories
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Config() honours the override variable", func() {
			t.Setenv(EnvConfigPath, "/tmp/castgrab-test-config")
			So(Config(), ShouldEqual, "/tmp/castgrab-test-config")
			So(ConfigFile(), ShouldEqual, filepath.Join("/tmp/castgrab-test-config", "castgrab.toml"))
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})
	})
}

func TestDownloads(t *testing.T) {
	Convey("Downloads", t, func() {
		Convey("Should return an explicit directory unchanged", func() {
			dir, err := Downloads("/srv/podcasts")
			So(err, ShouldBeNil)
			So(dir, ShouldEqual, "/srv/podcasts")
		})

		Convey("Should default to the working directory", func() {
			dir, err := Downloads("")
			So(err, ShouldBeNil)
			So(dir, ShouldEqual, lo.Must(os.Getwd()))
		})
	})
}
