package cmd

import (
	"testing"

	"github.com/castgrab/castgrab/key"
	"github.com/castgrab/castgrab/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLookupFields(t *testing.T) {
	Convey("lookupFields", t, func() {
		Convey("Should return every setting when no key is given", func() {
			fields, err := lookupFields(nil)
			So(err, ShouldBeNil)
			So(len(fields), ShouldBeGreaterThan, 1)
		})

		Convey("Should keep the requested order", func() {
			fields, err := lookupFields([]string{key.NetworkTimeout, key.DownloadChunks})
			So(err, ShouldBeNil)
			So(fields[0].Key, ShouldEqual, key.NetworkTimeout)
			So(fields[1].Key, ShouldEqual, key.DownloadChunks)
		})

		Convey("Should suggest the closest key for a typo", func() {
			_, err := lookupFields([]string{"download.chunk"})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, key.DownloadChunks)
		})
	})
}

func TestEnvVars(t *testing.T) {
	Convey("envVars", t, func() {
		t.Setenv("CASTGRAB_DOWNLOAD_CHUNKS", "4")

		vars := envVars()
		names := lo.Map(vars, func(v envVar, _ int) string { return v.name })

		Convey("Should list the config path and every setting, sorted", func() {
			So(names, ShouldContain, where.EnvConfigPath)
			So(names, ShouldContain, "CASTGRAB_NETWORK_TIMEOUT")
			So(lo.IsSorted(names), ShouldBeTrue)
		})

		Convey("Should report the current value", func() {
			chunks, ok := lo.Find(vars, func(v envVar) bool { return v.name == "CASTGRAB_DOWNLOAD_CHUNKS" })
			So(ok, ShouldBeTrue)
			So(chunks.present, ShouldBeTrue)
			So(chunks.value, ShouldEqual, "4")
		})
	})
}
