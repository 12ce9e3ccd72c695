package feed

import (
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>My Show: Ep</title>
    <item>
      <title>Ep 3</title>
      <pubDate>Wed, 03 Jan 2024 10:00:00 +0000</pubDate>
      <enclosure url="https://cdn.example.com/cover.jpg" type="image/jpeg" length="10"/>
      <enclosure url="https://cdn.example.com/ep3.mp3" type="audio/mpeg" length="100"/>
    </item>
    <item>
      <title>Ep 2</title>
      <enclosure url="" type="audio/mpeg" length="0"/>
    </item>
    <item>
      <title>Ep 1</title>
      <pubDate>Mon, 01 Jan 2024 10:00:00 +0000</pubDate>
      <description>show notes only</description>
    </item>
  </channel>
</rss>`

func TestParse(t *testing.T) {
	Convey("Given an RSS document", t, func() {
		feed, err := Parse(sampleRSS)
		So(err, ShouldBeNil)

		Convey("It keeps the title and parser order", func() {
			So(feed.Title, ShouldEqual, "My Show: Ep")
			So(feed.Items, ShouldHaveLength, 3)
			So(feed.Items[0].Title, ShouldEqual, "Ep 3")
			So(feed.Items[2].Title, ShouldEqual, "Ep 1")
		})

		Convey("It prefers the audio enclosure", func() {
			media, ok := feed.Items[0].Payload.(MediaItem)
			So(ok, ShouldBeTrue)
			So(media.Enclosure.URL.MustGet(), ShouldEqual, "https://cdn.example.com/ep3.mp3")
			So(media.Enclosure.MediaType, ShouldEqual, "audio/mpeg")
		})

		Convey("It parses published dates", func() {
			published, ok := feed.Items[0].Published.Get()
			So(ok, ShouldBeTrue)
			So(published.Equal(time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)), ShouldBeTrue)
			So(feed.Items[1].Published.IsAbsent(), ShouldBeTrue)
		})

		Convey("It marks an empty enclosure URL as absent", func() {
			media, ok := feed.Items[1].Payload.(MediaItem)
			So(ok, ShouldBeTrue)
			So(media.Enclosure.URL.IsAbsent(), ShouldBeTrue)
		})

		Convey("It treats items without enclosures as other items", func() {
			_, ok := feed.Items[2].Payload.(OtherItem)
			So(ok, ShouldBeTrue)
		})
	})

	Convey("Given an Atom document with an enclosure link", t, func() {
		feed, err := Parse(`<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Cast</title>
  <entry>
    <title>Pilot</title>
    <published>2023-05-01T08:00:00Z</published>
    <link rel="enclosure" type="audio/ogg" href="https://cdn.example.com/pilot.ogg"/>
  </entry>
</feed>`)
		So(err, ShouldBeNil)
		So(feed.Title, ShouldEqual, "Atom Cast")

		media, ok := feed.Items[0].Payload.(MediaItem)
		So(ok, ShouldBeTrue)
		So(media.Enclosure.URL.MustGet(), ShouldEqual, "https://cdn.example.com/pilot.ogg")
		So(media.Enclosure.MediaType, ShouldEqual, "audio/ogg")
	})

	Convey("Given garbage", t, func() {
		feed, err := Parse("definitely not a feed")

		So(feed, ShouldBeNil)
		So(errors.Is(err, ErrUnparsable), ShouldBeTrue)
	})
}
