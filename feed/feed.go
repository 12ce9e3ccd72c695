// Package feed fetches podcast feeds over HTTP and converts them into the castgrab data model.
package feed

import (
	"time"

	"github.com/samber/mo"
)

// Feed is a parsed podcast document.
// Items keep the order in which the parser produced them, which for most publishers is newest first.
type Feed struct {
	Title string
	Items []*Item
}

// Item is a single feed entry.
type Item struct {
	Title     string
	Published mo.Option[time.Time]
	Payload   Payload
}

// Payload is either a MediaItem or an OtherItem.
// The set is closed: only types in this package implement it.
type Payload interface {
	payload()
}

// MediaItem is an entry carrying a media attachment.
type MediaItem struct {
	Enclosure Enclosure
}

// OtherItem is an entry without any media attachment.
type OtherItem struct{}

func (MediaItem) payload() {}
func (OtherItem) payload() {}

// Enclosure is the media attachment metadata of an item.
type Enclosure struct {
	URL       mo.Option[string]
	MediaType string
}
