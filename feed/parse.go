package feed

import (
	"errors"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// ErrUnparsable is returned when a body is neither RSS, Atom nor JSON Feed.
var ErrUnparsable = errors.New("unparsable feed")

// Parse converts a raw feed body into a Feed.
func Parse(body string) (*Feed, error) {
	parsed, err := gofeed.NewParser().ParseString(body)
	if err != nil || parsed == nil {
		return nil, errors.Join(ErrUnparsable, err)
	}

	return &Feed{
		Title: parsed.Title,
		Items: lo.Map(parsed.Items, func(item *gofeed.Item, _ int) *Item {
			return convertItem(item)
		}),
	}, nil
}

func convertItem(item *gofeed.Item) *Item {
	converted := &Item{
		Title:     item.Title,
		Published: publishedOf(item),
		Payload:   OtherItem{},
	}

	if enclosure, ok := pickEnclosure(item.Enclosures); ok {
		converted.Payload = MediaItem{
			Enclosure: Enclosure{
				URL:       mo.EmptyableToOption(strings.TrimSpace(enclosure.URL)),
				MediaType: strings.TrimSpace(enclosure.Type),
			},
		}
	}

	return converted
}

// pickEnclosure prefers the first audio attachment and falls back to the first one.
func pickEnclosure(enclosures []*gofeed.Enclosure) (*gofeed.Enclosure, bool) {
	enclosures = lo.Compact(enclosures)
	if len(enclosures) == 0 {
		return nil, false
	}

	audio, ok := lo.Find(enclosures, func(e *gofeed.Enclosure) bool {
		return strings.HasPrefix(strings.ToLower(e.Type), "audio/")
	})
	if ok {
		return audio, true
	}

	return enclosures[0], true
}

func publishedOf(item *gofeed.Item) mo.Option[time.Time] {
	switch {
	case item.PublishedParsed != nil:
		return mo.Some(*item.PublishedParsed)
	case item.UpdatedParsed != nil:
		return mo.Some(*item.UpdatedParsed)
	default:
		return mo.None[time.Time]()
	}
}
