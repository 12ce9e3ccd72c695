package archive

import (
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/castgrab/castgrab/feed"
	"github.com/castgrab/castgrab/filesystem"
	"github.com/castgrab/castgrab/util"
	"github.com/samber/mo"
)

// fallbackExtension is used for media types missing from extensions.
const fallbackExtension = ".bin"

var extensions = map[string]string{
	"audio/mpeg":     ".mp3",
	"audio/x-m4a":    ".m4a",
	"audio/x-wav":    ".wav",
	"audio/ogg":      ".ogg",
	"audio/flac":     ".flac",
	"audio/aac":      ".aac",
	"audio/x-ms-wma": ".wma",
	"audio/x-ms-wax": ".wax",
	"audio/x-ms-wmv": ".wmv",
}

// Extension maps a media type to a file extension.
// Parameters such as charset are ignored and matching is case-insensitive.
func Extension(mediaType string) string {
	base, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		base = strings.ToLower(strings.TrimSpace(mediaType))
	}

	if ext, ok := extensions[base]; ok {
		return ext
	}
	return fallbackExtension
}

// SkipReason explains why an item is not downloaded.
type SkipReason int

const (
	NotSkipped SkipReason = iota
	SkipNoTitle
	SkipNotMedia
	SkipNoEnclosure
	SkipExists
)

func (r SkipReason) String() string {
	switch r {
	case NotSkipped:
		return "not skipped"
	case SkipNoTitle:
		return "missing title"
	case SkipNotMedia:
		return "not a media item"
	case SkipNoEnclosure:
		return "no enclosure"
	case SkipExists:
		return "file already exists"
	default:
		return "unknown"
	}
}

// Episode is an item that passed every filter.
type Episode struct {
	Title     string
	URL       string
	Path      string
	Published mo.Option[time.Time]
}

// Plan decides whether item should be downloaded into dir and, if so, where.
// A skipped episode still carries whatever identifies the item, so it can be reported.
func Plan(item *feed.Item, dir string) (Episode, SkipReason) {
	payload, media := item.Payload.(feed.MediaItem)
	enclosure := payload.Enclosure

	title := strings.TrimSpace(item.Title)
	url, hasURL := enclosure.URL.Get()

	switch {
	case title == "":
		return Episode{URL: url}, SkipNoTitle
	case !media:
		return Episode{Title: title}, SkipNotMedia
	case !hasURL:
		return Episode{Title: title}, SkipNoEnclosure
	}

	episode := Episode{
		Title:     title,
		URL:       url,
		Path:      filepath.Join(dir, util.SanitizeFilenameWithExt(title, Extension(enclosure.MediaType))),
		Published: item.Published,
	}

	if exists, _ := filesystem.API().Exists(episode.Path); exists {
		return episode, SkipExists
	}

	return episode, NotSkipped
}
