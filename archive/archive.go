// Package archive mirrors a podcast feed into a local directory, one episode at a time.
//
// A run fetches the feed, resolves the output directory from the feed title and then walks the
// items oldest first. Items that cannot or need not be downloaded are logged and skipped; a failed
// download never aborts the run. Cancellation is observed between items.
package archive

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/castgrab/castgrab/downloader"
	"github.com/castgrab/castgrab/feed"
	"github.com/castgrab/castgrab/filesystem"
	"github.com/castgrab/castgrab/util"
	"github.com/dustin/go-humanize"
	"github.com/samber/lo"
)

// Logger receives the human-readable progress of a run.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fetcher returns the raw body of a feed.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Options configures an Archiver.
type Options struct {
	// OutputDir is the base directory; the feed directory is created inside it.
	OutputDir  string
	Fetcher    Fetcher
	Downloader downloader.Downloader
	Logger     Logger
}

// Archiver downloads the episodes of a feed.
type Archiver struct {
	base       string
	fetcher    Fetcher
	downloader downloader.Downloader
	log        Logger
}

// New returns an Archiver for opts.
func New(opts Options) *Archiver {
	return &Archiver{
		base:       opts.OutputDir,
		fetcher:    opts.Fetcher,
		downloader: opts.Downloader,
		log:        opts.Logger,
	}
}

// Summary counts the outcome of every item visited by a run.
type Summary struct {
	Downloaded int
	Skipped    int
	Failed     int
}

func (s Summary) String() string {
	return fmt.Sprintf(
		"%s downloaded, %s skipped, %s failed",
		util.Quantify(s.Downloaded, "episode", "episodes"),
		util.Quantify(s.Skipped, "item", "items"),
		util.Quantify(s.Failed, "item", "items"),
	)
}

// Run mirrors the feed at url.
// It returns a fatal error for fetch, parse, title and directory failures, and an error wrapping
// ErrCancelled when ctx ends before every item was visited.
func (a *Archiver) Run(ctx context.Context, url string) (Summary, error) {
	body, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		a.log.Errorf("Failed to download %s: %v", url, err)
		return Summary{}, err
	}

	parsed, err := feed.Parse(body)
	if err != nil {
		a.log.Errorf("Failed to parse %s", url)
		return Summary{}, fmt.Errorf("parse %s: %w", url, err)
	}

	dir, err := ResolveOutput(parsed, a.base)
	switch {
	case errors.Is(err, ErrMissingTitle):
		a.log.Errorf("Failed to get feed title for %s", url)
		return Summary{}, err
	case err != nil:
		a.log.Errorf("%v", err)
		return Summary{}, err
	}

	a.log.Infof("Feed Title: %s", parsed.Title)
	a.log.Infof("Output Directory: %s", dir)

	summary, err := a.archive(ctx, url, dir, Chronological(parsed.Items))
	a.log.Infof("Finished %s: %s", parsed.Title, summary)
	return summary, err
}

func (a *Archiver) archive(ctx context.Context, url, dir string, items []*feed.Item) (Summary, error) {
	var summary Summary

	for _, item := range items {
		if ctx.Err() != nil {
			a.log.Warnf("Download cancelled.")
			return summary, errors.Join(ErrCancelled, context.Cause(ctx))
		}

		episode, reason := Plan(item, dir)
		if reason != NotSkipped {
			a.skip(url, episode, reason)
			summary.Skipped++
			continue
		}

		if a.download(ctx, episode) {
			summary.Downloaded++
		} else {
			summary.Failed++
		}
	}

	return summary, nil
}

func (a *Archiver) skip(url string, episode Episode, reason SkipReason) {
	switch reason {
	case SkipNoTitle:
		if episode.URL == "" {
			a.log.Warnf("Item has no title in %s, skipping", url)
		} else {
			a.log.Warnf("Item has no title in %s, skipping %s", url, episode.URL)
		}
	case SkipNotMedia:
		a.log.Warnf("Item is not a media item: %s", episode.Title)
	case SkipNoEnclosure:
		a.log.Warnf("Item has no enclosure: %s", episode.Title)
	case SkipExists:
		a.log.Warnf("File already exists: %s", episode.Title)
	}
}

// download fetches a single episode and reports whether it ended up on disk with its dates applied.
func (a *Archiver) download(ctx context.Context, episode Episode) bool {
	a.log.Infof("Downloading %s", episode.Title)

	result := a.downloader.Download(ctx, episode.URL, episode.Path)
	a.report(episode, result)

	if exists, _ := filesystem.API().Exists(episode.Path); !exists {
		a.log.Errorf("Failed to download %s", episode.Title)
		return false
	}

	if published, ok := episode.Published.Get(); ok {
		if err := stamp(episode.Path, published); err != nil {
			a.log.Errorf("Failed to set dates on %s: %v", episode.Title, err)
			return false
		}
	}

	return true
}

func (a *Archiver) report(episode Episode, result downloader.Result) {
	switch result.Status {
	case downloader.Failed:
		a.log.Errorf("Download failed: %v", result.Err)
	case downloader.Cancelled:
		a.log.Warnf("Download cancelled")
	default:
		a.log.Infof(
			"Downloaded %s (%s in %s, %s/s)",
			filepath.Base(episode.Path),
			humanize.Bytes(result.Size),
			result.Elapsed.Round(time.Millisecond),
			humanize.Bytes(result.AvgSpeed),
		)
	}
}

// Chronological returns items oldest first.
// Feeds list newest first, so the parser order is reversed; when every item is dated the
// dates decide instead, keeping reversed order among equal dates.
func Chronological(items []*feed.Item) []*feed.Item {
	ordered := slices.Clone(items)
	slices.Reverse(ordered)

	dated := lo.EveryBy(ordered, func(item *feed.Item) bool {
		return item.Published.IsPresent()
	})
	if !dated {
		return ordered
	}

	slices.SortStableFunc(ordered, func(x, y *feed.Item) int {
		return x.Published.MustGet().Compare(y.Published.MustGet())
	})
	return ordered
}
