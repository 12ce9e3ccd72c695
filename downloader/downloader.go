// Package downloader transfers a single media file to disk, splitting it into parallel ranged chunks.
package downloader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/castgrab/castgrab/constant"
	"github.com/castgrab/castgrab/filesystem"
	"github.com/melbahja/got"
)

// DefaultChunks is the number of parallel chunks used per file.
const DefaultChunks = 8

func init() {
	got.UserAgent = constant.UserAgent
}

// Status is the outcome of a transfer.
type Status int

const (
	Success Status = iota
	Failed
	Cancelled
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case Failed:
		return "failed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result describes a finished transfer. Err is set unless Status is Success.
type Result struct {
	Status   Status
	Err      error
	Size     uint64
	AvgSpeed uint64
	Elapsed  time.Duration
}

// Downloader fetches url into dest.
// A Success result means dest holds the complete file; on any other result dest is left absent.
type Downloader interface {
	Download(ctx context.Context, url, dest string) Result
}

// Got is a Downloader backed by github.com/melbahja/got.
type Got struct {
	client *http.Client
	chunks uint
}

// NewGot returns a chunked downloader using client for every ranged request.
func NewGot(client *http.Client, chunks int) *Got {
	if chunks < 1 {
		chunks = DefaultChunks
	}
	return &Got{client: client, chunks: uint(chunks)}
}

// Download implements Downloader.
func (g *Got) Download(ctx context.Context, url, dest string) Result {
	dl := got.NewDownload(ctx, url, dest)
	dl.Client = g.client
	dl.Concurrency = g.chunks

	if err := dl.Init(); err != nil {
		return g.fail(ctx, dest, fmt.Errorf("init %s: %w", url, err))
	}

	if err := dl.Start(); err != nil {
		return g.fail(ctx, dest, fmt.Errorf("transfer %s: %w", url, err))
	}

	return Result{
		Status:   Success,
		Size:     dl.TotalSize(),
		AvgSpeed: dl.AvgSpeed(),
		Elapsed:  dl.TotalCost(),
	}
}

func (g *Got) fail(ctx context.Context, dest string, err error) Result {
	if exists, _ := filesystem.API().Exists(dest); exists {
		if rmErr := filesystem.API().Remove(dest); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("remove partial file: %w", rmErr))
		}
	}

	if ctx.Err() != nil {
		return Result{Status: Cancelled, Err: errors.Join(ctx.Err(), err)}
	}
	return Result{Status: Failed, Err: err}
}
