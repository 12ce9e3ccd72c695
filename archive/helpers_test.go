package archive

import (
	"context"
	"fmt"
	"sync"

	"github.com/castgrab/castgrab/downloader"
	"github.com/castgrab/castgrab/filesystem"
	"github.com/spf13/afero"
)

type logLine struct {
	level string
	msg   string
}

// recordingLogger keeps every line so tests can assert on levels and wording.
type recordingLogger struct {
	mu    sync.Mutex
	lines []logLine
}

func (l *recordingLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, logLine{level: level, msg: fmt.Sprintf(format, args...)})
}

func (l *recordingLogger) Infof(format string, args ...any)  { l.add("info", format, args...) }
func (l *recordingLogger) Warnf(format string, args ...any)  { l.add("warn", format, args...) }
func (l *recordingLogger) Errorf(format string, args ...any) { l.add("error", format, args...) }

func (l *recordingLogger) has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if line.level == level && line.msg == msg {
			return true
		}
	}
	return false
}

type stubFetcher struct {
	body string
	err  error
}

func (f stubFetcher) Fetch(context.Context, string) (string, error) {
	return f.body, f.err
}

// fakeDownloader writes a marker file for each URL unless told to fail,
// and may run a hook after every call.
type fakeDownloader struct {
	calls []string
	fail  map[string]bool
	after func(call int)
}

func (d *fakeDownloader) Download(_ context.Context, url, dest string) downloader.Result {
	d.calls = append(d.calls, url)
	defer func() {
		if d.after != nil {
			d.after(len(d.calls))
		}
	}()

	if d.fail[url] {
		return downloader.Result{Status: downloader.Failed, Err: fmt.Errorf("server said no")}
	}

	if err := filesystem.API().WriteFile(dest, []byte(url), 0o644); err != nil {
		return downloader.Result{Status: downloader.Failed, Err: err}
	}
	return downloader.Result{Status: downloader.Success, Size: uint64(len(url))}
}

// writeThroughDownloader writes to fs directly, bypassing the active backend.
type writeThroughDownloader struct {
	fs    afero.Fs
	calls int
}

func (d *writeThroughDownloader) Download(_ context.Context, url, dest string) downloader.Result {
	d.calls++
	if err := afero.WriteFile(d.fs, dest, []byte(url), 0o644); err != nil {
		return downloader.Result{Status: downloader.Failed, Err: err}
	}
	return downloader.Result{Status: downloader.Success}
}
