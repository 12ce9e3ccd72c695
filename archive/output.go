package archive

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/castgrab/castgrab/feed"
	"github.com/castgrab/castgrab/filesystem"
	"github.com/castgrab/castgrab/util"
)

// ResolveOutput creates base/<sanitized feed title> and returns its path.
func ResolveOutput(f *feed.Feed, base string) (string, error) {
	if strings.TrimSpace(f.Title) == "" {
		return "", ErrMissingTitle
	}

	dir := filepath.Join(base, util.SanitizeFilename(f.Title))
	fs := filesystem.API()

	if err := fs.MkdirAll(dir, os.ModePerm); err != nil {
		return "", &DirectoryError{Path: dir, Err: err}
	}

	// MkdirAll may report success on filesystems that silently drop the request.
	isDir, err := fs.IsDir(dir)
	if err != nil {
		return "", &DirectoryError{Path: dir, Err: err}
	}
	if !isDir {
		return "", &DirectoryError{Path: dir, Err: errors.New("not a directory")}
	}

	return dir, nil
}
