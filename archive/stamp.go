package archive

import (
	"time"

	"github.com/castgrab/castgrab/filesystem"
	"github.com/spf13/afero"
)

// stamp sets the access and modification times of path to t.
// On platforms that allow it the creation time is set too.
func stamp(path string, t time.Time) error {
	fs := filesystem.API()
	if err := fs.Chtimes(path, t, t); err != nil {
		return err
	}

	if _, ok := fs.Fs.(*afero.OsFs); ok {
		return setCreationTime(path, t)
	}
	return nil
}
