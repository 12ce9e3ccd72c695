//go:build !windows

package archive

import "time"

// Unix filesystems expose birth time read-only, if at all.
func setCreationTime(string, time.Time) error {
	return nil
}
