//go:build windows

package archive

import (
	"syscall"
	"time"
)

func setCreationTime(path string, t time.Time) error {
	name, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	h, err := syscall.CreateFile(
		name,
		syscall.FILE_WRITE_ATTRIBUTES,
		syscall.FILE_SHARE_READ|syscall.FILE_SHARE_WRITE,
		nil,
		syscall.OPEN_EXISTING,
		syscall.FILE_FLAG_BACKUP_SEMANTICS,
		0,
	)
	if err != nil {
		return err
	}
	defer syscall.CloseHandle(h)

	created := syscall.NsecToFiletime(t.UnixNano())
	return syscall.SetFileTime(h, &created, nil, nil)
}
