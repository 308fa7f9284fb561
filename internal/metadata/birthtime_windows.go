package metadata

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

func birthTime(path string) (time.Time, bool) {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return time.Time{}, false
	}
	var data windows.Win32FileAttributeData
	if err := windows.GetFileAttributesEx(pathPtr, windows.GetFileExInfoStandard, (*byte)(unsafe.Pointer(&data))); err != nil {
		return time.Time{}, false
	}
	return time.Unix(0, data.CreationTime.Nanoseconds()), true
}
