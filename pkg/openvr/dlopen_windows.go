//go:build windows

package openvr

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// defaultLibraryName is the platform's name for the OpenVR runtime library.
func defaultLibraryName() string {
	return "openvr_api.dll"
}

// loadLibrary opens the runtime DLL and returns its handle.
func loadLibrary(path string) (uintptr, error) {
	handle, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return uintptr(handle), nil
}
