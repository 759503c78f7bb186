//go:build linux || darwin

package openvr

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// defaultLibraryName is the platform's name for the OpenVR runtime library.
func defaultLibraryName() string {
	if runtime.GOOS == "darwin" {
		return "libopenvr_api.dylib"
	}
	return "libopenvr_api.so"
}

// loadLibrary opens the runtime shared library and returns its handle.
func loadLibrary(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return handle, nil
}
