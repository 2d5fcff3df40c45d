package locator

import (
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"
)

// Application identifiers for the per-user data directory.
const (
	Vendor = "com.taranathan.dibble"
	App    = "dibble"
)

// LocalRoot is the development-local dictionary directory, relative to the
// working directory. It takes priority over installed dictionaries.
const LocalRoot = "./dict"

// SystemRoot is the system-wide dictionary install location.
const SystemRoot = "/usr/share/dibble/dict"

// DataRoot resolves the OS-native per-application data directory for the
// given identifiers: the reverse-domain vendor id under the native
// application-support directory on macOS, the plain app name under XDG
// data home elsewhere. Pure; the orchestration layer injects the result
// into the root list so tests can substitute synthetic roots.
func DataRoot(vendor, app string) string {
	if runtime.GOOS == "darwin" {
		return filepath.Join(xdg.DataHome, vendor)
	}
	return filepath.Join(xdg.DataHome, app)
}

// DefaultRoots returns the three dictionary roots in search priority
// order: local development copy, per-user install, system install.
func DefaultRoots() []string {
	return []string{
		LocalRoot,
		filepath.Join(DataRoot(Vendor, App), "dict"),
		SystemRoot,
	}
}
