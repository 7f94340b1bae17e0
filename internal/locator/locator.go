package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
)

const (
	binaryName = "ccline"

	// overrideDir is the tool-specific directory under the user's home
	// that holds a locally installed binary.
	overrideDir = ".claude/ccline"
)

// Locator resolves binary paths. The home-directory and self-path lookups
// are injectable so tests can point it at temporary trees.
type Locator struct {
	homeDir    func() (string, error)
	executable func() (string, error)
}

// New creates a Locator backed by the real home directory and the
// launcher's own executable path.
func New() *Locator {
	return NewWithLookups(homedir.Dir, os.Executable)
}

// NewWithLookups creates a Locator with custom home-directory and
// executable-path lookups. Used by tests to point resolution at a
// temporary tree.
func NewWithLookups(homeDir, executable func() (string, error)) *Locator {
	return &Locator{
		homeDir:    homeDir,
		executable: executable,
	}
}

// Locate returns the absolute path of the binary to execute for the given
// platform key. The user-override path wins unconditionally when it exists;
// otherwise the key is mapped to its distribution package and the binary is
// expected inside that package's install directory.
func (l *Locator) Locate(key string) (string, error) {
	name := binaryFileName(key)

	if path, ok := l.overridePath(name); ok {
		return path, nil
	}

	pkg, ok := PackageFor(key)
	if !ok {
		return "", &UnsupportedPlatformError{Key: key}
	}

	self, err := l.executable()
	if err != nil {
		return "", fmt.Errorf("resolve launcher path: %w", err)
	}

	// Platform packages install as siblings of the launcher's own
	// directory, one per package name.
	path := filepath.Join(filepath.Dir(self), "..", pkg, name)
	if !fileExists(path) {
		return "", &BinaryNotFoundError{Package: pkg, Path: path}
	}
	return path, nil
}

// overridePath returns the user-local override path and whether a file
// exists there. A failed home lookup just disables the override.
func (l *Locator) overridePath(name string) (string, bool) {
	home, err := l.homeDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(home, filepath.FromSlash(overrideDir), name)
	return path, fileExists(path)
}

// binaryFileName returns the OS-appropriate binary filename for a key.
func binaryFileName(key string) string {
	if strings.HasPrefix(key, "win32-") {
		return binaryName + ".exe"
	}
	return binaryName
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
