package locator

import (
	"fmt"
	"strings"
)

// UnsupportedPlatformError indicates the resolved platform key has no
// distributed binary package.
type UnsupportedPlatformError struct {
	Key string
}

// Error returns the user-facing message, including the supported platform
// list and a manual-installation pointer.
func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf(
		"unsupported platform %s\nsupported platforms: %s\nsee the ccline README for manual installation",
		e.Key, strings.Join(SupportedPlatforms(), ", "))
}

// BinaryNotFoundError indicates the distributed bundle for a resolved
// package is missing or incomplete on disk.
type BinaryNotFoundError struct {
	Package string
	Path    string
}

// Error returns the user-facing message with the expected path and a
// remediation hint.
func (e *BinaryNotFoundError) Error() string {
	return fmt.Sprintf(
		"ccline binary for package %s not found at %s\nthe installation may be corrupt; try reinstalling ccline",
		e.Package, e.Path)
}
