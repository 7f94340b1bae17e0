package platform

import (
	"fmt"
	"strings"
)

// normalizeOS converts GOOS values to the distribution's OS names.
func normalizeOS(goos string) (string, error) {
	switch goos {
	case "linux":
		return "linux", nil
	case "darwin":
		return "darwin", nil
	case "windows":
		return "win32", nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// normalizeArch converts GOARCH values to the distribution's architecture
// names. ia32 is accepted here and collapsed onto x64 during key
// construction; no 32-bit build exists.
func normalizeArch(goarch string) (string, error) {
	switch goarch {
	case "amd64":
		return "x64", nil
	case "arm64":
		return "arm64", nil
	case "386":
		return "ia32", nil
	default:
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
}

// normalizeDistro converts distro identifiers to lowercase for consistency.
func normalizeDistro(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
