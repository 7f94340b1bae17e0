// Package platform detects the host operating system, CPU architecture, and
// (on Linux) the C runtime in use, and folds them into the canonical platform
// key that names a ccline binary distribution.
//
// Keys follow the distribution's naming, not Go's: "linux-x64-musl",
// "darwin-arm64", "win32-x64". The package uses gopsutil for Linux
// distribution details, which are recorded for diagnostics only and never
// influence key resolution.
package platform

import "context"

// LibcFlavor classifies the C runtime detected on a Linux host.
type LibcFlavor int

const (
	// LibcUnknown means the probe failed or produced unparseable output.
	// Key resolution treats it exactly like musl: statically linked musl
	// binaries run on strictly more hosts than glibc-linked ones, so
	// unknown always falls back to the safe variant.
	LibcUnknown LibcFlavor = iota
	// LibcGlibc is the GNU C library, with a parsed version.
	LibcGlibc
	// LibcMusl is musl libc.
	LibcMusl
)

// String returns the string representation of the libc flavor.
func (f LibcFlavor) String() string {
	switch f {
	case LibcGlibc:
		return "glibc"
	case LibcMusl:
		return "musl"
	default:
		return "unknown"
	}
}

// LibcInfo describes the C runtime on a Linux host. Major and Minor are only
// meaningful when Flavor is LibcGlibc.
type LibcInfo struct {
	Flavor LibcFlavor
	Major  int
	Minor  int
}

// minGlibcMajor/minGlibcMinor encode the oldest glibc ABI the distributed
// dynamic binaries are built against. Anything older must use the
// statically-linked musl variant.
const (
	minGlibcMajor = 2
	minGlibcMinor = 35
)

// needsStaticFallback reports whether the dynamically-linked glibc build
// cannot be trusted on this host and the musl variant must be used instead.
func (l *LibcInfo) needsStaticFallback() bool {
	if l == nil {
		return true
	}
	switch l.Flavor {
	case LibcMusl, LibcUnknown:
		return true
	case LibcGlibc:
		return l.Major < minGlibcMajor ||
			(l.Major == minGlibcMajor && l.Minor < minGlibcMinor)
	default:
		return true
	}
}

// Info contains platform detection information for one launcher invocation.
// It is computed once per run and never mutated afterwards.
type Info struct {
	OS   string // "linux", "darwin", "win32"
	Arch string // "x64", "arm64", "ia32"

	// Libc is nil on non-Linux hosts.
	Libc *LibcInfo

	// Linux distribution details from gopsutil. Diagnostics only; key
	// resolution never reads them. Empty when detection fails or off Linux.
	Distro        string // distro ID (e.g., "ubuntu", "alpine")
	DistroFamily  string // family string as reported (e.g., "debian")
	DistroVersion string // distro version (e.g., "22.04")
}

// IsLinux returns true if the platform is Linux.
func (i *Info) IsLinux() bool {
	return i.OS == "linux"
}

// IsWindows returns true if the platform is Windows.
func (i *Info) IsWindows() bool {
	return i.OS == "win32"
}

// Key computes the canonical platform key for this host.
//
// Rules, in order:
//  1. Base key is "{os}-{arch}".
//  2. Non-Linux hosts use the base key unchanged.
//  3. On Linux, "-musl" is appended when the libc is musl, unknown, or a
//     glibc older than 2.35.
//  4. 32-bit Windows maps onto the 64-bit Windows key; no native 32-bit
//     build is distributed.
func (i *Info) Key() string {
	if i.OS == "win32" && i.Arch == "ia32" {
		return "win32-x64"
	}

	key := i.OS + "-" + i.Arch
	if i.OS != "linux" {
		return key
	}
	if i.Libc.needsStaticFallback() {
		return key + "-musl"
	}
	return key
}

// Detector is the interface for platform detection.
type Detector interface {
	Detect(ctx context.Context) (*Info, error)
}
