package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// RealDetector implements Detector using actual platform detection.
type RealDetector struct {
	probe libcProber
}

// NewDetector creates a new platform detector.
func NewDetector() Detector {
	return &RealDetector{probe: runLdd}
}

// Detect performs platform detection and returns platform information.
// It uses runtime.GOOS and runtime.GOARCH for OS and architecture, the
// dynamic-linker probe for the C runtime, and gopsutil for Linux
// distribution details.
//
// The libc probe and the distro lookup both degrade gracefully: a failed
// probe yields the unknown (musl-fallback) variant, and a failed distro
// lookup leaves the diagnostic fields empty. Only an OS or architecture
// with no distributed build is a hard error.
func (d *RealDetector) Detect(ctx context.Context) (*Info, error) {
	osName, err := normalizeOS(runtime.GOOS)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}
	arch, err := normalizeArch(runtime.GOARCH)
	if err != nil {
		return nil, fmt.Errorf("platform detection failed: %w", err)
	}

	info := &Info{
		OS:   osName,
		Arch: arch,
	}
	if osName != "linux" {
		return info, nil
	}

	info.Libc = detectLibc(ctx, d.probe)

	// Distribution details are diagnostics only, so failures here are
	// ignored unless the context itself was cancelled.
	distro, family, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("platform detection cancelled: %w", ctx.Err())
		}
		return info, nil
	}

	info.Distro = normalizeDistro(distro)
	info.DistroFamily = normalizeDistro(family)
	info.DistroVersion = normalizeDistro(version)

	return info, nil
}
