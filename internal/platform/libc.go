package platform

import (
	"context"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// probeTimeout bounds the dynamic-linker version query so a hung or slow
// subprocess cannot stall launcher startup.
const probeTimeout = 1 * time.Second

// glibcVersionRe matches the version reported by the GNU dynamic linker,
// e.g. "ldd (GNU libc) 2.39" or "ldd (Ubuntu GLIBC 2.35-0ubuntu3) 2.35".
var glibcVersionRe = regexp.MustCompile(`(?:GNU libc|GLIBC)[^0-9]*(\d+)\.(\d+)`)

// libcProber runs the libc version query and returns its combined output.
// Injectable so tests never depend on the host's dynamic linker.
type libcProber func(ctx context.Context) ([]byte, error)

func runLdd(ctx context.Context) ([]byte, error) {
	// musl's ldd prints its banner to stderr and exits non-zero, so the
	// combined output matters and the exit status does not.
	out, err := exec.CommandContext(ctx, "ldd", "--version").CombinedOutput()
	if len(out) > 0 {
		return out, nil
	}
	return out, err
}

// detectLibc probes the C runtime on a Linux host. It never fails: a probe
// that cannot execute, times out, or prints something unrecognizable yields
// LibcUnknown, which key resolution folds into the musl fallback.
func detectLibc(ctx context.Context, probe libcProber) *LibcInfo {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := probe(ctx)
	if err != nil {
		return &LibcInfo{Flavor: LibcUnknown}
	}
	return classifyLibc(string(out))
}

// classifyLibc interprets dynamic-linker version output. The musl marker wins
// over anything else in the output.
func classifyLibc(output string) *LibcInfo {
	if strings.Contains(output, "musl") {
		return &LibcInfo{Flavor: LibcMusl}
	}

	m := glibcVersionRe.FindStringSubmatch(output)
	if m == nil {
		return &LibcInfo{Flavor: LibcUnknown}
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return &LibcInfo{Flavor: LibcUnknown}
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return &LibcInfo{Flavor: LibcUnknown}
	}

	return &LibcInfo{Flavor: LibcGlibc, Major: major, Minor: minor}
}
