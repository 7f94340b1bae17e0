// Command ccline is the uniform entry point for the ccline statusline tool.
//
// The tool itself ships as per-platform native binaries; this launcher
// resolves the host platform (including the Linux C runtime variant), picks
// the matching installed binary, and re-executes it with the original
// arguments. It defines no flags of its own: every argument is forwarded
// unchanged to the resolved binary.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/cometix/ccline/internal/dispatch"
	"github.com/cometix/ccline/internal/locator"
	"github.com/cometix/ccline/internal/platform"
)

// launcherFailureCode is the exit code for failures inside the launcher
// itself (resolution, location, spawn), before a child produced a meaningful
// code of its own. 125 keeps it out of the range tools ordinarily use,
// matching the convention of other wrappers that must distinguish "the
// wrapper failed" from "the tool failed".
const launcherFailureCode = 125

// debugEnv enables launcher debug logging to stderr when set. The launcher
// is otherwise silent so it never corrupts the tool's own output.
const debugEnv = "CCLINE_LAUNCHER_DEBUG"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	return runWith(args, platform.NewDetector(), locator.New())
}

func runWith(args []string, detector platform.Detector, loc *locator.Locator) int {
	log := newLogger()

	info, err := detector.Detect(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "ccline: %v\n", err)
		return launcherFailureCode
	}

	key := info.Key()
	log.Debug("platform resolved",
		"key", key,
		"os", info.OS,
		"arch", info.Arch,
		"distro", info.Distro,
		"distro_version", info.DistroVersion)
	if info.Libc != nil {
		log.Debug("libc probe",
			"flavor", info.Libc.Flavor.String(),
			"major", info.Libc.Major,
			"minor", info.Libc.Minor)
	}

	path, err := loc.Locate(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ccline: %v\n", err)
		return launcherFailureCode
	}
	log.Debug("binary located", "path", path)

	code, err := dispatch.Run(path, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ccline: %v\n", err)
		return launcherFailureCode
	}
	return code
}

func newLogger() *slog.Logger {
	if os.Getenv(debugEnv) == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelDebug,
	}))
}
