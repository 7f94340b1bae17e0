package locator

import "sort"

// packageScope is the distribution scope all platform packages live under.
const packageScope = "@cometix"

// packageMap maps platform keys to the package that carries the binary for
// that platform. Adding a platform is a one-line change here; nothing else
// in the resolution logic needs to know about individual platforms.
var packageMap = map[string]string{
	"darwin-x64":       packageScope + "/ccline-darwin-x64",
	"darwin-arm64":     packageScope + "/ccline-darwin-arm64",
	"linux-x64":        packageScope + "/ccline-linux-x64",
	"linux-x64-musl":   packageScope + "/ccline-linux-x64-musl",
	"linux-arm64":      packageScope + "/ccline-linux-arm64",
	"linux-arm64-musl": packageScope + "/ccline-linux-arm64-musl",
	"win32-x64":        packageScope + "/ccline-win32-x64",
}

// PackageFor returns the distribution package name for a platform key.
func PackageFor(key string) (string, bool) {
	pkg, ok := packageMap[key]
	return pkg, ok
}

// SupportedPlatforms returns the sorted list of platform keys that have a
// distributed binary. Used in error messages.
func SupportedPlatforms() []string {
	keys := make([]string, 0, len(packageMap))
	for key := range packageMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
