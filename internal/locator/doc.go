// Package locator resolves the filesystem path of the ccline binary to
// execute for a given platform key.
//
// # Resolution Strategy
//
// Two independent strategies are tried in strict sequence:
//
//  1. User override: a fixed well-known path under the user's home
//     directory (~/.claude/ccline/ccline). If a file exists there it wins
//     unconditionally, before the package map is ever consulted. This lets
//     users reinstall or upgrade locally without touching the distribution
//     channel.
//
//  2. Distributed bundle: the platform key is mapped to a package name and
//     the binary is expected inside that package's install directory,
//     located as a sibling of the launcher's own package.
//
// The locator never downloads or installs anything; it only decides which
// already-installed path to trust. Paths are computed fresh on every call
// and never cached.
package locator
