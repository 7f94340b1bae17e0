// Package testutil provides helpers for building isolated ccline install
// trees in tests, so tests never touch a real installation or the user's
// home directory.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// InstallTree is a temporary ccline installation layout.
//
//	<root>/home/...                 fake home directory
//	<root>/launcher/ccline          fake launcher executable location
//	<root>/<package>/ccline[.exe]   platform package binaries
type InstallTree struct {
	Root     string
	Home     string
	Launcher string
}

// NewInstallTree creates an empty install tree under a test temp directory.
func NewInstallTree(t *testing.T) *InstallTree {
	t.Helper()

	root := t.TempDir()
	tree := &InstallTree{
		Root:     root,
		Home:     filepath.Join(root, "home"),
		Launcher: filepath.Join(root, "launcher", "ccline"),
	}

	for _, dir := range []string{tree.Home, filepath.Dir(tree.Launcher)} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			t.Fatalf("failed to create test directory %s: %v", dir, err)
		}
	}
	return tree
}

// AddPackage installs a fake binary for the given package name and returns
// its path.
func (tr *InstallTree) AddPackage(t *testing.T, pkg, name string) string {
	t.Helper()
	return tr.writeBinary(t, filepath.Join(tr.Root, filepath.FromSlash(pkg), name))
}

// AddOverride installs a fake binary at the user-override location under
// the tree's home directory and returns its path.
func (tr *InstallTree) AddOverride(t *testing.T, name string) string {
	t.Helper()
	return tr.writeBinary(t, filepath.Join(tr.Home, ".claude", "ccline", name))
}

// HomeDir returns the tree's home directory, for injection into a Locator.
func (tr *InstallTree) HomeDir() (string, error) {
	return tr.Home, nil
}

// Executable returns the tree's launcher path, for injection into a Locator.
func (tr *InstallTree) Executable() (string, error) {
	return tr.Launcher, nil
}

func (tr *InstallTree) writeBinary(t *testing.T, path string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake binary %s: %v", path, err)
	}
	return path
}
