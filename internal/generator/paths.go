// internal/generator/paths.go
package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"ironlog-icons/internal/config"
)

// ResolveDir picks the output directory. An explicit override wins. Otherwise
// the icons go to assets/icon of the module that contains sourceFile, so the
// result does not depend on the working directory. When the source tree is
// not on disk (copied binary) the executable's directory is used.
func ResolveDir(override, sourceFile string) (string, error) {
	if override != "" {
		return filepath.Abs(override)
	}
	if root, ok := moduleRoot(sourceFile); ok {
		return filepath.Join(root, filepath.FromSlash(config.AssetsDir)), nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// moduleRoot walks up from sourceFile to the nearest directory holding go.mod.
// Relative paths (-trimpath builds) would resolve against the working
// directory and are rejected.
func moduleRoot(sourceFile string) (string, bool) {
	if sourceFile == "" || !filepath.IsAbs(sourceFile) {
		return "", false
	}
	dir := filepath.Dir(sourceFile)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
