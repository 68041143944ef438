package core

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	PageFile     = "index.html"
	PageRoute    = "/"
	BackupSuffix = ".bak"
)

func BackupPath(path string) string {
	return path + BackupSuffix
}

func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAssetName)
	}

	if name == "." || name == ".." {
		return fmt.Errorf("%w: %q is not a file name", ErrInvalidAssetName, name)
	}

	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidAssetName, name)
	}

	if strings.HasSuffix(name, BackupSuffix) {
		return fmt.Errorf("%w: %q would collide with backup files", ErrInvalidAssetName, name)
	}

	if name == PageFile {
		return fmt.Errorf("%w: %q is reserved for the rendered page", ErrInvalidAssetName, name)
	}

	return nil
}

// NormalizeAssets drops duplicates, keeping the first occurrence.
func NormalizeAssets(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}

func ResolveDir(base, dir string) string {
	if dir == "" {
		return base
	}
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(base, dir)
}
