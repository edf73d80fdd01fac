package configloader

import (
	"context"
	"os"
	"path/filepath"
)

// configFileNames are the recognized project config file names, in lookup
// order within each directory.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".quillrc.yaml",
	".quillrc.yml",
	".quillrc.json",
}

// DiscoverPath searches workDir and its ancestors for a project config
// file. It returns the first match, or "" when none exists.
func DiscoverPath(ctx context.Context, workDir string) (string, error) {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return "", err
	}

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
