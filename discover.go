package phystech

import (
	"fmt"
	"path/filepath"
)

// ExampleFiles lists the HDF5 files under dir, sorted by name. It is a
// plain function so that discovery happens when and where the caller
// wants it, not as a side effect of importing the package.
func ExampleFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.h5"))
	if err != nil {
		return nil, fmt.Errorf("globbing %q: %w", dir, err)
	}
	return matches, nil
}
