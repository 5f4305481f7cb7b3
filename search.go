package phystech

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luketudge/phystech/container"
)

// Search locates a group or dataset by short name. The hierarchy is
// traversed depth-first and the first node whose full path contains name
// as a substring wins; the remaining nodes are not visited. The result is
// deterministic for a fixed container, but when several nodes share the
// searched substring the winner depends on the container's traversal
// order, so callers wanting a specific node should search for enough of
// its path to make the match unique.
func (f *File) Search(name string) (string, error) {
	if f.closed {
		return "", ErrClosed
	}
	if name == "" {
		return "", errors.New("empty search name")
	}

	var match string
	found := false
	err := f.c.Walk(func(path string, isLeaf bool) error {
		if strings.Contains(path, name) {
			match = path
			found = true
			return container.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("searching for %q: %w", name, err)
	}
	if !found {
		return "", fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return match, nil
}
