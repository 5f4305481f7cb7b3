// Package container defines the hierarchical-container capability consumed
// by the phystech package, together with two implementations: an adapter
// over a pure-Go HDF5 library and an in-memory container for tests and
// synthetic fixtures.
//
// A container is a tree of named groups and leaf datasets (channels). Every
// node carries string-valued attributes. Node paths are root-relative and
// slash-separated with no leading slash, so a channel nested two groups
// deep reads "c1/main/normalized". The empty string (or "/") names the
// root group itself.
package container

import "errors"

// SkipAll is returned by a WalkFunc to stop the traversal early.
// Walk returns nil when stopped this way.
var SkipAll = errors.New("skip everything and stop the walk")

// ErrNotFound reports a path that does not resolve to the kind of node an
// operation needs: the node is missing, or ReadRecords was pointed at a
// group instead of a leaf dataset.
var ErrNotFound = errors.New("node not found")

// WalkFunc is called once per node during a depth-first traversal.
// path is the node's root-relative path and isLeaf reports whether the
// node is a leaf dataset rather than a group. Returning a non-nil error
// other than SkipAll aborts the walk and is returned by Walk.
type WalkFunc func(path string, isLeaf bool) error

// Container is a read-only handle on a hierarchical store of named groups
// and leaf datasets. Implementations are not safe for concurrent use;
// callers serialize access to a single handle.
type Container interface {
	// Children returns the names of the immediate children of the group
	// at path, in the container's own ordering. The empty path names the
	// root group.
	Children(path string) ([]string, error)

	// Attributes returns the attributes of the node at path as a
	// string-keyed map. The empty path names the root group.
	Attributes(path string) (map[string]string, error)

	// Walk visits every node below the root in depth-first order, groups
	// before their children. The root itself is not reported.
	Walk(fn WalkFunc) error

	// ReadRecords materializes the whole leaf dataset at path as a
	// Recordset. It fails if path does not name a leaf dataset.
	ReadRecords(path string) (*Recordset, error)

	// Close releases the container. It is safe to call more than once.
	Close() error
}
