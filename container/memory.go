package container

import (
	"errors"
	"fmt"
	"strings"
)

var errMemClosed = errors.New("memory container is closed")

// Memory is an in-memory Container. It is the test double for the HDF5
// adapter and a convenient way to build synthetic hierarchies. Traversal
// order is insertion order, which makes walks fully deterministic.
type Memory struct {
	root   *memNode
	closed bool
}

type memNode struct {
	attrs    map[string]string
	order    []string
	children map[string]*memNode
	records  *Recordset
}

func newMemNode(attrs map[string]string) *memNode {
	n := &memNode{
		attrs:    map[string]string{},
		children: map[string]*memNode{},
	}
	for k, v := range attrs {
		n.attrs[k] = v
	}
	return n
}

// NewMemory returns an empty in-memory container holding only a root group.
func NewMemory() *Memory {
	return &Memory{root: newMemNode(nil)}
}

// AddGroup creates the group at path, creating intermediate groups as
// needed, and sets its attributes. The empty path addresses the root
// group, which allows setting root attributes.
func (m *Memory) AddGroup(path string, attrs map[string]string) error {
	node, err := m.makePath(path)
	if err != nil {
		return err
	}
	for k, v := range attrs {
		node.attrs[k] = v
	}
	return nil
}

// AddChannel creates a leaf dataset at path holding the given records,
// creating intermediate groups as needed.
func (m *Memory) AddChannel(path string, records *Recordset, attrs map[string]string) error {
	if records == nil {
		return errors.New("channel needs records")
	}
	if normalize(path) == "" {
		return errors.New("channel needs a non-empty path")
	}
	node, err := m.makePath(path)
	if err != nil {
		return err
	}
	if len(node.children) > 0 {
		return fmt.Errorf("node %q is a group with children", path)
	}
	node.records = records
	for k, v := range attrs {
		node.attrs[k] = v
	}
	return nil
}

func (m *Memory) makePath(path string) (*memNode, error) {
	current := m.root
	for _, segment := range splitPath(path) {
		child, ok := current.children[segment]
		if !ok {
			if current.records != nil {
				return nil, fmt.Errorf("node %q is a leaf dataset", segment)
			}
			child = newMemNode(nil)
			current.children[segment] = child
			current.order = append(current.order, segment)
		}
		current = child
	}
	return current, nil
}

func (m *Memory) lookup(path string) (*memNode, error) {
	current := m.root
	for _, segment := range splitPath(path) {
		child, ok := current.children[segment]
		if !ok {
			return nil, fmt.Errorf("node %q: %w", path, ErrNotFound)
		}
		current = child
	}
	return current, nil
}

// Children returns the names of the group's children in insertion order.
func (m *Memory) Children(path string) ([]string, error) {
	if m.closed {
		return nil, errMemClosed
	}
	node, err := m.lookup(path)
	if err != nil {
		return nil, err
	}
	if node.records != nil {
		return nil, fmt.Errorf("node %q is a leaf dataset", path)
	}
	out := make([]string, len(node.order))
	copy(out, node.order)
	return out, nil
}

// Attributes returns the attributes of the node at path.
func (m *Memory) Attributes(path string) (map[string]string, error) {
	if m.closed {
		return nil, errMemClosed
	}
	node, err := m.lookup(path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(node.attrs))
	for k, v := range node.attrs {
		out[k] = v
	}
	return out, nil
}

// Walk visits every node below the root depth-first in insertion order.
func (m *Memory) Walk(fn WalkFunc) error {
	if m.closed {
		return errMemClosed
	}
	err := walkNode(m.root, "", fn)
	if errors.Is(err, SkipAll) {
		return nil
	}
	return err
}

func walkNode(node *memNode, prefix string, fn WalkFunc) error {
	for _, name := range node.order {
		child := node.children[name]
		childPath := name
		if prefix != "" {
			childPath = prefix + "/" + name
		}
		if err := fn(childPath, child.records != nil); err != nil {
			return err
		}
		if child.records == nil {
			if err := walkNode(child, childPath, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadRecords returns the records of the channel at path.
func (m *Memory) ReadRecords(path string) (*Recordset, error) {
	if m.closed {
		return nil, errMemClosed
	}
	node, err := m.lookup(path)
	if err != nil {
		return nil, err
	}
	if node.records == nil {
		return nil, fmt.Errorf("node %q is not a leaf dataset: %w", path, ErrNotFound)
	}
	return node.records, nil
}

// Close marks the container closed. Safe to call more than once.
func (m *Memory) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close has been called. Tests use it to check
// that failed constructions release the container.
func (m *Memory) Closed() bool {
	return m.closed
}

func splitPath(path string) []string {
	path = normalize(path)
	if path == "" {
		return nil
	}
	return strings.Split(path, "/")
}
