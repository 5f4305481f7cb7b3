package phystech

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Children returns the names of the immediate children of a group, in the
// container's own ordering. The empty string names the root group.
func (f *File) Children(group string) ([]string, error) {
	if f.closed {
		return nil, ErrClosed
	}
	return f.c.Children(group)
}

// Attrs returns the attributes of a group or dataset as a string-keyed
// map. The empty string names the root group.
func (f *File) Attrs(name string) (map[string]string, error) {
	if f.closed {
		return nil, ErrClosed
	}
	return f.c.Attributes(name)
}

// DescribeNode formats the attributes of a node, one "key:\tvalue" line
// per attribute with keys sorted, followed for groups by a "Groups:"
// section listing the immediate children. The empty string names the
// root group.
func (f *File) DescribeNode(name string) (string, error) {
	if f.closed {
		return "", ErrClosed
	}

	attrs, err := f.c.Attributes(name)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s:\t%s\n", k, attrs[k])
	}

	// Only groups have a children listing; for datasets the lookup fails
	// and the section is omitted.
	if children, err := f.c.Children(name); err == nil {
		b.WriteString("\nGroups:\n")
		for _, child := range children {
			b.WriteString(child)
			b.WriteString("\n")
		}
	}

	return strings.TrimSpace(b.String()), nil
}

// Describe returns the file summary: absolute path, root attributes, the
// root's child groups and the maximum position counter. The text is built
// once at open time and returned verbatim on every call; it does not
// reflect changes to the underlying file until the File is reopened.
func (f *File) Describe() string {
	return f.info
}

func (f *File) buildInfo() (string, error) {
	root, err := f.DescribeNode("")
	if err != nil {
		return "", fmt.Errorf("describing root group: %w", err)
	}

	path := f.path
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	return fmt.Sprintf("%s\n\n%s\n\nMaxPosCounter:\t%d", path, root, f.maxPos), nil
}
