package container

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/robert-malhotra/go-hdf5/hdf5"
)

// HDF5 adapts an HDF5 file to the Container interface. Files are opened
// read-only; the adapter never writes.
type HDF5 struct {
	file *hdf5.File
}

// OpenHDF5 opens an HDF5 file as a Container.
func OpenHDF5(path string) (*HDF5, error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, WrapError("opening container", err)
	}
	return &HDF5{file: f}, nil
}

// Close closes the underlying file. Safe to call more than once.
func (c *HDF5) Close() error {
	return c.file.Close()
}

// Children returns the member names of the group at path.
func (c *HDF5) Children(path string) ([]string, error) {
	group, err := c.group(path)
	if err != nil {
		return nil, err
	}
	members, err := group.Members()
	if err != nil {
		return nil, WrapError(fmt.Sprintf("listing group %q", path), err)
	}
	return members, nil
}

// Attributes returns the attributes of the group or dataset at path.
// Attribute values are reduced to strings: scalar strings directly,
// one-element arrays by their first element (the convention of the data
// producer, which stores every attribute as a single-element array).
func (c *HDF5) Attributes(path string) (map[string]string, error) {
	holder, err := c.node(path)
	if err != nil {
		return nil, err
	}

	attrs := make(map[string]string)
	for _, name := range holder.Attrs() {
		attr := holder.Attr(name)
		if attr == nil {
			continue
		}
		val, err := attr.Value()
		if err != nil {
			return nil, WrapError(fmt.Sprintf("reading attribute %q of %q", name, path), err)
		}
		attrs[name] = attrString(val)
	}
	return attrs, nil
}

// Walk traverses every group and dataset below the root in depth-first
// order. The root group itself is not reported.
func (c *HDF5) Walk(fn WalkFunc) error {
	err := hdf5.Walk(c.file.Root(), func(p string, obj interface{}, err error) error {
		if err != nil {
			return err
		}
		rel := strings.TrimPrefix(p, "/")
		if rel == "" {
			return nil
		}
		_, isLeaf := obj.(*hdf5.Dataset)
		if werr := fn(rel, isLeaf); werr != nil {
			if errors.Is(werr, SkipAll) {
				return hdf5.ErrStopWalk
			}
			return werr
		}
		return nil
	})
	if err != nil && !hdf5.IsStopWalk(err) {
		return err
	}
	return nil
}

// ReadRecords reads the compound dataset at path into a Recordset. The
// whole dataset is materialized at once; field names are normalized to
// exported Go identifiers by the HDF5 library.
func (c *HDF5) ReadRecords(path string) (*Recordset, error) {
	ds, err := c.file.OpenDataset(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening dataset %q: %v", ErrNotFound, path, err)
	}

	goType, err := ds.GoType()
	if err != nil {
		return nil, WrapError(fmt.Sprintf("resolving datatype of %q", path), err)
	}
	if goType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dataset %q does not hold structured records", path)
	}

	slicePtr := reflect.New(reflect.SliceOf(goType))
	if err := ds.Read(slicePtr.Interface()); err != nil {
		return nil, WrapError(fmt.Sprintf("reading dataset %q", path), err)
	}
	records := slicePtr.Elem()

	fields := make([]string, goType.NumField())
	columns := make(map[string][]float64)
	for i := 0; i < goType.NumField(); i++ {
		field := goType.Field(i)
		fields[i] = field.Name
		if !numericKind(field.Type.Kind()) {
			continue
		}
		col := make([]float64, records.Len())
		for j := 0; j < records.Len(); j++ {
			col[j] = toFloat64(records.Index(j).Field(i))
		}
		columns[field.Name] = col
	}

	return NewRecordset(fields, columns)
}

// node returns the group or dataset at path as an attribute holder.
func (c *HDF5) node(path string) (interface {
	Attrs() []string
	Attr(name string) *hdf5.Attribute
}, error) {
	path = normalize(path)
	if path == "" {
		return c.file.Root(), nil
	}
	if group, err := c.file.OpenGroup(path); err == nil {
		return group, nil
	}
	ds, err := c.file.OpenDataset(path)
	if err != nil {
		return nil, WrapError(fmt.Sprintf("opening node %q", path), err)
	}
	return ds, nil
}

func (c *HDF5) group(path string) (*hdf5.Group, error) {
	path = normalize(path)
	if path == "" {
		return c.file.Root(), nil
	}
	group, err := c.file.OpenGroup(path)
	if err != nil {
		return nil, WrapError(fmt.Sprintf("opening group %q", path), err)
	}
	return group, nil
}

func normalize(path string) string {
	return strings.Trim(path, "/")
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func toFloat64(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

// attrString reduces an attribute value to a string.
func attrString(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case []string:
		if len(x) > 0 {
			return x[0]
		}
		return ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Len() > 0 {
		return fmt.Sprint(rv.Index(0).Interface())
	}
	return fmt.Sprint(v)
}
