package phystech

import (
	"errors"
	"fmt"

	"github.com/luketudge/phystech/container"
)

// Default channel naming conventions of the data producer.
const (
	DefaultPosMaster  = "PosCountTimer"
	DefaultPosCounter = "PosCounter"
)

// Option configures a File at construction.
type Option func(*options)

type options struct {
	posMaster  string
	posCounter string
}

func defaultOptions() *options {
	return &options{
		posMaster:  DefaultPosMaster,
		posCounter: DefaultPosCounter,
	}
}

// WithPosMaster sets the short name of the master position channel, whose
// largest counter value fixes the height of every assembled table.
func WithPosMaster(name string) Option {
	return func(o *options) {
		o.posMaster = name
	}
}

// WithPosCounter sets the name of the position-counter field expected in
// every channel's records.
func WithPosCounter(name string) Option {
	return func(o *options) {
		o.posCounter = name
	}
}

// File reads channels from a hierarchical measurement file. It owns a
// container handle for its lifetime; Close releases it. The master
// position channel is resolved once at construction and the maximum of
// its counter values (maxPos) stays fixed until the File is closed, even
// if the underlying file changes afterwards.
type File struct {
	c          container.Container
	path       string
	posCounter string
	posMaster  string
	maxPos     int
	info       string
	closed     bool
}

// Open opens an HDF5 measurement file read-only and wraps it in a File.
func Open(path string, opts ...Option) (*File, error) {
	c, err := container.OpenHDF5(path)
	if err != nil {
		return nil, err
	}
	return New(c, path, opts...)
}

// New wraps an already opened container. name labels the container in the
// summary text; for file-backed containers it is the file path. New takes
// ownership of the container and closes it when construction fails, so a
// failed New never leaks the handle.
func New(c container.Container, name string, opts ...Option) (*File, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	f := &File{
		c:          c,
		path:       name,
		posCounter: o.posCounter,
	}

	master, err := f.Search(o.posMaster)
	if err != nil {
		c.Close()
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrMissingMaster, o.posMaster)
		}
		return nil, err
	}
	f.posMaster = master

	records, err := c.ReadRecords(master)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("reading master channel %q: %w", master, err)
	}
	counters, ok := records.Column(f.posCounter)
	if !ok {
		c.Close()
		return nil, fmt.Errorf("%w: master channel %q has no numeric %q field",
			ErrSchemaViolation, master, f.posCounter)
	}
	if len(counters) == 0 {
		c.Close()
		return nil, fmt.Errorf("%w: master channel %q is empty", ErrSchemaViolation, master)
	}
	for _, v := range counters {
		if int(v) > f.maxPos {
			f.maxPos = int(v)
		}
	}

	info, err := f.buildInfo()
	if err != nil {
		c.Close()
		return nil, err
	}
	f.info = info

	return f, nil
}

// Close releases the container handle. Safe to call more than once.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	return f.c.Close()
}

// Path returns the name the File was opened under.
func (f *File) Path() string {
	return f.path
}

// PosMaster returns the resolved full path of the master position channel.
func (f *File) PosMaster() string {
	return f.posMaster
}

// MaxPos returns the table height: the largest position-counter value in
// the master channel, fixed at open time.
func (f *File) MaxPos() int {
	return f.maxPos
}
