package phystech

import (
	"errors"
	"fmt"

	"github.com/luketudge/phystech/container"
)

// Data locates a channel by short name and materializes all of its
// records. It fails with ErrNotFound when the resolved path is a group
// rather than a leaf dataset. The whole dataset is read at once, so
// channels must fit in memory. To read and align several channels into
// one table, see Frame.
func (f *File) Data(name string) (*container.Recordset, error) {
	if f.closed {
		return nil, ErrClosed
	}
	path, err := f.Search(name)
	if err != nil {
		return nil, err
	}
	return f.readChannel(path)
}

// readChannel fetches a resolved channel's records, mapping the
// container's not-found kind onto ErrNotFound.
func (f *File) readChannel(path string) (*container.Recordset, error) {
	records, err := f.c.ReadRecords(path)
	if err != nil {
		if errors.Is(err, container.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q does not name a leaf dataset", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading channel %q: %w", path, err)
	}
	return records, nil
}
