package phystech

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luketudge/phystech/container"
)

func TestNew(t *testing.T) {
	f := newTestFile(t)

	require.Equal(t, "c1/main/PosCountTimer", f.PosMaster())
	require.Equal(t, 5, f.MaxPos())
	require.Equal(t, "testscan.h5", f.Path())
}

// TestNewMissingMaster checks that construction fails cleanly when the
// master position channel is absent: the error identifies the problem,
// no usable File is returned and the container handle is released.
func TestNewMissingMaster(t *testing.T) {
	m := container.NewMemory()
	require.NoError(t, m.AddChannel("c1/main/energy",
		records(t, "PosCounter", "EVEnerg", []float64{1}, []float64{10}),
		nil))

	f, err := New(m, "noscan.h5")
	require.ErrorIs(t, err, ErrMissingMaster)
	require.Nil(t, f)
	require.True(t, m.Closed(), "failed construction must close the container")
}

func TestNewMasterSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		records *container.Recordset
	}{
		{
			name: "master without counter field",
			records: func() *container.Recordset {
				rs, err := container.NewRecordset(
					[]string{"Foo", "Bar"},
					map[string][]float64{"Foo": {1}, "Bar": {2}},
				)
				require.NoError(t, err)
				return rs
			}(),
		},
		{
			name:    "empty master channel",
			records: records(t, "PosCounter", "Timer", nil, nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := container.NewMemory()
			require.NoError(t, m.AddChannel("c1/main/PosCountTimer", tt.records, nil))

			f, err := New(m, "badscan.h5")
			require.ErrorIs(t, err, ErrSchemaViolation)
			require.Nil(t, f)
			require.True(t, m.Closed())
		})
	}
}

// TestNewOptions checks that the master channel name and the counter
// field name can both be changed from the producer defaults.
func TestNewOptions(t *testing.T) {
	m := container.NewMemory()
	require.NoError(t, m.AddChannel("scan/StepClock",
		records(t, "Step", "Clock", []float64{1, 2, 3}, []float64{9, 9, 9}),
		nil))
	require.NoError(t, m.AddChannel("scan/signal",
		records(t, "Step", "Signal", []float64{2}, []float64{42}),
		nil))

	f, err := New(m, "custom.h5",
		WithPosMaster("StepClock"),
		WithPosCounter("Step"))
	require.NoError(t, err)
	defer f.Close()

	require.Equal(t, "scan/StepClock", f.PosMaster())
	require.Equal(t, 3, f.MaxPos())

	frame, err := f.Frame("signal")
	require.NoError(t, err)
	require.Equal(t, 42.0, frame.At(1, 0))
}

func TestCloseIdempotent(t *testing.T) {
	f := newTestFile(t)

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}

func TestOpenMissingFile(t *testing.T) {
	f, err := Open("testdata/does_not_exist.h5")
	require.Error(t, err)
	require.Nil(t, f)
}

func TestDataAfterClose(t *testing.T) {
	f := newTestFile(t)
	require.NoError(t, f.Close())

	_, err := f.Data("energy")
	require.ErrorIs(t, err, ErrClosed)
}

func TestData(t *testing.T) {
	f := newTestFile(t)

	rs, err := f.Data("energy")
	require.NoError(t, err)
	require.Equal(t, []string{"PosCounter", "EVEnerg"}, rs.Fields())
	require.Equal(t, 3, rs.Len())

	values, ok := rs.Column("EVEnerg")
	require.True(t, ok)
	require.Equal(t, []float64{10, 20, 30}, values)
}

func TestDataNotFound(t *testing.T) {
	f := newTestFile(t)

	_, err := f.Data("nonexistent-name-xyz")
	require.ErrorIs(t, err, ErrNotFound)
}

// TestDataOnGroup checks the reader contract: a name that resolves to a
// group rather than a leaf dataset fails with ErrNotFound.
func TestDataOnGroup(t *testing.T) {
	f := newTestFile(t)

	rs, err := f.Data("extra")
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, rs)
}
