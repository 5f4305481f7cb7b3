package phystech

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luketudge/phystech/container"
)

// records builds a two-field recordset in the producer's layout: the
// position counter first, the value field second.
func records(t *testing.T, counterField, valueField string, counters, values []float64) *container.Recordset {
	t.Helper()
	rs, err := container.NewRecordset(
		[]string{counterField, valueField},
		map[string][]float64{
			counterField: counters,
			valueField:   values,
		},
	)
	require.NoError(t, err)
	return rs
}

// newTestContainer builds the synthetic scan used throughout the tests:
//
//	c1/
//	  main/
//	    PosCountTimer   counters 1..5
//	    energy          counters 1,3,5  values 10,20,30
//	    chanA           counters 1,2    values 1.5,2.5
//	  extra/
//	    chanB           counters 4,5    values 4.5,5.5
func newTestContainer(t *testing.T) *container.Memory {
	t.Helper()
	m := container.NewMemory()

	require.NoError(t, m.AddGroup("", map[string]string{
		"comment": "test scan",
		"created": "2019-03-14",
	}))
	require.NoError(t, m.AddChannel("c1/main/PosCountTimer",
		records(t, "PosCounter", "Timer",
			[]float64{1, 2, 3, 4, 5},
			[]float64{0.1, 0.2, 0.3, 0.4, 0.5}),
		nil))
	require.NoError(t, m.AddChannel("c1/main/energy",
		records(t, "PosCounter", "EVEnerg",
			[]float64{1, 3, 5},
			[]float64{10, 20, 30}),
		map[string]string{"unit": "eV"}))
	require.NoError(t, m.AddChannel("c1/main/chanA",
		records(t, "PosCounter", "ChanA",
			[]float64{1, 2},
			[]float64{1.5, 2.5}),
		nil))
	require.NoError(t, m.AddChannel("c1/extra/chanB",
		records(t, "PosCounter", "ChanB",
			[]float64{4, 5},
			[]float64{4.5, 5.5}),
		nil))

	return m
}

func newTestFile(t *testing.T) *File {
	t.Helper()
	f, err := New(newTestContainer(t), "testscan.h5")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}
