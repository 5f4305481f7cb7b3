package phystech

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	f := newTestFile(t)

	tests := []struct {
		name    string
		term    string
		want    string
		wantErr error
	}{
		{
			name: "leaf dataset by short name",
			term: "energy",
			want: "c1/main/energy",
		},
		{
			name: "group by name",
			term: "extra",
			want: "c1/extra",
		},
		{
			name: "substring of a nested path",
			term: "main/chan",
			want: "c1/main/chanA",
		},
		{
			name: "first depth-first match wins on ambiguous term",
			term: "chan",
			want: "c1/main/chanA",
		},
		{
			name:    "unknown name",
			term:    "nonexistent-name-xyz",
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Search(tt.term)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

// TestSearchDeterminism checks that repeated searches over an unchanged
// container resolve to the same path.
func TestSearchDeterminism(t *testing.T) {
	f := newTestFile(t)

	first, err := f.Search("chan")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := f.Search("chan")
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
}

func TestSearchEmptyName(t *testing.T) {
	f := newTestFile(t)

	_, err := f.Search("")
	require.Error(t, err)
}

func TestSearchAfterClose(t *testing.T) {
	f := newTestFile(t)
	require.NoError(t, f.Close())

	_, err := f.Search("energy")
	require.ErrorIs(t, err, ErrClosed)
}
