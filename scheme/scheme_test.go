package scheme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/frame"
)

// newFrame builds a frame with columns in the given order.
func newFrame(t *testing.T, order []string, columns map[string][]string) *frame.Frame {
	t.Helper()
	f := frame.New()
	for _, name := range order {
		require.NoError(t, f.AddColumn(name, columns[name]))
	}

	return f
}

func column(t *testing.T, f *frame.NumericFrame, name string) []float64 {
	t.Helper()
	values, ok := f.Column(name)
	require.True(t, ok, "column %q missing", name)

	return values
}
