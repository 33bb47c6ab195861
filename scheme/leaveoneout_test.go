package scheme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
)

// TestLeaveOneOutEncode verifies the smoothed aggregate estimate against
// hand-computed values
func TestLeaveOneOutEncode(t *testing.T) {
	x := newFrame(t, []string{"city"}, map[string][]string{
		"city": {"a", "a", "b", "b"},
	})
	y := frame.NewSeries("label", []float64{1, 0, 1, 1})

	encoder, err := NewLeaveOneOutEncoder(WithSmoothing(2))
	require.NoError(t, err)
	require.NoError(t, encoder.Fit(x, y))

	// prior = 3/4
	// a: (1 + 2*0.75) / (2 + 2) = 2.5/4
	// b: (2 + 2*0.75) / (2 + 2) = 3.5/4
	out, err := encoder.Transform(x)
	require.NoError(t, err)
	values := column(t, out, "city")
	require.InDelta(t, 0.625, values[0], 1e-12)
	require.InDelta(t, 0.625, values[1], 1e-12)
	require.InDelta(t, 0.875, values[2], 1e-12)
	require.InDelta(t, 0.875, values[3], 1e-12)
}

// TestLeaveOneOutAggregates verifies the retained reduced statistics
func TestLeaveOneOutAggregates(t *testing.T) {
	x := newFrame(t, []string{"city"}, map[string][]string{
		"city": {"a", "a", "b"},
	})
	y := frame.NewSeries("label", []float64{1, 0, 1})

	encoder, err := NewLeaveOneOutEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.Fit(x, y))

	require.Equal(t, 1.0, encoder.Sums["city"]["a"])
	require.Equal(t, 2.0, encoder.Counts["city"]["a"])
	require.Equal(t, 1.0, encoder.Sums["city"]["b"])
	require.Equal(t, 1.0, encoder.Counts["city"]["b"])
}

// TestLeaveOneOutUnseenCategory verifies unseen categories encode to the
// prior
func TestLeaveOneOutUnseenCategory(t *testing.T) {
	x := newFrame(t, []string{"city"}, map[string][]string{
		"city": {"a", "b"},
	})
	y := frame.NewSeries("label", []float64{1, 0})

	encoder, err := NewLeaveOneOutEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.Fit(x, y))

	unseen := newFrame(t, []string{"city"}, map[string][]string{"city": {"zzz"}})
	out, err := encoder.Transform(unseen)
	require.NoError(t, err)
	require.InDelta(t, 0.5, column(t, out, "city")[0], 1e-12)
}

// TestLeaveOneOutNotFitted verifies transform-before-fit fails
func TestLeaveOneOutNotFitted(t *testing.T) {
	encoder, err := NewLeaveOneOutEncoder()
	require.NoError(t, err)

	x := newFrame(t, []string{"city"}, map[string][]string{"city": {"a"}})
	_, err = encoder.Transform(x)
	require.ErrorIs(t, err, errs.ErrNotFitted)
}
