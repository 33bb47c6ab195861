package scheme

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
)

// TestTargetEncode verifies smoothed category means against hand-computed
// values
func TestTargetEncode(t *testing.T) {
	x := newFrame(t, []string{"city"}, map[string][]string{
		"city": {"a", "a", "b"},
	})
	y := frame.NewSeries("label", []float64{1, 0, 1})

	encoder, err := NewTargetEncoder(WithSmoothing(1))
	require.NoError(t, err)
	require.NoError(t, encoder.Fit(x, y))

	// prior = 2/3
	// a: (1 + 1*(2/3)) / (2 + 1) = 5/9
	// b: (1 + 1*(2/3)) / (1 + 1) = 5/6
	require.InDelta(t, 2.0/3.0, encoder.Prior, 1e-12)

	out, err := encoder.Transform(x)
	require.NoError(t, err)
	values := column(t, out, "city")
	require.InDelta(t, 5.0/9.0, values[0], 1e-12)
	require.InDelta(t, 5.0/9.0, values[1], 1e-12)
	require.InDelta(t, 5.0/6.0, values[2], 1e-12)
}

// TestTargetUnseenCategory verifies unseen categories encode to the prior
func TestTargetUnseenCategory(t *testing.T) {
	x := newFrame(t, []string{"city"}, map[string][]string{
		"city": {"a", "b"},
	})
	y := frame.NewSeries("label", []float64{1, 0})

	encoder, err := NewTargetEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.Fit(x, y))

	unseen := newFrame(t, []string{"city"}, map[string][]string{"city": {"c"}})
	out, err := encoder.Transform(unseen)
	require.NoError(t, err)
	require.InDelta(t, 0.5, column(t, out, "city")[0], 1e-12)
}

// TestTargetDefaultSmoothing verifies the default prior weight applies
func TestTargetDefaultSmoothing(t *testing.T) {
	encoder, err := NewTargetEncoder()
	require.NoError(t, err)
	require.Equal(t, DefaultSmoothing, encoder.Smoothing)
}

// TestTargetNotFitted verifies transform-before-fit fails
func TestTargetNotFitted(t *testing.T) {
	encoder, err := NewTargetEncoder()
	require.NoError(t, err)

	x := newFrame(t, []string{"city"}, map[string][]string{"city": {"a"}})
	_, err = encoder.Transform(x)
	require.ErrorIs(t, err, errs.ErrNotFitted)
}
