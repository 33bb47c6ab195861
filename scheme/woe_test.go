package scheme

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
)

// TestWOEEncode verifies weights of evidence against hand-computed values
func TestWOEEncode(t *testing.T) {
	x := newFrame(t, []string{"city"}, map[string][]string{
		"city": {"a", "a", "b", "b"},
	})
	y := frame.NewSeries("label", []float64{1, 1, 0, 1})

	encoder, err := NewWOEEncoder() // regularization 0.5
	require.NoError(t, err)
	require.NoError(t, encoder.Fit(x, y))

	// events = 3, nonEvents = 1, r = 0.5
	// a: good=2 bad=0 -> ln((2.5/4) / (0.5/2)) = ln(2.5)
	// b: good=1 bad=1 -> ln((1.5/4) / (1.5/2)) = ln(0.5)
	out, err := encoder.Transform(x)
	require.NoError(t, err)
	values := column(t, out, "city")
	require.InDelta(t, math.Log(2.5), values[0], 1e-12)
	require.InDelta(t, math.Log(2.5), values[1], 1e-12)
	require.InDelta(t, math.Log(0.5), values[2], 1e-12)
	require.InDelta(t, math.Log(0.5), values[3], 1e-12)
}

// TestWOENonBinaryTarget verifies fit rejects targets outside {0, 1}
func TestWOENonBinaryTarget(t *testing.T) {
	x := newFrame(t, []string{"city"}, map[string][]string{
		"city": {"a", "b"},
	})
	y := frame.NewSeries("label", []float64{0.5, 1})

	encoder, err := NewWOEEncoder()
	require.NoError(t, err)
	require.ErrorIs(t, encoder.Fit(x, y), errs.ErrNonBinaryTarget)
}

// TestWOEUnseenCategory verifies unseen categories carry no evidence
func TestWOEUnseenCategory(t *testing.T) {
	x := newFrame(t, []string{"city"}, map[string][]string{
		"city": {"a", "b"},
	})
	y := frame.NewSeries("label", []float64{1, 0})

	encoder, err := NewWOEEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.Fit(x, y))

	unseen := newFrame(t, []string{"city"}, map[string][]string{"city": {"c"}})
	out, err := encoder.Transform(unseen)
	require.NoError(t, err)
	require.Zero(t, column(t, out, "city")[0])
}

// TestWOESingleClassCategory verifies regularization keeps log odds finite
// when a category has only one target class
func TestWOESingleClassCategory(t *testing.T) {
	x := newFrame(t, []string{"city"}, map[string][]string{
		"city": {"a", "a", "b"},
	})
	y := frame.NewSeries("label", []float64{1, 1, 0})

	encoder, err := NewWOEEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.Fit(x, y))

	out, err := encoder.Transform(x)
	require.NoError(t, err)
	for _, v := range column(t, out, "city") {
		require.False(t, math.IsInf(v, 0))
		require.False(t, math.IsNaN(v))
	}
}

// TestWOENotFitted verifies transform-before-fit fails
func TestWOENotFitted(t *testing.T) {
	encoder, err := NewWOEEncoder()
	require.NoError(t, err)

	x := newFrame(t, []string{"city"}, map[string][]string{"city": {"a"}})
	_, err = encoder.Transform(x)
	require.ErrorIs(t, err, errs.ErrNotFitted)
}
