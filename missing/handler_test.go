package missing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
)

func newTestFrame(t *testing.T, columns map[string][]string, order []string) *frame.Frame {
	t.Helper()
	f := frame.New()
	for _, name := range order {
		require.NoError(t, f.AddColumn(name, columns[name]))
	}

	return f
}

// TestHandlerFitTransform verifies sentinel cells are replaced with the
// per-column mode
func TestHandlerFitTransform(t *testing.T) {
	h := New()
	x := newTestFrame(t, map[string][]string{
		"city": {"tokyo", "tokyo", "osaka", "NaN"},
	}, []string{"city"})

	prepared, err := h.FitTransform(x)
	require.NoError(t, err)

	values, _ := prepared.Column("city")
	require.Equal(t, []string{"tokyo", "tokyo", "osaka", "tokyo"}, values)
	require.True(t, h.Fitted)
	require.Equal(t, "tokyo", h.Fill["city"])

	// Input frame is untouched
	original, _ := x.Column("city")
	require.Equal(t, "NaN", original[3])
}

// TestHandlerModeTieBreak verifies the lexicographically smallest category
// wins count ties, keeping fits deterministic
func TestHandlerModeTieBreak(t *testing.T) {
	h := New()
	x := newTestFrame(t, map[string][]string{
		"tier": {"silver", "gold", "NaN"},
	}, []string{"tier"})

	_, err := h.FitTransform(x)
	require.NoError(t, err)
	require.Equal(t, "gold", h.Fill["tier"])
}

// TestHandlerCustomSentinel verifies a configured sentinel replaces the
// default one
func TestHandlerCustomSentinel(t *testing.T) {
	h := New(WithSentinel("?"))
	x := newTestFrame(t, map[string][]string{
		"city": {"osaka", "?", "osaka"},
	}, []string{"city"})

	prepared, err := h.FitTransform(x)
	require.NoError(t, err)

	values, _ := prepared.Column("city")
	require.Equal(t, []string{"osaka", "osaka", "osaka"}, values)

	// The default sentinel is now an ordinary category
	require.Equal(t, "?", h.Sentinel)
}

// TestHandlerAllMissingColumn verifies the fallback fill for columns with no
// observable category
func TestHandlerAllMissingColumn(t *testing.T) {
	h := New()
	x := newTestFrame(t, map[string][]string{
		"ghost": {"NaN", "NaN"},
	}, []string{"ghost"})

	prepared, err := h.FitTransform(x)
	require.NoError(t, err)

	values, _ := prepared.Column("ghost")
	require.Equal(t, []string{"unknown", "unknown"}, values)
}

// TestHandlerTransformBeforeFit verifies the not-fitted guard
func TestHandlerTransformBeforeFit(t *testing.T) {
	h := New()
	x := newTestFrame(t, map[string][]string{
		"city": {"tokyo"},
	}, []string{"city"})

	_, err := h.Transform(x)
	require.ErrorIs(t, err, errs.ErrNotFitted)
}

// TestHandlerTransformMissingColumn verifies fit-time columns must be present
func TestHandlerTransformMissingColumn(t *testing.T) {
	h := New()
	x := newTestFrame(t, map[string][]string{
		"city": {"tokyo", "NaN"},
	}, []string{"city"})
	_, err := h.FitTransform(x)
	require.NoError(t, err)

	other := newTestFrame(t, map[string][]string{
		"tier": {"gold", "silver"},
	}, []string{"tier"})
	_, err = h.Transform(other)
	require.ErrorIs(t, err, errs.ErrColumnMismatch)
}

// TestHandlerTransformUsesLearnedFill verifies transform applies fit-time
// fill values, not values recomputed from the new frame
func TestHandlerTransformUsesLearnedFill(t *testing.T) {
	h := New()
	fitFrame := newTestFrame(t, map[string][]string{
		"city": {"tokyo", "tokyo", "osaka"},
	}, []string{"city"})
	_, err := h.FitTransform(fitFrame)
	require.NoError(t, err)

	// osaka dominates the new frame, but the learned fill is tokyo
	newFrame := newTestFrame(t, map[string][]string{
		"city": {"osaka", "osaka", "NaN"},
	}, []string{"city"})
	prepared, err := h.Transform(newFrame)
	require.NoError(t, err)

	values, _ := prepared.Column("city")
	require.Equal(t, []string{"osaka", "osaka", "tokyo"}, values)
}
