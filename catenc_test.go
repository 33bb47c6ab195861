package catenc

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/catenc/errs"
	"github.com/arloliu/catenc/frame"
	"github.com/arloliu/catenc/pipeline"
	"github.com/arloliu/catenc/scheme"
)

func sampleData(t *testing.T) (*frame.Frame, frame.Series) {
	t.Helper()
	x := frame.New()
	require.NoError(t, x.AddColumn("city", []string{"tokyo", "osaka", "tokyo", "NaN"}))
	y := frame.NewSeries("churn", []float64{1, 0, 1, 0})

	return x, y
}

// TestNewManager verifies managers are created for registered schemes
func TestNewManager(t *testing.T) {
	mgr, err := NewManager("target")
	require.NoError(t, err)
	require.Equal(t, "target", mgr.Scheme())

	_, err = NewManager("bogus")
	require.ErrorIs(t, err, errs.ErrUnknownScheme)
}

// TestNewDefaultManager verifies the default scheme is onehot
func TestNewDefaultManager(t *testing.T) {
	mgr, err := NewDefaultManager()
	require.NoError(t, err)
	require.Equal(t, scheme.OneHot, mgr.Scheme())
}

// TestEndToEnd verifies the basic fit/transform/save/load workflow
func TestEndToEnd(t *testing.T) {
	x, y := sampleData(t)

	mgr, err := NewManager("woe")
	require.NoError(t, err)

	numeric, err := mgr.FitTransform(x, y)
	require.NoError(t, err)
	require.Equal(t, 4, numeric.NumRows())

	path := filepath.Join(t.TempDir(), "woe.cenc")
	require.NoError(t, mgr.Save(path))

	restored, err := Load(path)
	require.NoError(t, err)

	again, err := restored.Transform(x)
	require.NoError(t, err)
	require.Equal(t, numeric.ColumnNames(), again.ColumnNames())
}

// TestRegister verifies the top-level registration wrapper
func TestRegister(t *testing.T) {
	Register("noop_root", func(opts ...scheme.Option) (scheme.Strategy, error) {
		s, err := scheme.NewOneHotEncoder(opts...)
		return s, err
	})

	mgr, err := NewManager("noop_root", pipeline.WithSentinel("?"))
	require.NoError(t, err)
	require.Equal(t, "noop_root", mgr.Scheme())
}

// TestSchemeID verifies scheme IDs are deterministic and distinct
func TestSchemeID(t *testing.T) {
	require.Equal(t, SchemeID("target"), SchemeID("target"))
	require.NotEqual(t, SchemeID("target"), SchemeID("woe"))
}
