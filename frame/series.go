package frame

// Series is a named numeric vector, row-aligned with a Frame. It carries the
// target/label values consumed by encoder strategies at fit time.
type Series struct {
	Name   string
	Values []float64
}

// NewSeries creates a named series over the given values.
// The values slice is retained, not copied.
func NewSeries(name string, values []float64) Series {
	return Series{Name: name, Values: values}
}

// Len returns the number of values in the series.
func (s Series) Len() int {
	return len(s.Values)
}
