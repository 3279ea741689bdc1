package model

// Row is one normalized report row. Dimension and metric names live in
// disjoint namespaces, so they get separate maps. Rows have no identity
// beyond their position in the result slice.
type Row struct {
	Dimensions map[string]string
	Metrics    map[string]Value
}

// Dimension returns the named dimension value, or "" when absent.
func (r Row) Dimension(name string) string {
	return r.Dimensions[name]
}

// Metric returns the named metric value; a missing metric reads as zero.
func (r Row) Metric(name string) Value {
	return r.Metrics[name]
}
