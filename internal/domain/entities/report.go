package entities

// NodeLabels are the display names of the two compared nodes.
type NodeLabels struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

// Report is everything a renderer needs to produce one comparison report.
type Report struct {
	Labels  NodeLabels
	Rows    ComparisonResult
	Summary Summary
}

// NewReport builds a Report from an ordered comparison result.
func NewReport(labels NodeLabels, rows ComparisonResult) Report {
	return Report{
		Labels:  labels,
		Rows:    rows,
		Summary: rows.Summary(),
	}
}
