package entities

type ChartPoint struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// ChartSeries is the distribution of one field. Divisor recovers the
// original scale of bucketed numeric values (bucket * divisor).
type ChartSeries struct {
	FieldName string       `json:"fieldName"`
	ChartData []ChartPoint `json:"chartdata"`
	Divisor   float64      `json:"divisor"`
}

// ValueCount is a group-by result keyed by the raw stored value.
type ValueCount struct {
	Label any   `json:"label" bson:"label"`
	Count int64 `json:"count" bson:"count"`
}

type DomainFields struct {
	Domain string   `json:"Domain"`
	Fields []string `json:"Fields"`
}
