package skill

// Quality score schemas. Two incompatible shapes exist in the wild: an
// older free-form digest and a newer six-dimension rubric. The Schema
// tag makes the variant explicit instead of guessing a canonical shape.
const (
	// SchemaLegacy marks scores whose metrics predate the rubric.
	SchemaLegacy = "legacy"

	// SchemaSixDimension marks scores using the six-dimension rubric.
	SchemaSixDimension = "six-dimension"
)

// SixDimensions are the metric keys of the newer rubric. A score is
// classified as six-dimension only when its metrics cover exactly this set.
var SixDimensions = []string{
	"clarity",
	"accuracy",
	"completeness",
	"practicality",
	"maintainability",
	"safety",
}

// QualityScore is an optional, authored quality assessment attached to a
// skill. The catalog carries it through without interpreting individual
// metrics; only the schema classification and the overall/mean soft
// invariant are computed here.
type QualityScore struct {
	// Overall is the aggregate score, 0-100.
	Overall int `json:"overall"`

	// Badge is the quality tier label (e.g. gold, silver, bronze).
	Badge string `json:"badge,omitempty"`

	// Metrics maps dimension names to 0-100 scores.
	Metrics map[string]int `json:"metrics,omitempty"`

	// Schema tags which variant this score uses: SchemaLegacy or
	// SchemaSixDimension.
	Schema string `json:"schema"`
}

// ClassifySchema returns the schema tag for a metrics map: six-dimension
// when the keys cover exactly the rubric set, legacy otherwise.
func ClassifySchema(metrics map[string]int) string {
	if len(metrics) != len(SixDimensions) {
		return SchemaLegacy
	}
	for _, dim := range SixDimensions {
		if _, ok := metrics[dim]; !ok {
			return SchemaLegacy
		}
	}
	return SchemaSixDimension
}

// MetricsMean returns the rounded mean of the metric values, or 0 when
// there are none.
func (q *QualityScore) MetricsMean() int {
	if len(q.Metrics) == 0 {
		return 0
	}
	sum := 0
	for _, v := range q.Metrics {
		sum += v
	}
	// Round half up.
	return (sum + len(q.Metrics)/2) / len(q.Metrics)
}

// ConsistentOverall reports whether Overall matches the mean of the
// metrics within a +-1 integer-rounding tolerance. Only meaningful for
// the six-dimension schema; legacy scores always report true.
func (q *QualityScore) ConsistentOverall() bool {
	if q.Schema != SchemaSixDimension {
		return true
	}
	mean := q.MetricsMean()
	diff := q.Overall - mean
	return diff >= -1 && diff <= 1
}
