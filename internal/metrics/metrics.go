package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Decode outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Recorder holds the decode collectors. Use New with a dedicated registry in
// tests; the service registers on prometheus.DefaultRegisterer.
type Recorder struct {
	// DecodeTotal counts decode requests by schema and outcome.
	DecodeTotal *prometheus.CounterVec
	// DecodeIssues tracks how many issues a rejected payload carried.
	DecodeIssues *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		DecodeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sbcatalog_decode_total",
				Help: "Number of payloads decoded against a catalog schema",
			},
			[]string{"schema", "outcome"},
		),
		DecodeIssues: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sbcatalog_decode_issues",
				Help:    "Number of issues reported for a rejected payload",
				Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
			},
			[]string{"schema"},
		),
	}
}

// RecordDecode records one decode call. issues is ignored unless the payload
// was rejected.
func (r *Recorder) RecordDecode(schema, outcome string, issues int) {
	r.DecodeTotal.WithLabelValues(schema, outcome).Inc()
	if outcome == OutcomeRejected {
		r.DecodeIssues.WithLabelValues(schema).Observe(float64(issues))
	}
}
