package prometheus

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"viscosity-service/internal/core/domain"
	ports "viscosity-service/internal/core/ports/output"
)

const (
	metricCalculations = "viscosity_calculations_total"
	metricFailures     = "viscosity_calculation_failures_total"
	metricDuration     = "viscosity_calculation_duration_seconds"
)

// Recorder counts calculation outcomes on its own registry and renders them
// in the Prometheus text exposition format.
type Recorder struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	failures     *prometheus.CounterVec
	duration     prometheus.Summary
}

var _ ports.CalculationRecorder = (*Recorder)(nil)

// NewRecorder creates a recorder with an empty registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricCalculations,
			Help: "Viscosity results produced, by medium and formula.",
		}, []string{"medium", "formula"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: metricFailures,
			Help: "Rejected viscosity requests, by error kind and field.",
		}, []string{"kind", "field"}),
		duration: prometheus.NewSummary(prometheus.SummaryOpts{
			Name: metricDuration,
			Help: "Time spent evaluating viscosity requests.",
		}),
	}
	r.registry.MustRegister(r.calculations, r.failures, r.duration)
	return r
}

func (r *Recorder) RecordSuccess(medium domain.MediumID, formula domain.Formula, elapsed time.Duration) {
	r.calculations.WithLabelValues(string(medium), string(formula)).Inc()
	r.duration.Observe(elapsed.Seconds())
}

func (r *Recorder) RecordFailure(kind domain.ErrorKind, field string) {
	r.failures.WithLabelValues(string(kind), field).Inc()
}

// Gather snapshots the registry. Families are sorted by name, metrics by
// label values.
func (r *Recorder) Gather() ([]*dto.MetricFamily, error) {
	return r.registry.Gather()
}

// WriteText writes all families to w in the text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, textFormat)
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

var textFormat = expfmt.NewFormat(expfmt.TypeTextPlain)

// ContentType is the media type of the WriteText output.
func (r *Recorder) ContentType() string {
	return string(textFormat)
}
