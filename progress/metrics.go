package progress

import (
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsReporter exports stage progress as Prometheus metrics:
//
//	syncdist_stage_progress_ratio{stage}   done/total of the current run, 0..1
//	syncdist_stage_done_units{stage}       done units of the current run
//	syncdist_stage_completions_total{stage} runs that reached done == total
type MetricsReporter struct {
	ratio       *prometheus.GaugeVec
	units       *prometheus.GaugeVec
	completions *prometheus.CounterVec
}

// NewMetricsReporter creates the collectors and registers them on reg.
// A nil reg leaves them unregistered (useful when wrapping with another registry).
func NewMetricsReporter(reg prometheus.Registerer) (*MetricsReporter, error) {
	m := &MetricsReporter{
		ratio: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "syncdist",
			Name:      "stage_progress_ratio",
			Help:      "Fraction of work units completed in the current run of a stage.",
		}, []string{"stage"}),
		units: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "syncdist",
			Name:      "stage_done_units",
			Help:      "Work units completed in the current run of a stage.",
		}, []string{"stage"}),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "syncdist",
			Name:      "stage_completions_total",
			Help:      "Number of stage runs that reached completion.",
		}, []string{"stage"}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.ratio, m.units, m.completions} {
			if err := reg.Register(c); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Report implements Reporter.
func (m *MetricsReporter) Report(stage Stage, done, total int) {
	s := string(stage)
	ratio := 1.0
	if total > 0 {
		ratio = float64(done) / float64(total)
	}
	m.ratio.WithLabelValues(s).Set(ratio)
	m.units.WithLabelValues(s).Set(float64(done))
	if done >= total {
		m.completions.WithLabelValues(s).Inc()
	}
}

// Ratio exposes the progress ratio gauge.
func (m *MetricsReporter) Ratio() *prometheus.GaugeVec { return m.ratio }

// Units exposes the done-units gauge.
func (m *MetricsReporter) Units() *prometheus.GaugeVec { return m.units }

// Completions exposes the completions counter.
func (m *MetricsReporter) Completions() *prometheus.CounterVec { return m.completions }
