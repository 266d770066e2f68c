package metrics

import "github.com/prometheus/client_golang/prometheus"

// Location insight fetch outcomes.
const (
	InsightsFresh  = "fresh"
	InsightsCached = "cached"
	InsightsError  = "error"
)

// SiteMetrics exposes counters/histograms for the AI widgets and the booking wizard.
type SiteMetrics struct {
	consultTotal      *prometheus.CounterVec
	consultLatency    prometheus.Histogram
	insightsTotal     *prometheus.CounterVec
	bookingTransition *prometheus.CounterVec
}

func NewSiteMetrics(reg prometheus.Registerer) *SiteMetrics {
	m := &SiteMetrics{
		consultTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lounge",
			Subsystem: "advisor",
			Name:      "consultations_total",
			Help:      "Total AI consultation requests by outcome",
		}, []string{"outcome"}),
		consultLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lounge",
			Subsystem: "advisor",
			Name:      "consultation_latency_seconds",
			Help:      "Latency of generative model calls for consultations",
			Buckets:   prometheus.DefBuckets,
		}),
		insightsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lounge",
			Subsystem: "advisor",
			Name:      "location_insights_total",
			Help:      "Location insight fetches by outcome",
		}, []string{"outcome"}),
		bookingTransition: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lounge",
			Subsystem: "booking",
			Name:      "transitions_total",
			Help:      "Booking wizard transitions by event and resulting step",
		}, []string{"event", "step"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.consultTotal, m.consultLatency, m.insightsTotal, m.bookingTransition)
	return m
}

func (m *SiteMetrics) ObserveConsultation(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.consultTotal.WithLabelValues(outcome).Inc()
	if seconds > 0 {
		m.consultLatency.Observe(seconds)
	}
}

func (m *SiteMetrics) ObserveInsights(outcome string) {
	if m == nil {
		return
	}
	m.insightsTotal.WithLabelValues(outcome).Inc()
}

func (m *SiteMetrics) ObserveBookingTransition(event, step string) {
	if m == nil {
		return
	}
	m.bookingTransition.WithLabelValues(event, step).Inc()
}
