package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts command outcomes. A nil *Metrics records nothing.
type Metrics struct {
	encodings *prometheus.CounterVec
	launches  *prometheus.CounterVec
	exports   *prometheus.CounterVec
}

// NewMetrics registers the command counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		encodings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qrdesk_qrcode_encodings_total",
			Help: "QR code encodings by outcome.",
		}, []string{"outcome"}),
		launches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qrdesk_folder_launches_total",
			Help: "Attempts to open the downloads folder by outcome.",
		}, []string{"outcome"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "qrdesk_exports_total",
			Help: "QR code exports written to the downloads folder by outcome.",
		}, []string{"outcome"}),
	}
	for _, c := range []prometheus.Collector{m.encodings, m.launches, m.exports} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) encoded(outcome string) {
	if m != nil {
		m.encodings.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) launched(outcome string) {
	if m != nil {
		m.launches.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) exported(outcome string) {
	if m != nil {
		m.exports.WithLabelValues(outcome).Inc()
	}
}
