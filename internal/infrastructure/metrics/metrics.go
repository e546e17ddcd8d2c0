package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "msgboard"

// Thumbnail sources.
const (
	SourceHotCache = "hot_cache"
	SourceStored   = "stored"
	SourceRendered = "rendered"
)

type Metrics struct {
	registry *prometheus.Registry

	ThumbsServed     *prometheus.CounterVec
	ThumbRaces       prometheus.Counter
	MessagesStored   prometheus.Counter
	MessagesRejected prometheus.Counter
	PrewarmRuns      *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ThumbsServed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "thumbs_served_total",
			Help:      "Thumbnails served, by where the bytes came from.",
		}, []string{"source"}),
		ThumbRaces: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "thumb_races_lost_total",
			Help:      "Rendered thumbnails discarded because another writer linked the size first.",
		}),
		MessagesStored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_stored_total",
			Help:      "Messages accepted and stored.",
		}),
		MessagesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_rejected_total",
			Help:      "Submissions rejected by validation.",
		}),
		PrewarmRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prewarm_runs_total",
			Help:      "Thumbnail prewarm jobs, by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ThumbsServed,
		m.ThumbRaces,
		m.MessagesStored,
		m.MessagesRejected,
		m.PrewarmRuns,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
