package logic

import (
	"github.com/prometheus/client_golang/prometheus"
	"time"
	"timeline_cache/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_metrics.go -package mocks timeline_cache/logic IMetrics

type IMetrics interface {
	StartWebRequestIn(label string) IRequestObserver
	StartApiRequestOut(label string) IRequestObserver
	AccountSynced(label string)
	PostSaved()
	PostsEvicted(count int)
	EntityRewriteFailed()
	ServiceStarted()
	TrackedAccountCount(count int)
	DbFileSize(size int64)
}

type IRequestObserver interface {
	Finish()
}

type metrics struct {
	cfg                 *shared.Config
	webRequestsIn       *prometheus.HistogramVec
	apiRequestsOut      *prometheus.HistogramVec
	accountsSynced      *prometheus.CounterVec
	postsSaved          prometheus.Counter
	postsEvicted        prometheus.Counter
	entityRewriteFailed prometheus.Counter
	serviceStarted      prometheus.Counter
	trackedAccountCount prometheus.Gauge
	dbFileSize          prometheus.Gauge
}

func NewMetrics(cfg *shared.Config) IMetrics {

	res := metrics{}
	res.cfg = cfg

	res.webRequestsIn = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "web_requests_in_duration",
		Help: "Duration in seconds of Web requests served.",
	}, []string{"label"})
	prometheus.Register(res.webRequestsIn)

	res.apiRequestsOut = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name: "api_requests_out_duration",
		Help: "Duration in seconds of remote timeline API requests made.",
	}, []string{"label"})
	prometheus.Register(res.apiRequestsOut)

	res.accountsSynced = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "accounts_synced",
		Help: "Number of account synchronizations, by outcome",
	}, []string{"label"})
	prometheus.Register(res.accountsSynced)

	res.postsSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_saved",
		Help: "Number of posts written to the store",
	})
	prometheus.Register(res.postsSaved)

	res.postsEvicted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "posts_evicted",
		Help: "Number of posts deleted by retention",
	})
	prometheus.Register(res.postsEvicted)

	res.entityRewriteFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "entity_rewrite_failed",
		Help: "Number of posts stored with unrewritten text because of bad entity offsets",
	})
	prometheus.Register(res.entityRewriteFailed)

	res.serviceStarted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "service_started",
		Help: "Service has started up",
	})
	prometheus.Register(res.serviceStarted)

	res.trackedAccountCount = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tracked_account_count",
		Help: "Number of accounts whose timelines are cached",
	})
	prometheus.Register(res.trackedAccountCount)

	res.dbFileSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "db_file_size",
		Help: "Size of the sqlite database file in bytes",
	})
	prometheus.Register(res.dbFileSize)

	return &res
}

type requestObserver struct {
	label string
	start time.Time
	hgvec *prometheus.HistogramVec
}

func (ro *requestObserver) Finish() {
	now := time.Now()
	elapsed := float64(now.UnixMilli()-ro.start.UnixMilli()) / 1000.0
	ro.hgvec.WithLabelValues(ro.label).Observe(elapsed)
}

func (m *metrics) StartWebRequestIn(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.webRequestsIn}
}

func (m *metrics) StartApiRequestOut(label string) IRequestObserver {
	return &requestObserver{label, time.Now(), m.apiRequestsOut}
}

func (m *metrics) AccountSynced(label string) {
	m.accountsSynced.WithLabelValues(label).Add(1)
}

func (m *metrics) PostSaved() {
	m.postsSaved.Add(1)
}

func (m *metrics) PostsEvicted(count int) {
	m.postsEvicted.Add(float64(count))
}

func (m *metrics) EntityRewriteFailed() {
	m.entityRewriteFailed.Add(1)
}

func (m *metrics) ServiceStarted() {
	m.serviceStarted.Add(1)
}

func (m *metrics) TrackedAccountCount(count int) {
	m.trackedAccountCount.Set(float64(count))
}

func (m *metrics) DbFileSize(size int64) {
	m.dbFileSize.Set(float64(size))
}
