package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/shpjp/quicker-api/repositories"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	UsersRegistered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "users_registered_total",
		Help: "Total users successfully registered",
	})

	TweetsPosted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweets_posted_total",
		Help: "Total tweets successfully posted",
	})

	TweetsDeleted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tweets_deleted_total",
		Help: "Total tweets deleted",
	})

	LikeActions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "like_actions_total",
		Help: "Total successful like and unlike actions",
	}, []string{"action"})

	FollowActions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "follow_actions_total",
		Help: "Total successful follow and unfollow actions",
	}, []string{"action"})

	OperationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "operation_failures_total",
		Help: "Total failed domain operations by operation and error kind",
	}, []string{"operation", "kind"})
)

func init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(UsersRegistered)
	prometheus.MustRegister(TweetsPosted)
	prometheus.MustRegister(TweetsDeleted)
	prometheus.MustRegister(LikeActions)
	prometheus.MustRegister(FollowActions)
	prometheus.MustRegister(OperationFailures)
}

// StatusRecorder is a ResponseWriter that remembers the status code written
// through it. Status defaults to 200 when the handler never calls WriteHeader.
type StatusRecorder struct {
	http.ResponseWriter
	Status int
}

// NewStatusRecorder wraps w.
func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{ResponseWriter: w, Status: http.StatusOK}
}

func (rw *StatusRecorder) WriteHeader(code int) {
	rw.Status = code
	rw.ResponseWriter.WriteHeader(code)
}

// InstrumentHandler records RequestDuration. Installed with router.Use so the
// matched route template (not the raw path) becomes the route label.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := NewStatusRecorder(w)
		next.ServeHTTP(rw, r)

		RequestDuration.
			WithLabelValues(r.Method, RouteTemplate(r), strconv.Itoa(rw.Status)).
			Observe(time.Since(start).Seconds())
	})
}

// RouteTemplate returns the mux path template matched for r, or "unmatched".
func RouteTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

// storeCollector reports collection sizes at scrape time.
type storeCollector struct {
	counts func() repositories.Counts
	desc   *prometheus.Desc
}

// NewStoreCollector returns a collector exposing the number of stored
// entities per kind as the gauge entities{kind=...}.
func NewStoreCollector(counts func() repositories.Counts) prometheus.Collector {
	return &storeCollector{
		counts: counts,
		desc:   prometheus.NewDesc("entities", "Number of entities currently stored", []string{"kind"}, nil),
	}
}

func (c *storeCollector) Describe(ch chan<- *prometheus.Desc) { ch <- c.desc }

func (c *storeCollector) Collect(ch chan<- prometheus.Metric) {
	n := c.counts()
	for kind, v := range map[string]int{
		"users":   n.Users,
		"tweets":  n.Tweets,
		"likes":   n.Likes,
		"follows": n.Follows,
	} {
		ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(v), kind)
	}
}
