package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Follows         prometheus.Counter
	Unfollows       prometheus.Counter
	Likes           prometheus.Counter
	Unlikes         prometheus.Counter
	PostsCreated    prometheus.Counter
	CommentsCreated prometheus.Counter
	Signups         prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "igclone_http_requests_total",
				Help: "Total number of HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "igclone_http_request_duration_seconds",
				Help:    "HTTP request latency by method and route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Follows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "igclone_follows_total",
			Help: "Total number of successful follow actions",
		}),
		Unfollows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "igclone_unfollows_total",
			Help: "Total number of successful unfollow actions",
		}),
		Likes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "igclone_likes_total",
			Help: "Total number of successful likes",
		}),
		Unlikes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "igclone_unlikes_total",
			Help: "Total number of successful unlikes",
		}),
		PostsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "igclone_posts_created_total",
			Help: "Total number of created posts",
		}),
		CommentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "igclone_comments_created_total",
			Help: "Total number of created comments",
		}),
		Signups: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "igclone_signups_total",
			Help: "Total number of registered users",
		}),
	}

	reg.MustRegister(
		m.Requests,
		m.RequestDuration,
		m.Follows,
		m.Unfollows,
		m.Likes,
		m.Unlikes,
		m.PostsCreated,
		m.CommentsCreated,
		m.Signups,
	)

	return m
}
