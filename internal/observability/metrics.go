// Package observability exposes application-level Prometheus metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SignupsTotal counts successful account registrations.
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chirp_signups_total",
		Help: "Total number of successful signups",
	})

	// LoginsTotal counts login attempts by outcome.
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_logins_total",
		Help: "Total number of login attempts by outcome",
	}, []string{"outcome"})

	// PostsCreatedTotal counts created posts.
	PostsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chirp_posts_created_total",
		Help: "Total number of posts created",
	})

	// LikeTogglesTotal counts like toggles by resulting state.
	LikeTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_like_toggles_total",
		Help: "Total number of like toggles by resulting state",
	}, []string{"state"})
)
