package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsTotal counts successful registrations by role.
	RegistrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "curalink_registrations_total",
		Help: "Number of successful user registrations.",
	}, []string{"role"})

	// LoginsTotal counts login attempts by outcome.
	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "curalink_logins_total",
		Help: "Number of login attempts.",
	}, []string{"outcome"})

	// AIFailuresTotal counts failed calls to the AI collaborator.
	AIFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "curalink_ai_failures_total",
		Help: "Number of failed AI service calls.",
	})
)
