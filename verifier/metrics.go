package verifier

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	witnessesVerifiedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "exit_verifier_witnesses_verified_total",
		Help: "Count of validator witnesses that passed proof verification.",
	})
	verificationFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "exit_verifier_failures_total",
		Help: "Count of verification calls aborted with an error.",
	})
	reportsEmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "exit_verifier_reports_emitted_total",
		Help: "Count of exit delay reports emitted to the caller.",
	})
)
