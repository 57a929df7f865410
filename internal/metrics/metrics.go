package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BetslipsPosted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "betbuddies_betslips_posted_total",
		Help: "Total number of betslips posted to plays channels.",
	})

	BetslipsGraded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "betbuddies_betslips_graded_total",
		Help: "Total number of betslips graded, by outcome.",
	}, []string{"outcome"})

	CommandsHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "betbuddies_commands_handled_total",
		Help: "Total number of slash commands handled, by command name.",
	}, []string{"command"})
)
