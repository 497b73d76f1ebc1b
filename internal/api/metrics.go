package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK              = "ok"
	outcomeBadRequest      = "bad_request"
	outcomeUnrepresentable = "unrepresentable"
)

var conversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "numerals_conversions_total",
	Help: "Number of conversion requests by numeral system and outcome",
}, []string{"system", "outcome"})
