package service

import (
	"github.com/tomo-auth/backend/internal/observability/metrics"
)

func incrementRegistrations(result string) {
	metrics.RegistrationsTotal.WithLabelValues(result).Inc()
}

func incrementLogins(result string) {
	metrics.LoginsTotal.WithLabelValues(result).Inc()
}

func incrementTokensIssued() {
	metrics.TokensIssued.Inc()
}
