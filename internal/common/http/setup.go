package http

import (
	"net/http"

	"github.com/tomo-auth/backend/internal/common/constants"
	"github.com/tomo-auth/backend/internal/common/httpmetrics"
	"github.com/tomo-auth/backend/internal/common/logger"
)

// BuildBaseHandler wraps a handler with the shared middleware chain:
// security headers, panic recovery, trace IDs, request size cap, metrics.
func BuildBaseHandler(appName string, log *logger.Logger, handler http.Handler) http.Handler {
	collector := httpmetrics.New(appName)
	recovery := RecoveryMiddleware(log)
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)

	return SecurityHeadersMiddleware(
		recovery(
			TraceIDMiddleware(
				maxRequestSize(
					collector.Wrap(handler),
				),
			),
		),
	)
}
