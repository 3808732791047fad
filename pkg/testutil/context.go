package testutil

import (
	"net/http"
	"time"

	"legalflow/pkg/requestcontext"
)

// WithRequestTime pins the request-scoped clock, which is what the
// request-time middleware would do for a live request.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}
