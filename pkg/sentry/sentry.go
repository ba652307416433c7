package sentry

import (
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

const FlushTime = 2 * time.Second

type Reporter struct {
	hub *sentrygo.Hub
}

// WithContext returns a reporter bound to the request hub set by the sentry
// echo middleware, or the global hub outside of a request.
func WithContext(c echo.Context) *Reporter {
	hub := sentryecho.GetHubFromContext(c)
	if hub == nil {
		hub = sentrygo.CurrentHub()
	}

	return &Reporter{hub: hub}
}

func (r *Reporter) Error(err error) {
	r.hub.CaptureException(err)
}

func (r *Reporter) Warning(err error) {
	r.hub.WithScope(func(scope *sentrygo.Scope) {
		scope.SetLevel(sentrygo.LevelWarning)
		r.hub.CaptureException(err)
	})
}
