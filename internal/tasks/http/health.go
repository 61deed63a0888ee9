package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
)

// Pinger is a dependency the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a plain function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning status, uptime and version. Always 200 while the process is serving.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	tasksdk.Response[tasksdk.HealthResponse]	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteEnvelope(w, http.StatusOK, tasksdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe checking the database and the image file store.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	tasksdk.Response[tasksdk.HealthResponse]	"status, uptime, version, checks"
//	@Failure		503	{object}	tasksdk.Response[tasksdk.HealthResponse]	"service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, db, files Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &tasksdk.HealthChecks{
			Database:  "ok",
			FileStore: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := db.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if err := files.Ping(r.Context()); err != nil {
			checks.FileStore = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		var messages []string
		if statusCode != http.StatusOK {
			messages = append(messages, "Service not ready")
		}

		httpx.WriteEnvelope(w, statusCode, tasksdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}, messages...)
	}
}
