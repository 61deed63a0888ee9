package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/tasks/internal/tasks/filestore"
	"github.com/aussiebroadwan/tasks/internal/tasks/service"
	"github.com/aussiebroadwan/tasks/internal/tasks/store"
	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/slogx"

	_ "github.com/aussiebroadwan/tasks/api/tasks" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store
	files *filestore.Disk

	UserService    *service.UserService
	SessionService *service.SessionService
	TaskService    *service.TaskService
	ImageService   *service.ImageService
	Gate           *service.AuthGate

	// MaxUploadBytes is the largest accepted image file.
	MaxUploadBytes int64
}

func NewRouter(buildVersion string, st store.Store, files *filestore.Disk, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		files:        files,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerSessions()
	r.registerTasks()
	r.registerImages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpx.Chain(httpSwagger.Handler(),
		httpx.RateLimitByIP(httpx.PublicLimit),
	))
	r.Mux.HandleFunc("/", notFound)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Tasks API
//	@version		0.1.0
//	@description	Multi-user task list API. Users register, log in to get a session with an access and
//	@description	a refresh token, and manage their own tasks and the images attached to them.
//	@description
//	@description				Every JSON response is wrapped in {"statusCode", "success", "messages", "data"}.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/tasks
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// protected wraps h with token authentication and a per-user rate limit.
func (r *Router) protected(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.Gate, writeAuthError),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
}

// fallback answers any other method on a known path with a 405.
func (r *Router) fallback(paths ...string) {
	for _, p := range paths {
		r.Mux.HandleFunc(p, methodNotAllowed)
	}
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// POST /users - strict rate limit by IP (account creation)
	r.Mux.Handle("POST /v1/users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.HandleFunc("OPTIONS /v1/users", h.HandleOptions)

	r.fallback("/v1/users")
}

func (r *Router) registerSessions() {
	h := &SessionsHandler{SessionService: r.SessionService}

	// POST /sessions - strict rate limit by IP + username (brute force prevention)
	r.Mux.Handle("POST /v1/sessions",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)

	// Refresh and logout check the token pair themselves so an expired
	// access token can still be refreshed.
	r.Mux.Handle("PATCH /v1/sessions/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleRefresh),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/sessions/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.fallback("/v1/sessions", "/v1/sessions/{id}")
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	r.Mux.Handle("GET /v1/tasks", r.protected(h.HandleList))
	r.Mux.Handle("POST /v1/tasks", r.protected(h.HandleCreate))
	r.Mux.Handle("GET /v1/tasks/{task_id}", r.protected(h.HandleGet))
	r.Mux.Handle("PATCH /v1/tasks/{task_id}", r.protected(h.HandleUpdate))
	r.Mux.Handle("DELETE /v1/tasks/{task_id}", r.protected(h.HandleDelete))

	r.fallback("/v1/tasks", "/v1/tasks/{task_id}")
}

func (r *Router) registerImages() {
	h := &ImagesHandler{
		TaskService:  r.TaskService,
		ImageService: r.ImageService,
		MaxBytes:     r.MaxUploadBytes,
	}

	r.Mux.Handle("POST /v1/tasks/{task_id}/images", r.protected(h.HandleUpload))
	r.Mux.Handle("GET /v1/tasks/{task_id}/images/{image_id}", r.protected(h.HandleDownload))
	r.Mux.Handle("DELETE /v1/tasks/{task_id}/images/{image_id}", r.protected(h.HandleDelete))
	r.Mux.Handle("GET /v1/tasks/{task_id}/images/{image_id}/attributes", r.protected(h.HandleGetAttributes))
	r.Mux.Handle("PATCH /v1/tasks/{task_id}/images/{image_id}/attributes", r.protected(h.HandleUpdateAttributes))

	r.fallback(
		"/v1/tasks/{task_id}/images",
		"/v1/tasks/{task_id}/images/{image_id}",
		"/v1/tasks/{task_id}/images/{image_id}/attributes",
	)
}

func (r *Router) registerSystem() {
	files := PingFunc(func(context.Context) error { return r.files.Ping() })

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, files),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
