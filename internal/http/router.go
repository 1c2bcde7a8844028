package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cobaltlane/taskhub/internal/service"
	"github.com/cobaltlane/taskhub/internal/store"
	"github.com/cobaltlane/taskhub/pkg/httpx"
	"github.com/cobaltlane/taskhub/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store       store.Store
	AuthService *service.AuthService
	TaskService *service.TaskService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerTasks()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /auth/register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/login - strict rate limit by IP (authentication attempts)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /me - authenticated, lenient rate limit by user
	meHandler := &MeHandler{AuthService: r.AuthService}
	r.Mux.Handle("GET /me",
		httpx.Chain(meHandler,
			httpx.AuthnMiddleware(r.AuthService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// PUT /me/password - strict rate limit by user (re-verifies the
	// current password, so it is a credential-guessing surface)
	passwordHandler := &ChangePasswordHandler{AuthService: r.AuthService}
	r.Mux.Handle("PUT /me/password",
		httpx.Chain(passwordHandler,
			httpx.AuthnMiddleware(r.AuthService),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	// All task routes require authentication; reads get the lenient
	// limit, writes the moderate one.
	secured := func(hf http.HandlerFunc, limit httpx.RateLimitConfig) http.Handler {
		return httpx.Chain(hf,
			httpx.AuthnMiddleware(r.AuthService),
			httpx.RateLimitByUser(limit),
		)
	}

	r.Mux.Handle("POST /tasks", secured(h.HandleCreate, httpx.ModerateLimit))
	r.Mux.Handle("GET /tasks", secured(h.HandleList, httpx.LenientLimit))
	r.Mux.Handle("GET /tasks/{id}", secured(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /tasks/{id}", secured(h.HandleUpdate, httpx.ModerateLimit))
	r.Mux.Handle("DELETE /tasks/{id}", secured(h.HandleDelete, httpx.ModerateLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems
	// may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
