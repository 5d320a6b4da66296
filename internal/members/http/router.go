// Package http wires the service layer to its JSON API surface.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tabwave/memberpay/internal/members/service"
	"github.com/tabwave/memberpay/internal/members/session"
	"github.com/tabwave/memberpay/internal/members/store"
	"github.com/tabwave/memberpay/pkg/httpx"
	"github.com/tabwave/memberpay/pkg/slogx"

	_ "github.com/tabwave/memberpay/api/members" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	Sessions *session.Manager

	RegisterService *service.RegisterService
	AuthService     *service.AuthService
}

func NewRouter(
	buildVersion string,
	st store.Store,
	sessions *session.Manager,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		Sessions:     sessions,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
//
//	@title			MemberPay Registration Service API
//	@version		0.1.0
//	@description	Member registration with atomic billing enrollment. New accounts are only created once the payment processor has accepted the card token, and duplicate emails are rejected at the storage layer.
//
//	@contact.name	TabWave Team
//	@contact.url	https://github.com/tabwave/memberpay
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	registerHandler := &RegisterHandler{
		RegisterService: r.RegisterService,
		Sessions:        r.Sessions,
	}
	signinHandler := &SignInHandler{
		AuthService: r.AuthService,
		Sessions:    r.Sessions,
	}
	signoutHandler := &SignOutHandler{
		AuthService: r.AuthService,
		Sessions:    r.Sessions,
	}
	meHandler := &MeHandler{
		AuthService: r.AuthService,
		Sessions:    r.Sessions,
	}

	// Public signup and sign-in get strict per-IP limits (abuse prevention).
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/signin",
		httpx.Chain(signinHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /v1/signout",
		httpx.Chain(signoutHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/me",
		httpx.Chain(meHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
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
