package app

import (
	"fmt"
	"net/http"
	"signup/internal/app/controllers"
	"signup/internal/app/deps"
	drl "signup/internal/core/domain/rate_limiter"
	"signup/internal/http/handlers/controller"
	ratelimit "signup/internal/http/handlers/rate_limit"
	requestid "signup/internal/http/handlers/request_id"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const SIGN_UP_RATE_LIMIT_KEY = "signup"

func NewRouter(deps *deps.Deps, c *controllers.Controllers) http.Handler {
	authRouter := chi.NewRouter()
	if deps.RateLimiter != nil {
		authRouter.Use(ratelimit.WithRateLimiting(
			deps.Logger,
			deps.RateLimiter,
			drl.Limit{Interval: drl.Minute, Value: deps.Config.SignUpRateLimit},
			SIGN_UP_RATE_LIMIT_KEY,
		))
	}
	authRouter.Method(
		http.MethodPost,
		"/signup",
		controller.New(deps.Logger, c.SignUp, deps.Config.MaxBodyBytes),
	)

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestid.REQUEST_ID_HEADER, "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	if deps.Config.TrustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(requestid.SetRequestIDToContext)
	router.Mount("/auth", authRouter)

	return router
}

func InitHttpServer(deps *deps.Deps, c *controllers.Controllers) *http.Server {
	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler:           NewRouter(deps, c),
		Addr:              address,
		ReadTimeout:       deps.Config.ReadTimeout,
		ReadHeaderTimeout: deps.Config.ReadTimeout,
		WriteTimeout:      deps.Config.WriteTimeout,
		IdleTimeout:       deps.Config.IdleTimeout,
	}
}
