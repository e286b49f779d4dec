package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"signup/internal/app"
	"signup/internal/app/controllers"
	"signup/internal/app/deps"
	"syscall"

	dl "signup/internal/core/domain/logging"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	controllers := controllers.InitControllers(deps)

	httpServer := app.InitHttpServer(deps, controllers)
	go start(httpServer, deps)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	shutdown(context.Background(), httpServer, deps, shutdownDeps)
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
		dl.Entry("emailValidator", deps.Config.EmailValidator),
		dl.Entry("isRateLimitEnabled", deps.Config.IsRateLimitEnabled()),
		dl.Entry("trustProxyHeaders", deps.Config.TrustProxyHeaders),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutDownDeps func()) {
	ctx, cancel := context.WithTimeout(ctx, deps.Config.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		panic(err)
	}

	shutDownDeps()
	deps.Logger.Info(ctx, "HTTP server has shut down.")
}
