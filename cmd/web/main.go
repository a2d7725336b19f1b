// Command web serves the landing page and the browser build.
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tomz197/skyraid/internal/config"
)

const (
	defaultHost   = "0.0.0.0"
	defaultPort   = "8080"
	defaultAssets = "web"
)

//go:embed index.html
var indexPage string

//go:embed play.html
var playPage string

func main() {
	logger := config.NewLogger(os.Stderr, "web")
	if err := config.Load(); err != nil {
		logger.Fatal("config", "err", err)
	}

	host := config.GetEnv(config.EnvWebHost, defaultHost)
	port := config.GetEnv(config.EnvWebPort, defaultPort)
	assets := config.GetEnv(config.EnvWebAssets, defaultAssets)
	sshHost := config.GetEnv(config.EnvSSHDisplayHost, "your-server.com")

	srv := &http.Server{
		Addr:              net.JoinHostPort(host, port),
		Handler:           newMux(sshHost, assets),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	logger.Info("starting web server", "url", "http://"+srv.Addr, "assets", assets)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "err", err)
	}
}

// newMux routes the landing page, the player page and the wasm assets.
func newMux(sshHost, assets string) *http.ServeMux {
	page := strings.ReplaceAll(indexPage, "{{.SSHHost}}", sshHost)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	mux.HandleFunc("GET /play", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, playPage)
	})
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(assets))))
	return mux
}
