package main

import (
	"context"
	"ctchen222/hotseat-tictactoe/internal/api/controller"
	"ctchen222/hotseat-tictactoe/internal/config"
	"ctchen222/hotseat-tictactoe/internal/hub"
	"ctchen222/hotseat-tictactoe/internal/logger"
	"ctchen222/hotseat-tictactoe/internal/player"
	"ctchen222/hotseat-tictactoe/internal/room"
	"ctchen222/hotseat-tictactoe/internal/server"
	"ctchen222/hotseat-tictactoe/internal/telemetry"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to the yaml config file")
	flag.Parse()

	conf := config.MustLoad(*configPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, conf.Telemetry)
	if err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("error shutting down telemetry", "error", err)
		}
	}()

	logger.Init(conf.Log.Level)
	gin.SetMode(gin.ReleaseMode)

	// Create the room and the hub that fans its state out
	players := player.NewRegistry(conf.Players.X, conf.Players.O)
	r := room.NewRoom(players)
	h := hub.NewHub(r)
	r.SetListener(h)
	go h.Run(ctx)

	// Create the Gin-based server
	srv := server.NewServer(h, controller.NewGameController(r), conf.Telemetry.ServiceName, conf.WS)

	httpServer := &http.Server{
		Addr:    conf.HTTP.Addr,
		Handler: srv.Engine(),
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server started", "http.addr", conf.HTTP.Addr, "game.id", r.ID())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			slog.Error("http server failed", "error", err)
		}
		stop()
	}

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), conf.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
	<-h.Done()

	slog.Info("server exiting")
}
