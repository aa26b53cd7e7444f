package server

import (
	"ctchen222/hotseat-tictactoe/internal/api/controller"
	"ctchen222/hotseat-tictactoe/internal/api/response"
	"ctchen222/hotseat-tictactoe/internal/config"
	"ctchen222/hotseat-tictactoe/internal/hub"
	"ctchen222/hotseat-tictactoe/internal/hub/types"
	"ctchen222/hotseat-tictactoe/web"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

type Server struct {
	hub            *hub.Hub
	gameController *controller.GameController
	upgrader       websocket.Upgrader
	engine         *gin.Engine
}

func NewServer(h *hub.Hub, gc *controller.GameController, serviceName string, ws config.WS) *Server {
	s := &Server{
		hub:            h,
		gameController: gc,
		// A nil CheckOrigin only accepts pages served from this host.
		upgrader: websocket.Upgrader{
			ReadBufferSize:  ws.ReadBuffer,
			WriteBufferSize: ws.WriteBuffer,
		},
		engine: gin.New(),
	}

	s.engine.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	s.RegisterHandlers()

	return s
}

// Engine returns the http.Handler serving every route.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) RegisterHandlers() {
	s.engine.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
	})
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	s.engine.GET("/ws", s.handleWebSocket)

	api := s.engine.Group("/api", requireJSON())
	{
		api.GET("/game", s.gameController.GetState)
		api.POST("/game/moves", s.gameController.SubmitMove)
		api.POST("/game/restart", s.gameController.Restart)
		api.PUT("/players/:mark", s.gameController.RenamePlayer)
	}
}

// handleWebSocket upgrades the connection, registers the client with the hub
// and pumps its messages until it disconnects.
func (s *Server) handleWebSocket(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", c.Request.URL.String()),
		attribute.String("http.method", c.Request.Method),
	))
	defer span.End()

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.WarnContext(ctx, "failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}

	client := types.NewClient(uuid.New().String(), conn)
	span.SetAttributes(attribute.String("client.id", client.ID))

	if err := s.hub.Join(ctx, client); err != nil {
		slog.WarnContext(ctx, "hub refused client", "client.id", client.ID, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Hub refused client")
		client.Close()
		return
	}

	s.hub.ReadPump(ctx, client)
}

// requireJSON refuses commands that are not sent as JSON. Browsers cannot send
// application/json cross-site without a preflight, so other pages cannot play.
func requireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.ContentType() == binding.MIMEJSON {
			c.Next()
			return
		}
		response.AbortWithError(c, http.StatusUnsupportedMediaType, "commands must be sent as application/json")
	}
}
