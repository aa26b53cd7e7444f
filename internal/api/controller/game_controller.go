package controller

import (
	"context"
	"ctchen222/hotseat-tictactoe/internal/api/models"
	"ctchen222/hotseat-tictactoe/internal/api/response"
	"ctchen222/hotseat-tictactoe/internal/game"
	"ctchen222/hotseat-tictactoe/internal/room"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GameService is the room as seen by the HTTP API.
type GameService interface {
	State() room.State
	SubmitMove(ctx context.Context, row, col int) (room.State, error)
	RenamePlayer(ctx context.Context, mark game.PlayerMark, name string) (room.State, error)
	Restart(ctx context.Context) room.State
}

// GameController handles game-related HTTP requests.
type GameController struct {
	game GameService
}

// NewGameController creates a new GameController.
func NewGameController(g GameService) *GameController {
	return &GameController{
		game: g,
	}
}

// GetState returns the derived state of the current game.
func (gc *GameController) GetState(c *gin.Context) {
	response.SuccessResponse(c, models.NewGameResponse(gc.game.State()))
}

// SubmitMove places the active player's mark.
func (gc *GameController) SubmitMove(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	state, err := gc.game.SubmitMove(c.Request.Context(), *req.Row, *req.Col)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "move rejected", "move.row", *req.Row, "move.col", *req.Col, "error", err)
		response.FailResponse(c, err)
		return
	}

	response.SuccessResponse(c, models.NewGameResponse(state))
}

// RenamePlayer changes the display name bound to a mark.
func (gc *GameController) RenamePlayer(c *gin.Context) {
	var uri models.MarkURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	var req models.RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	state, err := gc.game.RenamePlayer(c.Request.Context(), game.PlayerMark(uri.Mark), *req.Name)
	if err != nil {
		slog.WarnContext(c.Request.Context(), "rename rejected", "player.mark", uri.Mark, "error", err)
		response.FailResponse(c, err)
		return
	}

	response.SuccessResponse(c, models.NewGameResponse(state))
}

// Restart clears the board and starts a new game with the same players.
func (gc *GameController) Restart(c *gin.Context) {
	response.SuccessResponse(c, models.NewGameResponse(gc.game.Restart(c.Request.Context())))
}
