package response

import (
	"ctchen222/hotseat-tictactoe/internal/game"
	"ctchen222/hotseat-tictactoe/internal/player"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "invalid position", err: fmt.Errorf("%w: (3,0)", game.ErrInvalidPosition), want: http.StatusBadRequest},
		{name: "unknown mark", err: player.ErrUnknownMark, want: http.StatusBadRequest},
		{name: "occupied", err: fmt.Errorf("%w: (1,1)", game.ErrOccupiedSquare), want: http.StatusConflict},
		{name: "after conclusion", err: game.ErrMoveAfterConclusion, want: http.StatusConflict},
		{name: "status error", err: fmt.Errorf("wrapped: %w", StatusError{Code: http.StatusTeapot, Message: "short and stout"}), want: http.StatusTeapot},
		{name: "anything else", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestFailResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FailResponse(c, fmt.Errorf("failed to record move: %w", game.ErrOccupiedSquare))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"success":false,"code":409,"extras":{"message":"failed to record move: square is already occupied"}}`, w.Body.String())
}

func TestSuccessResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessResponse(c, gin.H{"gameId": "g-1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"code":200,"extras":{"gameId":"g-1"}}`, w.Body.String())
}
