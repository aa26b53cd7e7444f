package controller

import (
	"bytes"
	"ctchen222/hotseat-tictactoe/internal/api/models"
	"ctchen222/hotseat-tictactoe/internal/game"
	"ctchen222/hotseat-tictactoe/internal/player"
	"ctchen222/hotseat-tictactoe/internal/room"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Extras  json.RawMessage `json:"extras"`
}

func newRouter(r *room.Room) *gin.Engine {
	gin.SetMode(gin.TestMode)

	gc := NewGameController(r)
	router := gin.New()
	router.GET("/api/game", gc.GetState)
	router.POST("/api/game/moves", gc.SubmitMove)
	router.PUT("/api/players/:mark", gc.RenamePlayer)
	router.POST("/api/game/restart", gc.Restart)
	return router
}

func do(t *testing.T, router http.Handler, method, path, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	assert.Equal(t, w.Code, env.Code)
	return w.Code, env
}

func decodeGame(t *testing.T, env envelope) models.GameResponse {
	t.Helper()

	var g models.GameResponse
	require.NoError(t, json.Unmarshal(env.Extras, &g))
	return g
}

func TestGameController_GetState(t *testing.T) {
	router := newRouter(room.NewRoom(player.DefaultRegistry()))

	code, env := do(t, router, http.MethodGet, "/api/game", "")

	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)
	g := decodeGame(t, env)
	assert.Equal(t, game.PlayerX, g.Next)
	assert.Equal(t, game.StatusInProgress, g.Status)
	assert.Equal(t, 0, g.Turns.Len())
	assert.Empty(t, g.Log)
	assert.Equal(t, []player.Player{
		{Mark: game.PlayerX, Name: "Player 1"},
		{Mark: game.PlayerO, Name: "Player 2"},
	}, g.Players)
}

func TestGameController_SubmitMove(t *testing.T) {
	t.Run("Accepted move returns the new state", func(t *testing.T) {
		router := newRouter(room.NewRoom(player.DefaultRegistry()))

		code, env := do(t, router, http.MethodPost, "/api/game/moves", `{"row":0,"col":0}`)

		require.Equal(t, http.StatusOK, code)
		g := decodeGame(t, env)
		assert.Equal(t, game.PlayerX, g.Board[0][0])
		assert.Equal(t, game.PlayerO, g.Next)
		assert.Equal(t, []string{"X selected 0,0"}, g.Log)
	})

	t.Run("Errors map to status codes", func(t *testing.T) {
		tests := []struct {
			name     string
			setup    []string
			body     string
			wantCode int
		}{
			{name: "missing col", body: `{"row":1}`, wantCode: http.StatusBadRequest},
			{name: "malformed body", body: `{"row":`, wantCode: http.StatusBadRequest},
			{name: "off the board", body: `{"row":3,"col":0}`, wantCode: http.StatusBadRequest},
			{name: "negative", body: `{"row":0,"col":-1}`, wantCode: http.StatusBadRequest},
			{name: "occupied", setup: []string{`{"row":1,"col":1}`}, body: `{"row":1,"col":1}`, wantCode: http.StatusConflict},
			{
				name: "after a win",
				setup: []string{
					`{"row":0,"col":0}`, `{"row":1,"col":1}`, `{"row":0,"col":1}`,
					`{"row":1,"col":0}`, `{"row":0,"col":2}`,
				},
				body:     `{"row":2,"col":2}`,
				wantCode: http.StatusConflict,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r := room.NewRoom(player.DefaultRegistry())
				router := newRouter(r)
				for _, body := range tt.setup {
					code, _ := do(t, router, http.MethodPost, "/api/game/moves", body)
					require.Equal(t, http.StatusOK, code)
				}

				code, env := do(t, router, http.MethodPost, "/api/game/moves", tt.body)

				assert.Equal(t, tt.wantCode, code)
				assert.False(t, env.Success)
				assert.Equal(t, len(tt.setup), r.TurnLog().Len())
			})
		}
	})
}

func TestGameController_RenamePlayer(t *testing.T) {
	t.Run("Renames and relabels the winner", func(t *testing.T) {
		r := room.NewRoom(player.DefaultRegistry())
		router := newRouter(r)
		for _, body := range []string{`{"row":0,"col":0}`, `{"row":1,"col":1}`, `{"row":0,"col":1}`, `{"row":1,"col":0}`, `{"row":0,"col":2}`} {
			do(t, router, http.MethodPost, "/api/game/moves", body)
		}

		code, env := do(t, router, http.MethodPut, "/api/players/X", `{"name":"Ada"}`)

		require.Equal(t, http.StatusOK, code)
		g := decodeGame(t, env)
		assert.Equal(t, "Ada", g.Outcome.WinnerName)
		assert.Equal(t, "Ada won!", g.Message)
		assert.Equal(t, game.StatusWon, g.Status)
	})

	t.Run("Empty name is allowed", func(t *testing.T) {
		r := room.NewRoom(player.DefaultRegistry())

		code, _ := do(t, newRouter(r), http.MethodPut, "/api/players/O", `{"name":""}`)

		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "", r.PlayerName(game.PlayerO))
	})

	t.Run("Bad requests", func(t *testing.T) {
		tests := []struct {
			name string
			path string
			body string
		}{
			{name: "unknown mark", path: "/api/players/Z", body: `{"name":"Zed"}`},
			{name: "missing name", path: "/api/players/X", body: `{}`},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r := room.NewRoom(player.DefaultRegistry())

				code, env := do(t, newRouter(r), http.MethodPut, tt.path, tt.body)

				assert.Equal(t, http.StatusBadRequest, code)
				assert.False(t, env.Success)
				assert.Equal(t, "Player 1", r.PlayerName(game.PlayerX))
			})
		}
	})
}

func TestGameController_Restart(t *testing.T) {
	r := room.NewRoom(player.DefaultRegistry())
	router := newRouter(r)
	do(t, router, http.MethodPost, "/api/game/moves", `{"row":2,"col":2}`)
	oldID := r.ID()

	code, env := do(t, router, http.MethodPost, "/api/game/restart", "")

	require.Equal(t, http.StatusOK, code)
	g := decodeGame(t, env)
	assert.NotEqual(t, oldID, g.GameID)
	assert.Equal(t, game.Board{}, g.Board)
	assert.Equal(t, game.PlayerX, g.Next)
}
