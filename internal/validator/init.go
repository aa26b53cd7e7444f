package validator

import (
	"ctchen222/hotseat-tictactoe/internal/game"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// "mark" accepts the two player marks, as strings or game.PlayerMark.
	if err := validate.RegisterValidation("mark", isPlayerMark); err != nil {
		panic(err)
	}
}

// GetValidator returns the validator shared by every websocket message.
func GetValidator() *validator.Validate {
	return validate
}

func isPlayerMark(fl validator.FieldLevel) bool {
	return game.PlayerMark(fl.Field().String()).Valid()
}
