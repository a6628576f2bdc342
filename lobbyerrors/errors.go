package lobbyerrors

import "errors"

// Lobby sentinel errors. Used by both lobby and ws packages to avoid
// circular imports.
var (
	ErrInvalidName      = errors.New("invalid name")
	ErrNameTaken        = errors.New("name already taken in this game")
	ErrAlreadyJoined    = errors.New("already joined")
	ErrNotJoined        = errors.New("not in a game")
	ErrInvalidDirection = errors.New("invalid direction")
	ErrLobbyClosed      = errors.New("lobby closed")
)
