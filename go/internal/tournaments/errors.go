package tournaments

import "errors"

var (
	ErrTournamentNotFound = errors.New("tournament not found")
	ErrPlayerNotFound     = errors.New("tournament player not found")
	ErrSettingsNotFound   = errors.New("league settings not found")
	ErrStatusChanged      = errors.New("player status changed")
)
