package gameday

import "errors"

// Repository sentinels. The app translates them into user-facing errors.
var (
	ErrGameDayNotFound   = errors.New("game day not found")
	ErrSettingsNotFound  = errors.New("league settings not found")
	ErrDuplicateGameDate = errors.New("game day already exists for date")
	ErrVersionConflict   = errors.New("match version changed")
	ErrStatusChanged     = errors.New("game day status changed")
)
