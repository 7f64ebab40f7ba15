package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Room errors
	ErrRoomNotFound  = errors.New("room not found")
	ErrNotRoomMember = errors.New("session is not a room member")

	// Profile errors
	ErrProfileNotFound = errors.New("profile not found")

	// Training config errors
	ErrTrainingConfigNotFound = errors.New("training config not found")
)
