package controller

import "errors"

var (
	ErrParseRequest = errors.New("failed to parse request")
	ErrEmptyMessage = errors.New("message must not be empty")

	ErrUserRegister  = errors.New("failed to register user")
	ErrGenerateToken = errors.New("failed to generate token")
	ErrUserLogin     = errors.New("failed to login")
	ErrAccessCode    = errors.New("invalid access code")

	ErrRecordTurn = errors.New("failed to save chat turn")

	ErrGetSessions        = errors.New("failed to get sessions")
	ErrGetSessionMessages = errors.New("failed to get session messages")
	ErrSessionIntegrity   = errors.New("message log references a session with no summary")

	ErrGetDashboardStats = errors.New("failed to get dashboard stats")
	ErrUpgradeConnection = errors.New("failed to upgrade connection")

	ErrInvalidRiskFilter = errors.New("invalid risk filter")
)
