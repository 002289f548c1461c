package engine

import "errors"

// Expected-failure sentinels. Callers branch on these with errors.Is; none
// of them indicate an internal fault.
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionNotActive    = errors.New("session is not active")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrTradeNotFound       = errors.New("trade not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("trade amount must be positive")
	ErrInvalidLeverage     = errors.New("leverage must be at least 1")
)
