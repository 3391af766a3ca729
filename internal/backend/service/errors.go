package service

import (
	"errors"

	"github.com/caffeinepub/task-queue/internal/backend/store"
)

var (
	ErrEmailAlreadyExists      = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrNoSession               = errors.New("no active session")
	ErrUnverified              = errors.New("account is not verified")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
	ErrInvalidProfile          = errors.New("invalid profile update")
	ErrInvalidInput            = errors.New("invalid input")
	ErrBuiltinCategory         = errors.New("built-in categories cannot be removed")
	ErrInvalidPeriod           = errors.New("invalid leaderboard period")
	ErrInvalidOrigin           = errors.New("invalid origin id")

	// ErrNotFound and ErrStorageFailure are the store errors, re-exported so
	// callers only need this package for errors.Is checks.
	ErrNotFound       = store.ErrNotFound
	ErrStorageFailure = store.ErrStorage
)
