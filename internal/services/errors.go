package services

import "errors"

var (
	ErrNotConnected        = errors.New("wallet is not connected")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInsufficientStake   = errors.New("amount exceeds staked balance")
	ErrNothingToClaim      = errors.New("no rewards to claim")
	ErrAlreadyClaimed      = errors.New("reward already claimed")
	ErrAlreadyPremium      = errors.New("subscription is already premium")
	ErrBonusLocked         = errors.New("not enough modules completed")
	ErrDuplicateCredential = errors.New("credential already minted")
	ErrUnknownItem         = errors.New("unknown marketplace item")
	ErrStaleQuote          = errors.New("quote no longer matches the catalog")
	ErrMissingDestination  = errors.New("destination address is required")
	ErrInvalidName         = errors.New("profile name is required")
	ErrInvalidTutors       = errors.New("invalid tutor selection")
	ErrUnknownVoice        = errors.New("unknown voice")
	ErrUnknownModule       = errors.New("unknown learning module")
	ErrEmptyMaterial       = errors.New("study material is empty")
	ErrUnsupportedMaterial = errors.New("unsupported material format")
	ErrNoActiveSession     = errors.New("no session in progress")
	ErrNoSummaryView       = errors.New("no finished session to reward")
	ErrUnknownSession      = errors.New("unknown session")
	ErrInvalidReminder     = errors.New("reminder needs a title and time")
)
