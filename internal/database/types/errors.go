package types

import (
	"errors"
	"fmt"
)

// Error classes surfaced to callers. Specific errors wrap one of these so callers can
// match either the class or the exact cause with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrTargetNotFound    = fmt.Errorf("vote target %w", ErrNotFound)
	ErrQuestNotFound     = fmt.Errorf("quest %w", ErrNotFound)
	ErrCommunityNotFound = fmt.Errorf("community %w", ErrNotFound)
	ErrNotQuestOwner     = fmt.Errorf("%w: only the quest creator or an admin may modify it", ErrForbidden)
	ErrInvalidTarget     = fmt.Errorf("%w: invalid vote target type", ErrValidation)
	ErrInvalidVoteType   = fmt.Errorf("%w: invalid vote type", ErrValidation)
	ErrInvalidAction     = fmt.Errorf("%w: invalid action type", ErrValidation)
	ErrInvalidAmount     = fmt.Errorf("%w: score amount must not be negative", ErrValidation)
	ErrInvalidBadge      = fmt.Errorf("%w: invalid badge type", ErrValidation)
	ErrInvalidSort       = fmt.Errorf("%w: invalid ranking sort", ErrValidation)
)
