package game

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalAction is returned for a turn action attempted out of order or outside the rules.
	ErrIllegalAction = errors.New("illegal action")
	// ErrInvalidRules is returned by New for an unplayable configuration.
	ErrInvalidRules = errors.New("invalid rules")
)

// IllegalActionError names the player, the attempted action and why it was refused.
// Cause, when set, is the lower-level error that triggered the refusal.
type IllegalActionError struct {
	Player string
	Action string
	Reason string
	Cause  error
}

func (e *IllegalActionError) Error() string {
	msg := fmt.Sprintf("%v: %s cannot %s: %s", ErrIllegalAction, e.Player, e.Action, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *IllegalActionError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrIllegalAction}
	}
	return []error{ErrIllegalAction, e.Cause}
}

func (g *Game) illegal(action, reason string, cause error) error {
	return &IllegalActionError{
		Player: g.active().Name,
		Action: action,
		Reason: reason,
		Cause:  cause,
	}
}
