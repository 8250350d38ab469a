package repository

import "errors"

// ErrInsufficientRemaining is returned by the conditional roll decrement when
// the requested amount exceeds what is left on the roll (or the roll has been
// completed and no longer accepts deductions).
var ErrInsufficientRemaining = errors.New("insufficient remaining length")
