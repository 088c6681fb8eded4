package draft

import "fmt"

// Kind classifies why a draft operation was rejected
type Kind string

const (
	// KindInvalidTransition means the operation is not valid in the lobby's current state
	KindInvalidTransition Kind = "invalid_transition"

	// KindSlotConflict means the player is already placed, the slot is taken or it is not that team's turn
	KindSlotConflict Kind = "slot_conflict"

	// KindDegenerateInput means the pool is too small to seed two distinct captains
	KindDegenerateInput Kind = "degenerate_input"

	// KindAlreadyFinished means a mutation was attempted on a finished lobby
	KindAlreadyFinished Kind = "already_finished"

	// KindInvalidInput means an argument does not refer to anything in the lobby
	KindInvalidInput Kind = "invalid_input"
)

// Error is a rejected draft operation. Two errors match under errors.Is when
// their kinds are equal.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports whether target is a draft error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

var (
	ErrInvalidTransition = &Error{Kind: KindInvalidTransition}
	ErrSlotConflict      = &Error{Kind: KindSlotConflict}
	ErrDegenerateInput   = &Error{Kind: KindDegenerateInput}
	ErrAlreadyFinished   = &Error{Kind: KindAlreadyFinished}
	ErrInvalidInput      = &Error{Kind: KindInvalidInput}
)

// Errorf builds a draft error of the given kind
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind of a draft error, or "" when err is not one
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
