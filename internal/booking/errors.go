package booking

import (
	"errors"
	"fmt"
)

// Reason says why a booking operation failed
type Reason string

const (
	InvalidWindow    Reason = "InvalidWindow"
	MemberNotFound   Reason = "MemberNotFound"
	TrainerNotFound  Reason = "TrainerNotFound"
	RoomNotFound     Reason = "RoomNotFound"
	SessionNotFound  Reason = "SessionNotFound"
	TrainerConflict  Reason = "TrainerConflict"
	RoomConflict     Reason = "RoomConflict"
	AlreadyCancelled Reason = "AlreadyCancelled"
	PersistenceError Reason = "PersistenceError"
)

// Kind groups reasons the way callers react to them
type Kind string

const (
	KindValidation  Kind = "validation"
	KindConflict    Kind = "conflict"
	KindPersistence Kind = "persistence"
)

// Kind returns the group a reason belongs to
func (r Reason) Kind() Kind {
	switch r {
	case InvalidWindow, MemberNotFound, TrainerNotFound, RoomNotFound, SessionNotFound:
		return KindValidation
	case TrainerConflict, RoomConflict, AlreadyCancelled:
		return KindConflict
	}
	return KindPersistence
}

var messages = map[Reason]string{
	InvalidWindow:    "end time must be after start time",
	MemberNotFound:   "member not found",
	TrainerNotFound:  "trainer not found",
	RoomNotFound:     "room not found",
	SessionNotFound:  "PT session not found",
	TrainerConflict:  "trainer already has a session during this time",
	RoomConflict:     "room is already booked during this time",
	AlreadyCancelled: "PT session is already cancelled",
	PersistenceError: "could not save booking",
}

// Error is the failure of a booking operation. ConflictID names the
// existing session for conflicts; Err holds the underlying cause, if any.
type Error struct {
	Reason     Reason
	ConflictID uint
	Err        error
}

func (e *Error) Error() string {
	msg := messages[e.Reason]
	if e.ConflictID != 0 {
		msg = fmt.Sprintf("%s (conflicts with session #%d)", msg, e.ConflictID)
	}
	if e.Reason == PersistenceError && e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ReasonOf extracts the reason from err. Errors that did not come from a
// booking operation count as PersistenceError; nil has no reason.
func ReasonOf(err error) Reason {
	if err == nil {
		return ""
	}
	var bErr *Error
	if errors.As(err, &bErr) {
		return bErr.Reason
	}
	return PersistenceError
}

func fail(reason Reason, err error) *Error {
	return &Error{Reason: reason, Err: err}
}

// asError keeps typed failures and turns anything else into PersistenceError
func asError(err error) *Error {
	var bErr *Error
	if errors.As(err, &bErr) {
		return bErr
	}
	return fail(PersistenceError, err)
}
