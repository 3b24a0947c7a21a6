// Package schedule holds the time-window arithmetic bookings are checked with.
package schedule

import (
	"errors"
	"time"

	"github.com/balkashynov/healthclub/internal/models"
)

// ErrInvalidWindow is returned when a window does not end after it starts
var ErrInvalidWindow = errors.New("end time must be after start time")

// Window is the half-open interval [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds a validated window
func NewWindow(start, end time.Time) (Window, error) {
	w := Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate rejects empty and inverted windows
func (w Window) Validate() error {
	if !w.End.After(w.Start) {
		return ErrInvalidWindow
	}
	return nil
}

// Overlaps reports whether two half-open windows share any instant.
// A window ending exactly when the other starts does not overlap it.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Duration is the length of the window
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Slot is an existing booking occupying a resource
type Slot struct {
	ID     uint
	Window Window
	Status models.SessionStatus
}

// Active reports whether the slot still blocks its window
func (s Slot) Active() bool {
	return s.Status.Active()
}

// Conflict describes the existing slot a candidate collides with
type Conflict struct {
	SlotID uint
	Window Window
}

// FindConflict scans existing for an active slot overlapping candidate and
// returns the first one found. Which conflict is reported when several exist
// is unspecified.
func FindConflict(candidate Window, existing []Slot) (Conflict, bool) {
	for _, s := range existing {
		if !s.Active() {
			continue
		}
		if candidate.Overlaps(s.Window) {
			return Conflict{SlotID: s.ID, Window: s.Window}, true
		}
	}
	return Conflict{}, false
}
