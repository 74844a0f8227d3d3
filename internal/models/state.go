package models

import (
	"strings"
	"time"

	"github.com/itemshare/rental-service/internal/apperr"
)

// BookingState is the query-time filter over a booking list. It is
// never persisted; Status covers the stored lifecycle.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState is case-insensitive; an empty value means ALL.
func ParseBookingState(s string) (BookingState, error) {
	if s == "" {
		return StateAll, nil
	}
	switch state := BookingState(strings.ToUpper(s)); state {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return state, nil
	default:
		return "", apperr.Validation("Unknown state: %s", s)
	}
}

// Matches reports whether the booking falls into the given state at
// instant now. CURRENT is strict on both sides, so a booking touching
// now at either boundary is excluded.
func (b *Booking) Matches(state BookingState, now time.Time) bool {
	switch state {
	case StateCurrent:
		return b.Start.Before(now) && b.End.After(now)
	case StatePast:
		return b.End.Before(now)
	case StateFuture:
		return b.Start.After(now)
	case StateWaiting:
		return b.Status == StatusWaiting
	case StateRejected:
		return b.Status == StatusRejected
	default:
		return true
	}
}

// FilterByState keeps the bookings matching state, preserving the input
// order (callers fetch ordered by start descending and the classifier
// never re-sorts).
func FilterByState(bookings []Booking, state BookingState, now time.Time) []Booking {
	if state == StateAll {
		return bookings
	}
	filtered := make([]Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Matches(state, now) {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
