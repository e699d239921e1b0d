package services

import (
	"errors"
	"time"

	"github.com/czdsgnr/roubenky/models"
)

// DayStatus classifies one calendar day for the booking calendar.
type DayStatus string

const (
	DayPast      DayStatus = "past"
	DayOccupied  DayStatus = "occupied"
	DayAvailable DayStatus = "available"
	DayCheckIn   DayStatus = "checkin"
	DayCheckOut  DayStatus = "checkout"
	DayInRange   DayStatus = "inrange"
)

var (
	ErrPastDay              = errors.New("day is in the past")
	ErrDayOccupied          = errors.New("day is already booked")
	ErrRangeCrossesOccupied = errors.New("stay would cross an already booked day")
)

// Selection holds the dates the guest has picked so far: none, a check-in,
// or a full check-in/check-out pair.
type Selection struct {
	CheckIn  *time.Time
	CheckOut *time.Time
}

// Midnight reduces a time to its calendar date, pinned to UTC. Calendar
// days parsed from "2006-01-02" strings are UTC instants, so "today" taken
// from a clock in any zone must land on the same footing before the two
// are compared.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsOccupied reports whether any non-cancelled reservation covers the day.
// The check-out day itself is free: the changeover day is bookable by the
// next guest.
func IsOccupied(day time.Time, reservations []models.Reservation) bool {
	d := Midnight(day)
	for _, r := range reservations {
		if r.Status == models.ReservationCancelled {
			continue
		}
		if !d.Before(Midnight(r.CheckIn)) && d.Before(Midnight(r.CheckOut)) {
			return true
		}
	}
	return false
}

// ClassifyDay assigns exactly one status to a day. Days before today are
// past no matter what; the current selection takes precedence over
// occupancy so the guest always sees what they picked.
func ClassifyDay(day time.Time, reservations []models.Reservation, sel Selection, today time.Time) DayStatus {
	d := Midnight(day)
	if d.Before(Midnight(today)) {
		return DayPast
	}
	if sel.CheckIn != nil && d.Equal(Midnight(*sel.CheckIn)) {
		return DayCheckIn
	}
	if sel.CheckOut != nil && d.Equal(Midnight(*sel.CheckOut)) {
		return DayCheckOut
	}
	if sel.CheckIn != nil && sel.CheckOut != nil &&
		d.After(Midnight(*sel.CheckIn)) && d.Before(Midnight(*sel.CheckOut)) {
		return DayInRange
	}
	if IsOccupied(d, reservations) {
		return DayOccupied
	}
	return DayAvailable
}

// Select applies a calendar click to the current selection and returns the
// new one. Invalid clicks return the selection unchanged with an error the
// caller may surface as a notice; the reservation list is never mutated.
func Select(sel Selection, day time.Time, reservations []models.Reservation, today time.Time) (Selection, error) {
	d := Midnight(day)
	if d.Before(Midnight(today)) {
		return sel, ErrPastDay
	}
	if IsOccupied(d, reservations) {
		return sel, ErrDayOccupied
	}

	// No check-in yet, or a finished pair: start over with this day.
	if sel.CheckIn == nil || sel.CheckOut != nil {
		return Selection{CheckIn: &d}, nil
	}

	in := Midnight(*sel.CheckIn)

	// Clicking on or before the check-in restarts the selection there.
	if !d.After(in) {
		return Selection{CheckIn: &d}, nil
	}

	// Every day strictly between check-in and the candidate check-out must
	// be free, otherwise the stay would span someone else's booking.
	for cur := in.AddDate(0, 0, 1); cur.Before(d); cur = cur.AddDate(0, 0, 1) {
		if IsOccupied(cur, reservations) {
			return sel, ErrRangeCrossesOccupied
		}
	}

	out := d
	return Selection{CheckIn: sel.CheckIn, CheckOut: &out}, nil
}

// DayClassification is one entry of a month calendar.
type DayClassification struct {
	Date   string    `json:"date"`
	Status DayStatus `json:"status"`
}

// MonthWindow classifies every day of the given month. It is derived fresh
// from the reservation snapshot and the current selection on every call and
// never persisted.
func MonthWindow(year int, month time.Month, reservations []models.Reservation, sel Selection, today time.Time) []DayClassification {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	window := make([]DayClassification, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		window = append(window, DayClassification{
			Date:   d.Format("2006-01-02"),
			Status: ClassifyDay(d, reservations, sel, today),
		})
	}
	return window
}

// OccupiedRange is a booked span as shown on the public calendar. Guest
// identity stays private; only the dates leave the server.
type OccupiedRange struct {
	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout"`
}

// OccupiedRanges extracts the date spans of all blocking reservations.
func OccupiedRanges(reservations []models.Reservation) []OccupiedRange {
	ranges := make([]OccupiedRange, 0, len(reservations))
	for _, r := range reservations {
		if r.Status == models.ReservationCancelled {
			continue
		}
		ranges = append(ranges, OccupiedRange{
			CheckIn:  Midnight(r.CheckIn).Format("2006-01-02"),
			CheckOut: Midnight(r.CheckOut).Format("2006-01-02"),
		})
	}
	return ranges
}
