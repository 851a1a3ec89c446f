package appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/Allain-afk/GlamQueue-sub001/internal/httperr"
)

// ===============================
// Booking window
// ===============================

// Slots run every 30 minutes from 09:00 through 18:00, with the 18:00
// slot included. That is 19 candidate slots per day.
const (
	OpeningHour     = 9
	ClosingHour     = 18
	SlotStepMinutes = 30
)

type Slot struct {
	Hour      int    `json:"hour"`
	Minute    int    `json:"minute"`
	Label     string `json:"label"`
	Available bool   `json:"available"`
}

// BuildDaySchedule derives the full ordered slot list for one calendar day.
// A slot is unavailable when its start is at or before now, or when its
// hour:minute equals the hour:minute of any booked start time. Matching is
// exact to the minute; service durations and partial overlaps are not
// considered.
//
// day carries the calendar date and the salon's location; now and booked
// are expected in that same location.
func BuildDaySchedule(day time.Time, now time.Time, booked []time.Time) []Slot {
	type clock struct{ h, m int }

	taken := make(map[clock]bool, len(booked))
	for _, b := range booked {
		taken[clock{b.Hour(), b.Minute()}] = true
	}

	loc := day.Location()
	slots := make([]Slot, 0, 19)

	for h := OpeningHour; h <= ClosingHour; h++ {
		for m := 0; m < 60; m += SlotStepMinutes {
			if h == ClosingHour && m > 0 {
				break
			}

			start := time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc)
			available := start.After(now) && !taken[clock{h, m}]

			slots = append(slots, Slot{
				Hour:      h,
				Minute:    m,
				Label:     SlotLabel(h, m),
				Available: available,
			})
		}
	}

	return slots
}

// SlotLabel renders an internal 24-hour pair in 12-hour clock form,
// e.g. (14, 30) → "2:30 PM".
func SlotLabel(hour, minute int) string {
	suffix := "AM"
	h := hour
	if h >= 12 {
		suffix = "PM"
	}
	if h > 12 {
		h -= 12
	}
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, suffix)
}

// ParseClock reads a wall-clock time in the 12-hour display form
// ("2:30 PM") or the 24-hour form ("14:30").
func ParseClock(s string) (hour int, minute int, err error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse("3:04 PM", strings.ToUpper(s)); err == nil {
		return t.Hour(), t.Minute(), nil
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Hour(), t.Minute(), nil
	}

	return 0, 0, httperr.ErrBusiness("invalid_date_or_time")
}

// InWindow reports whether an hour:minute pair is one of the bookable
// slots: inside the opening window and on the 30-minute grid.
func InWindow(hour, minute int) error {
	if minute%SlotStepMinutes != 0 {
		return httperr.ErrBusiness("off_schedule")
	}
	if hour < OpeningHour || hour > ClosingHour {
		return httperr.ErrBusiness("outside_booking_hours")
	}
	if hour == ClosingHour && minute > 0 {
		return httperr.ErrBusiness("outside_booking_hours")
	}
	return nil
}
