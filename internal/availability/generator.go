// Package availability produces the fixed-interval grids of candidate
// time slots that bulk generation writes to the store and that the
// booking flow filters for display.  All functions are pure; the caller
// supplies the clock.
package availability

import (
    "fmt"
    "time"

    "github.com/evakp/appointment-booking/internal/model"
)

// Default working-hour window applied when bulk-generating availability.
const (
    DefaultStartHour       = 9  // first slot starts at 09:00
    DefaultEndHour         = 17 // last slot starts before 17:00
    DefaultIntervalMinutes = 30 // slot grid step
    WindowDays             = 30 // rolling bulk-generation window
)

// DateLayout is the calendar date form used across the application.
const DateLayout = "2006-01-02"

// TimesGrid returns the ordered sequence of "HH:MM" strings from
// startHour (inclusive) to endHour (exclusive), stepping by
// intervalMinutes.  With the defaults (9, 17, 30) it yields 16 entries
// from "09:00" to "16:30".  A non-positive interval or an empty window
// yields an empty sequence.
func TimesGrid(startHour, endHour, intervalMinutes int) []string {
    if intervalMinutes <= 0 || endHour <= startHour {
        return []string{}
    }
    times := make([]string, 0, (endHour-startHour)*60/intervalMinutes)
    for hour := startHour; hour < endHour; hour++ {
        for minute := 0; minute < 60; minute += intervalMinutes {
            times = append(times, fmt.Sprintf("%02d:%02d", hour, minute))
        }
    }
    return times
}

// SlotsForDate emits one TimeSlot per grid entry for the given date,
// each defaulted to available.  The store-assigned id is left zero; it
// is populated when the slot is written.
func SlotsForDate(date string, startHour, endHour, intervalMinutes int) []model.TimeSlot {
    times := TimesGrid(startHour, endHour, intervalMinutes)
    slots := make([]model.TimeSlot, 0, len(times))
    for _, t := range times {
        slots = append(slots, model.TimeSlot{Date: date, Time: t, Available: true})
    }
    return slots
}

// ExcludePast drops every slot on the current date whose time of day is
// less than or equal to now's time of day.  Slots on other dates pass
// through unchanged.  Zero-padded "HH:MM" strings order lexically, so a
// plain string comparison is sufficient.
func ExcludePast(slots []model.TimeSlot, now time.Time) []model.TimeSlot {
    today := now.Format(DateLayout)
    cutoff := now.Format("15:04")
    out := make([]model.TimeSlot, 0, len(slots))
    for _, s := range slots {
        if s.Date == today && s.Time <= cutoff {
            continue
        }
        out = append(out, s)
    }
    return out
}

// Window returns the dates of the next `days` calendar days starting at
// from's date, formatted as "YYYY-MM-DD".
func Window(from time.Time, days int) []string {
    dates := make([]string, 0, days)
    for i := 0; i < days; i++ {
        dates = append(dates, from.AddDate(0, 0, i).Format(DateLayout))
    }
    return dates
}
