package model

// TimeSlot represents a single bookable (date, time) unit.  Slots are
// created in bulk by the availability generator, claimed when a booking
// is confirmed and released again when that booking is cancelled.  Slots
// are never deleted; only the availability flag changes over time.
//
// Fields:
//  ID        – store-assigned surrogate key; (Date, Time) is the natural key.
//  Date      – calendar date in "YYYY-MM-DD" form, no timezone.
//  Time      – time of day in zero-padded "HH:MM" form.
//  Available – whether the slot can still be claimed by a booking.
type TimeSlot struct {
    ID        uint64 `json:"id"`        // time_slots.id
    Date      string `json:"date"`      // time_slots.date
    Time      string `json:"time"`      // time_slots.time
    Available bool   `json:"available"` // time_slots.available
}
