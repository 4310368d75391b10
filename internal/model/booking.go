package model

import "time"

// Booking status values.  A booking is created as StatusConfirmed and may
// transition to StatusCancelled or StatusCompleted through explicit admin
// actions.  StatusCompleted is never derived from the booking date.
const (
    StatusConfirmed = "confirmed"
    StatusCancelled = "cancelled"
    StatusCompleted = "completed"
)

// Booking is a client's claim on a time slot.  It is the single booking
// shape used across repositories, the store adapter and every handler;
// list renderers must not introduce ad hoc variants of it.
//
// Fields:
//  ID          – primary key identifier.
//  Reference   – opaque reference handed to the client for the
//                confirmation screen.
//  CreatedAt   – store-assigned creation timestamp.
//  Date        – calendar date of the appointment ("YYYY-MM-DD").
//  Time        – time of day of the appointment ("HH:MM").
//  ClientName  – client's full name.
//  ClientEmail – client's email address.
//  ClientPhone – client's phone number.
//  Notes       – optional free-text notes (nullable).
//  Status      – lifecycle status (confirmed, cancelled, completed).
type Booking struct {
    ID          uint64    `json:"id"`              // bookings.id
    Reference   string    `json:"reference"`       // bookings.reference
    CreatedAt   time.Time `json:"created_at"`      // bookings.created_at
    Date        string    `json:"date"`            // bookings.date
    Time        string    `json:"time"`            // bookings.time
    ClientName  string    `json:"client_name"`     // bookings.client_name
    ClientEmail string    `json:"client_email"`    // bookings.client_email
    ClientPhone string    `json:"client_phone"`    // bookings.client_phone
    Notes       *string   `json:"notes,omitempty"` // bookings.notes (nullable)
    Status      string    `json:"status"`          // bookings.status
}

// BookingDraft carries the client-supplied fields of a booking request
// from the workflow layer into the store adapter.  The status of the
// resulting booking is always forced to StatusConfirmed by the adapter;
// drafts cannot set it.
type BookingDraft struct {
    Date        string  // selected calendar date
    Time        string  // selected time slot
    ClientName  string  // client's full name
    ClientEmail string  // client's email address
    ClientPhone string  // client's phone number
    Notes       *string // optional notes
}
