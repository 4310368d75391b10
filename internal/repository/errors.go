// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as the
// store adapter to distinguish between different failure scenarios. For
// example, ErrSlotUnavailable signals that a compare-and-swap claim on a
// time slot found it already taken, which the booking workflow reports
// to the client as "slot no longer available" rather than as a generic
// store failure.
package repository

import "errors"

// ErrSlotUnavailable is returned when claiming a time slot whose
// available flag has already been flipped to false by a concurrent
// booking. Handlers should translate this into an HTTP 409 response.
var ErrSlotUnavailable = errors.New("slot unavailable")

// ErrBookingNotFound is returned when a booking lookup by id or
// reference matches no row.
var ErrBookingNotFound = errors.New("booking not found")
