// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is successfully
// confirmed.  It contains enough information for downstream consumers to
// log or notify without querying the primary database.
type BookingCreatedEvent struct {
    BookingID   uint64 `json:"booking_id"`
    Reference   string `json:"reference"`
    Date        string `json:"date"`
    Time        string `json:"time"`
    ClientName  string `json:"client_name"`
    ClientEmail string `json:"client_email"`
    Status      string `json:"status"`
    CreatedAt   string `json:"created_at"`
}

// BookingCancelledEvent is published when an administrator cancels a
// booking and its slot has been released.
type BookingCancelledEvent struct {
    BookingID   uint64 `json:"booking_id"`
    Reference   string `json:"reference"`
    Date        string `json:"date"`
    Time        string `json:"time"`
    ClientEmail string `json:"client_email"`
    CancelledAt string `json:"cancelled_at"`
}
