package handler

import (
    "errors"   // for errors.Is comparisons against repository sentinels
    "net/http" // HTTP status codes
    "time"     // event timestamps

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/evakp/appointment-booking/internal/model"      // booking shapes
    "github.com/evakp/appointment-booking/internal/queue"      // event payloads
    "github.com/evakp/appointment-booking/internal/repository" // sentinel errors
    queue_publisher "github.com/evakp/appointment-booking/internal/service"
    "github.com/evakp/appointment-booking/internal/store" // store adapter
)

// BookingHandler drives the booking workflow: it validates the
// client-supplied form, requires a selected date and slot, asks the
// store adapter to claim the slot and create the booking, and returns
// the confirmation payload the next screen renders.  Failures never
// corrupt state; the client may simply re-submit.
type BookingHandler struct {
    Store *store.Adapter // slot store adapter
}

// NewBookingHandler constructs a BookingHandler.  The adapter must be
// non-nil (it may itself be in unavailable mode).
func NewBookingHandler(s *store.Adapter) *BookingHandler {
    if s == nil {
        panic("nil store adapter passed to NewBookingHandler")
    }
    return &BookingHandler{Store: s}
}

// bookingRequest is the form a client submits once a date and slot are
// chosen.  Date and time are checked for presence separately so a
// missing selection yields a notification-style message rather than a
// field error; the remaining tags mirror the intake form rules.
type bookingRequest struct {
    Date        string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
    Time        string  `json:"time" validate:"omitempty,datetime=15:04"`
    ClientName  string  `json:"client_name" validate:"required,min=2"`
    ClientEmail string  `json:"client_email" validate:"required,email"`
    ClientPhone string  `json:"client_phone" validate:"required,min=7"`
    Notes       *string `json:"notes" validate:"omitempty,max=1000"`
    // Status is deliberately absent: creation always yields "confirmed".
}

// Create handles POST /v1/bookings.  The submission is rejected before
// any store write when the date or time slot is missing or when a
// contact field fails validation.  A lost slot claim is reported as 409
// so the client can pick another slot; every other store failure is a
// generic retryable error.
func (h *BookingHandler) Create(c echo.Context) error {
    var req bookingRequest
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    if req.Date == "" || req.Time == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "please select a date and time slot"})
    }
    if err := c.Validate(&req); err != nil {
        return err
    }
    draft := model.BookingDraft{
        Date:        req.Date,
        Time:        req.Time,
        ClientName:  req.ClientName,
        ClientEmail: req.ClientEmail,
        ClientPhone: req.ClientPhone,
        Notes:       req.Notes,
    }
    booking, err := h.Store.CreateBooking(c.Request().Context(), draft)
    if errors.Is(err, repository.ErrSlotUnavailable) {
        return c.JSON(http.StatusConflict, echo.Map{"error": "slot no longer available"})
    }
    if booking == nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking could not be created, please try again"})
    }
    // Best-effort event; a broker outage must not fail the booking.
    _ = queue_publisher.PublishBookingCreated(c.Request().Context(), queue.BookingCreatedEvent{
        BookingID:   booking.ID,
        Reference:   booking.Reference,
        Date:        booking.Date,
        Time:        booking.Time,
        ClientName:  booking.ClientName,
        ClientEmail: booking.ClientEmail,
        Status:      booking.Status,
        CreatedAt:   booking.CreatedAt.UTC().Format(time.RFC3339),
    })
    return c.JSON(http.StatusCreated, echo.Map{"booking": booking})
}

// GetByReference handles GET /v1/bookings/:reference.  It backs the
// confirmation screen: when the reference is unknown the client is
// expected to redirect back to the booking entry point.
func (h *BookingHandler) GetByReference(c echo.Context) error {
    ref := c.Param("reference")
    if ref == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reference"})
    }
    booking := h.Store.GetBookingByReference(c.Request().Context(), ref)
    if booking == nil {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
    }
    return c.JSON(http.StatusOK, echo.Map{"booking": booking})
}
