package handler

import (
    "net/http" // HTTP status codes
    "strconv"  // parsing path parameters
    "strings"  // case-insensitive search matching
    "time"     // wall-clock date for partitioning

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/evakp/appointment-booking/internal/availability" // grid generation
    "github.com/evakp/appointment-booking/internal/config"       // slot window settings
    "github.com/evakp/appointment-booking/internal/model"        // booking shapes
    "github.com/evakp/appointment-booking/internal/queue"        // event payloads
    queue_publisher "github.com/evakp/appointment-booking/internal/service"
    "github.com/evakp/appointment-booking/internal/store" // store adapter
)

// AdminHandler serves the dashboard: booking listing with free-text
// search and an upcoming/past partition, cancellation, completion and
// bulk slot generation for the rolling window.  These routes carry no
// authentication; the admin surface is reached by URL alone.
type AdminHandler struct {
    Store *store.Adapter     // slot store adapter
    Slots config.SlotsConfig // working-hour grid and window size
    now   func() time.Time   // injectable clock for partitioning and generation
}

// NewAdminHandler constructs an AdminHandler using the wall clock.
func NewAdminHandler(s *store.Adapter, slots config.SlotsConfig) *AdminHandler {
    if s == nil {
        panic("nil store adapter passed to NewAdminHandler")
    }
    return &AdminHandler{Store: s, Slots: slots, now: time.Now}
}

// filterBookings keeps bookings whose client name or email contains the
// search term, case-insensitively.  An empty term keeps everything.
// The filter runs before partitioning.
func filterBookings(bookings []model.Booking, term string) []model.Booking {
    term = strings.ToLower(strings.TrimSpace(term))
    if term == "" {
        return bookings
    }
    out := make([]model.Booking, 0, len(bookings))
    for _, b := range bookings {
        if strings.Contains(strings.ToLower(b.ClientName), term) ||
            strings.Contains(strings.ToLower(b.ClientEmail), term) {
            out = append(out, b)
        }
    }
    return out
}

// partitionBookings splits bookings into upcoming and past.  A booking
// is upcoming iff its date is on or after today AND it is still
// confirmed; everything else (past date, cancelled, completed) is past.
// ISO date strings compare lexically, so plain string comparison works.
func partitionBookings(bookings []model.Booking, today string) (upcoming, past []model.Booking) {
    upcoming = make([]model.Booking, 0, len(bookings))
    past = make([]model.Booking, 0, len(bookings))
    for _, b := range bookings {
        if b.Date >= today && b.Status == model.StatusConfirmed {
            upcoming = append(upcoming, b)
        } else {
            past = append(past, b)
        }
    }
    return upcoming, past
}

// ListBookings handles GET /v1/admin/bookings?search=.  The partition is
// a pure function of the current list and today's date, recomputed on
// every request rather than cached.
func (h *AdminHandler) ListBookings(c echo.Context) error {
    bookings := h.Store.ListBookings(c.Request().Context())
    filtered := filterBookings(bookings, c.QueryParam("search"))
    upcoming, past := partitionBookings(filtered, h.now().Format(availability.DateLayout))
    return c.JSON(http.StatusOK, echo.Map{
        "count":    len(filtered),
        "upcoming": upcoming,
        "past":     past,
    })
}

// CancelBooking handles POST /v1/admin/bookings/:id/cancel.  On success
// the updated booking is returned so the dashboard can patch its local
// list without a re-fetch.
func (h *AdminHandler) CancelBooking(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    booking := h.Store.CancelBooking(c.Request().Context(), id)
    if booking == nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking could not be cancelled, please try again"})
    }
    // Best-effort event; a broker outage must not fail the cancellation.
    _ = queue_publisher.PublishBookingCancelled(c.Request().Context(), queue.BookingCancelledEvent{
        BookingID:   booking.ID,
        Reference:   booking.Reference,
        Date:        booking.Date,
        Time:        booking.Time,
        ClientEmail: booking.ClientEmail,
        CancelledAt: h.now().UTC().Format(time.RFC3339),
    })
    return c.JSON(http.StatusOK, echo.Map{"booking": booking})
}

// CompleteBooking handles POST /v1/admin/bookings/:id/complete.  This is
// the only code path that ever sets the completed status; it is never
// inferred from the booking date.
func (h *AdminHandler) CompleteBooking(c echo.Context) error {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
    }
    booking := h.Store.CompleteBooking(c.Request().Context(), id)
    if booking == nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking could not be completed, please try again"})
    }
    return c.JSON(http.StatusOK, echo.Map{"booking": booking})
}

// GenerateSlots handles POST /v1/admin/slots/generate.  For each of the
// next WindowDays calendar days starting today it bulk-upserts the full
// working-hour grid.  A day whose write fails is skipped, not retried;
// the response reports how many of the attempted days succeeded.
func (h *AdminHandler) GenerateSlots(c echo.Context) error {
    ctx := c.Request().Context()
    dates := availability.Window(h.now(), h.Slots.WindowDays)
    generated := 0
    for _, date := range dates {
        slots := availability.SlotsForDate(date, h.Slots.StartHour, h.Slots.EndHour, h.Slots.IntervalMinutes)
        if h.Store.UpsertSlots(ctx, slots) {
            generated++
        }
    }
    if generated == 0 {
        return c.JSON(http.StatusInternalServerError, echo.Map{
            "error":          "no time slots could be generated, please try again",
            "attempted_days": len(dates),
        })
    }
    return c.JSON(http.StatusOK, echo.Map{
        "generated_days": generated,
        "attempted_days": len(dates),
    })
}
