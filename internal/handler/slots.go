package handler

import (
    "net/http" // HTTP status codes
    "time"     // date parsing and the wall clock

    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/evakp/appointment-booking/internal/availability" // grid and filter helpers
    "github.com/evakp/appointment-booking/internal/store"        // store adapter
)

// SlotHandler serves the slot listings the booking page renders for a
// chosen date.  The adapter's degrade policy applies: a store failure
// surfaces here as an empty list, indistinguishable from a date with no
// slots.
type SlotHandler struct {
    Store *store.Adapter   // slot store adapter
    now   func() time.Time // injectable clock for the today filter
}

// NewSlotHandler constructs a SlotHandler using the wall clock.
func NewSlotHandler(s *store.Adapter) *SlotHandler {
    if s == nil {
        panic("nil store adapter passed to NewSlotHandler")
    }
    return &SlotHandler{Store: s, now: time.Now}
}

// List handles GET /v1/slots?date=YYYY-MM-DD.  Slots come back ordered
// by time ascending; when the requested date is today, times that have
// already passed are excluded.
func (h *SlotHandler) List(c echo.Context) error {
    date := c.QueryParam("date")
    if _, err := time.Parse(availability.DateLayout, date); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date, expected YYYY-MM-DD"})
    }
    slots := h.Store.ListSlots(c.Request().Context(), date)
    slots = availability.ExcludePast(slots, h.now())
    return c.JSON(http.StatusOK, echo.Map{
        "date":  date,
        "count": len(slots),
        "items": slots,
    })
}
