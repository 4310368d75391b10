// Package store exposes the slot and booking operations used by the
// handlers.  It is the single boundary where remote-store failures are
// handled: every operation logs the underlying error and degrades to an
// empty, nil or false result instead of propagating it, so callers can
// treat any degraded value uniformly as "operation did not take effect,
// inform the user, allow retry".  The one structured error that crosses
// the boundary is repository.ErrSlotUnavailable, which the booking
// workflow must be able to report as "slot no longer available".
package store

import (
    "context"
    "database/sql"
    "errors"
    "log"

    "github.com/google/uuid"

    "github.com/evakp/appointment-booking/internal/model"
    "github.com/evakp/appointment-booking/internal/repository"
)

// Adapter translates booking and availability operations into reads and
// writes against the time_slots and bookings tables.  It is constructed
// with an explicit database handle rather than ambient configuration; a
// nil handle puts the adapter into unavailable mode in which every
// operation degrades immediately.
type Adapter struct {
    db       *sql.DB
    slots    *repository.SlotRepo
    bookings *repository.BookingRepo
}

// New returns an Adapter over the given database.  db may be nil when
// the store endpoint or credentials are missing at startup; the
// application shell keeps serving and every store operation fails soft.
func New(db *sql.DB) *Adapter {
    return &Adapter{
        db:       db,
        slots:    repository.NewSlotRepo(db),
        bookings: repository.NewBookingRepo(db),
    }
}

// Available reports whether the adapter has a usable store connection.
func (a *Adapter) Available() bool { return a != nil && a.db != nil }

// ListSlots returns the slots for the given date ordered by time
// ascending.  On any fetch error it logs and returns an empty slice;
// callers cannot distinguish that from a date with truly no slots.
func (a *Adapter) ListSlots(ctx context.Context, date string) []model.TimeSlot {
    if !a.Available() {
        log.Printf("store: list slots skipped, store unavailable")
        return []model.TimeSlot{}
    }
    slots, err := a.slots.ListByDate(ctx, date)
    if err != nil {
        log.Printf("store: list slots for %s failed: %v", date, err)
        return []model.TimeSlot{}
    }
    return slots
}

// CreateBooking claims the slot matching the draft's (date, time) and
// inserts the booking in a single transaction.  The claim is a
// compare-and-swap on the slot's available flag, so two concurrent
// bookings for the same slot cannot both succeed; the loser receives
// repository.ErrSlotUnavailable and no booking row is written.  The
// booking's status is always forced to confirmed regardless of the
// draft.  Any other failure is logged and degrades to (nil, nil).
func (a *Adapter) CreateBooking(ctx context.Context, draft model.BookingDraft) (*model.Booking, error) {
    if !a.Available() {
        log.Printf("store: create booking skipped, store unavailable")
        return nil, nil
    }
    tx, err := a.db.BeginTx(ctx, nil)
    if err != nil {
        log.Printf("store: create booking begin tx failed: %v", err)
        return nil, nil
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    if err := a.slots.ClaimTx(ctx, tx, draft.Date, draft.Time); err != nil {
        if errors.Is(err, repository.ErrSlotUnavailable) {
            return nil, repository.ErrSlotUnavailable
        }
        log.Printf("store: claim slot (%s %s) failed: %v", draft.Date, draft.Time, err)
        return nil, nil
    }
    b := &model.Booking{
        Reference:   uuid.NewString(),
        Date:        draft.Date,
        Time:        draft.Time,
        ClientName:  draft.ClientName,
        ClientEmail: draft.ClientEmail,
        ClientPhone: draft.ClientPhone,
        Notes:       draft.Notes,
        Status:      model.StatusConfirmed,
    }
    if err := a.bookings.CreateTx(ctx, tx, b); err != nil {
        log.Printf("store: insert booking (%s %s) failed: %v", draft.Date, draft.Time, err)
        return nil, nil
    }
    if err := tx.Commit(); err != nil {
        log.Printf("store: create booking commit failed: %v", err)
        return nil, nil
    }
    committed = true
    return b, nil
}

// CancelBooking sets the booking's status to cancelled and releases the
// paired slot in the same transaction.  It returns the updated booking
// so admin views can project the change locally without a re-fetch; nil
// means the cancellation did not take effect (unknown id or store
// failure, both logged).
func (a *Adapter) CancelBooking(ctx context.Context, id uint64) *model.Booking {
    return a.transition(ctx, id, model.StatusCancelled, true)
}

// CompleteBooking sets the booking's status to completed.  Completion is
// an explicit administrative action; it never touches the slot and is
// never inferred from the booking date.
func (a *Adapter) CompleteBooking(ctx context.Context, id uint64) *model.Booking {
    return a.transition(ctx, id, model.StatusCompleted, false)
}

// transition performs a locked read-update(-release) cycle on one
// booking.  releaseSlot controls whether the paired time slot is flipped
// back to available in the same commit.
func (a *Adapter) transition(ctx context.Context, id uint64, status string, releaseSlot bool) *model.Booking {
    if !a.Available() {
        log.Printf("store: booking %d -> %s skipped, store unavailable", id, status)
        return nil
    }
    tx, err := a.db.BeginTx(ctx, nil)
    if err != nil {
        log.Printf("store: booking %d -> %s begin tx failed: %v", id, status, err)
        return nil
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()
    b, err := a.bookings.GetForUpdateTx(ctx, tx, id)
    if err != nil {
        log.Printf("store: booking %d -> %s read failed: %v", id, status, err)
        return nil
    }
    if err := a.bookings.UpdateStatusTx(ctx, tx, id, status); err != nil {
        log.Printf("store: booking %d -> %s update failed: %v", id, status, err)
        return nil
    }
    if releaseSlot {
        if err := a.slots.ReleaseTx(ctx, tx, b.Date, b.Time); err != nil {
            log.Printf("store: booking %d release slot (%s %s) failed: %v", id, b.Date, b.Time, err)
            return nil
        }
    }
    if err := tx.Commit(); err != nil {
        log.Printf("store: booking %d -> %s commit failed: %v", id, status, err)
        return nil
    }
    committed = true
    b.Status = status
    return b
}

// ListBookings returns all bookings ordered by date ascending.  On any
// fetch error it logs and returns an empty slice.
func (a *Adapter) ListBookings(ctx context.Context) []model.Booking {
    if !a.Available() {
        log.Printf("store: list bookings skipped, store unavailable")
        return []model.Booking{}
    }
    bookings, err := a.bookings.List(ctx)
    if err != nil {
        log.Printf("store: list bookings failed: %v", err)
        return []model.Booking{}
    }
    return bookings
}

// GetBookingByReference returns the booking for a confirmation
// reference, or nil when it is unknown or the store fails (logged).
func (a *Adapter) GetBookingByReference(ctx context.Context, ref string) *model.Booking {
    if !a.Available() {
        log.Printf("store: get booking skipped, store unavailable")
        return nil
    }
    b, err := a.bookings.GetByReference(ctx, ref)
    if err != nil {
        if !errors.Is(err, repository.ErrBookingNotFound) {
            log.Printf("store: get booking %q failed: %v", ref, err)
        }
        return nil
    }
    return b
}

// UpsertSlots writes the given slots in one idempotent bulk upsert keyed
// on (date, time).  Existing rows are left untouched, so regeneration
// never resets the availability of an already-booked slot.  Returns
// false on failure (logged).
func (a *Adapter) UpsertSlots(ctx context.Context, slots []model.TimeSlot) bool {
    if !a.Available() {
        log.Printf("store: upsert slots skipped, store unavailable")
        return false
    }
    if err := a.slots.UpsertBulk(ctx, slots); err != nil {
        log.Printf("store: upsert %d slots failed: %v", len(slots), err)
        return false
    }
    return true
}
