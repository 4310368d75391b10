package repository

import (
    "context"
    "database/sql"

    "github.com/evakp/appointment-booking/internal/model"
)

// SlotRepo provides data access to the time_slots table.  Slots are keyed
// naturally by (date, time); the table carries a UNIQUE index on that pair
// which both the bulk upsert and the claim/release operations rely on.
// All date values are stored as SQL DATE and read back as "YYYY-MM-DD"
// strings; times are stored as zero-padded "HH:MM" strings.
type SlotRepo struct {
    db *sql.DB
}

// NewSlotRepo returns a new SlotRepo bound to the given database.
func NewSlotRepo(db *sql.DB) *SlotRepo { return &SlotRepo{db: db} }

// DB exposes the underlying database handle so callers can open
// transactions that span the slot and booking repositories.
func (r *SlotRepo) DB() *sql.DB { return r.db }

// ListByDate returns every slot for the given date ordered by time
// ascending.  An empty slice with nil error means the date truly has no
// slots.
func (r *SlotRepo) ListByDate(ctx context.Context, date string) ([]model.TimeSlot, error) {
    const q = `SELECT id, DATE_FORMAT(date, '%Y-%m-%d'), time, available
               FROM time_slots WHERE date = ? ORDER BY time ASC`
    rows, err := r.db.QueryContext(ctx, q, date)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    slots := make([]model.TimeSlot, 0, 16)
    for rows.Next() {
        var s model.TimeSlot
        if err := rows.Scan(&s.ID, &s.Date, &s.Time, &s.Available); err != nil {
            return nil, err
        }
        slots = append(slots, s)
    }
    return slots, rows.Err()
}

// UpsertBulk inserts all given slots in a single statement.  On conflict
// of the (date, time) unique key the row is left untouched: the
// `ON DUPLICATE KEY UPDATE id = id` clause never writes the available
// column, so re-running generation for a date that already has bookings
// cannot flip an already-claimed slot back to available.  Passing an
// empty slice has no effect and returns nil.
func (r *SlotRepo) UpsertBulk(ctx context.Context, slots []model.TimeSlot) error {
    if len(slots) == 0 {
        return nil
    }
    query := `INSERT INTO time_slots (date, time, available) VALUES `
    args := make([]interface{}, 0, len(slots)*3)
    for i, s := range slots {
        if i > 0 {
            query += ","
        }
        query += "(?, ?, ?)"
        args = append(args, s.Date, s.Time, s.Available)
    }
    query += ` ON DUPLICATE KEY UPDATE id = id`
    _, err := r.db.ExecContext(ctx, query, args...)
    return err
}

// ClaimTx flips the slot matching (date, time) from available to
// unavailable within the provided transaction.  The WHERE clause only
// matches rows whose available flag is still true, so the update acts as
// a compare-and-swap: when zero rows are affected the slot either does
// not exist or has already been claimed, and ErrSlotUnavailable is
// returned.  The caller must commit or roll back the transaction.
func (r *SlotRepo) ClaimTx(ctx context.Context, tx *sql.Tx, date, timeOfDay string) error {
    const q = `UPDATE time_slots SET available = 0
               WHERE date = ? AND time = ? AND available = 1`
    res, err := tx.ExecContext(ctx, q, date, timeOfDay)
    if err != nil {
        return err
    }
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return ErrSlotUnavailable
    }
    return nil
}

// ReleaseTx flips the slot matching (date, time) back to available
// within the provided transaction.  Releasing a slot that is already
// available is a no-op, which keeps cancellation idempotent.
func (r *SlotRepo) ReleaseTx(ctx context.Context, tx *sql.Tx, date, timeOfDay string) error {
    const q = `UPDATE time_slots SET available = 1 WHERE date = ? AND time = ?`
    _, err := tx.ExecContext(ctx, q, date, timeOfDay)
    return err
}
