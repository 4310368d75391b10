package repository

import (
    "context"
    "database/sql"

    "github.com/evakp/appointment-booking/internal/model"
)

// selectBooking is the shared column list used whenever a full booking
// row is read back.  The date column is formatted to the same
// "YYYY-MM-DD" string form the rest of the application uses.
const selectBooking = `SELECT id, reference, created_at, DATE_FORMAT(date, '%Y-%m-%d'), time,
       client_name, client_email, client_phone, notes, status FROM bookings`

// BookingRepo provides data access to the bookings table.  Bookings are
// never hard-deleted; cancellation and completion are status updates.
// All timestamp fields are assumed to be stored in UTC.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying database handle so callers can open
// transactions that span the booking and slot repositories.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// scanBooking scans one row produced by a selectBooking query.
func scanBooking(row interface{ Scan(...interface{}) error }, b *model.Booking) error {
    var notes sql.NullString
    err := row.Scan(
        &b.ID, &b.Reference, &b.CreatedAt, &b.Date, &b.Time,
        &b.ClientName, &b.ClientEmail, &b.ClientPhone, &notes, &b.Status,
    )
    if err != nil {
        return err
    }
    if notes.Valid {
        n := notes.String
        b.Notes = &n
    }
    return nil
}

// CreateTx inserts a new booking within the scope of an existing
// transaction.  The caller supplies Reference, Date, Time, the client
// contact fields and Status; ID and CreatedAt are populated from the row
// written by the store.  The caller must commit or roll back the
// transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
    const q = `INSERT INTO bookings (reference, date, time, client_name, client_email, client_phone, notes, status)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
    var notes interface{}
    if b.Notes != nil {
        notes = *b.Notes
    }
    result, err := tx.ExecContext(ctx, q,
        b.Reference, b.Date, b.Time, b.ClientName, b.ClientEmail, b.ClientPhone, notes, b.Status,
    )
    if err != nil {
        return err
    }
    id, err := result.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)
    // Query back the full row to populate timestamps and defaults.
    return scanBooking(tx.QueryRowContext(ctx, selectBooking+` WHERE id = ?`, b.ID), b)
}

// List returns all bookings ordered by date ascending, with time as a
// secondary key so same-day bookings come back in slot order.
func (r *BookingRepo) List(ctx context.Context) ([]model.Booking, error) {
    rows, err := r.db.QueryContext(ctx, selectBooking+` ORDER BY date ASC, time ASC`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    bookings := make([]model.Booking, 0, 32)
    for rows.Next() {
        var b model.Booking
        if err := scanBooking(rows, &b); err != nil {
            return nil, err
        }
        bookings = append(bookings, b)
    }
    return bookings, rows.Err()
}

// GetByReference returns the booking carrying the given opaque
// reference.  ErrBookingNotFound is returned when no such booking
// exists.
func (r *BookingRepo) GetByReference(ctx context.Context, ref string) (*model.Booking, error) {
    var b model.Booking
    err := scanBooking(r.db.QueryRowContext(ctx, selectBooking+` WHERE reference = ?`, ref), &b)
    if err == sql.ErrNoRows {
        return nil, ErrBookingNotFound
    }
    if err != nil {
        return nil, err
    }
    return &b, nil
}

// GetForUpdateTx loads a booking by id inside the provided transaction,
// locking the row so the subsequent status update and slot release
// commit together against a stable snapshot.  ErrBookingNotFound is
// returned when the id matches no row.
func (r *BookingRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Booking, error) {
    var b model.Booking
    err := scanBooking(tx.QueryRowContext(ctx, selectBooking+` WHERE id = ? FOR UPDATE`, id), &b)
    if err == sql.ErrNoRows {
        return nil, ErrBookingNotFound
    }
    if err != nil {
        return nil, err
    }
    return &b, nil
}

// UpdateStatusTx sets the booking's status within the provided
// transaction.  Status must be one of the model.Status* values.
func (r *BookingRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status string) error {
    _, err := tx.ExecContext(ctx, `UPDATE bookings SET status = ? WHERE id = ?`, status, id)
    return err
}
