package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/roamly/group-travel-booking/internal/model"
)

// ErrBookingNotFound is returned when a booking cannot be found.
var ErrBookingNotFound = errors.New("booking not found")

// BookingRepo provides persistence for bookings.  The travelers list is
// a JSON column marshaled here.  Create never validates the traveler
// count against the tour's group-size bounds nor the travel date against
// the tour's availability set; those checks belong to a later product
// iteration and their absence is part of the current contract.
type BookingRepo struct{ db *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

const bookingColumns = "id, user_id, tour_id, group_id, travelers, total_amount_cents, paid_amount_cents, payment_status, booking_status, travel_date, special_requests, created_at, updated_at"

// Create inserts a booking in its initial state (zero paid, PENDING
// payment and booking status) and populates the record's ID and
// timestamps.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	travelers, err := marshalJSONColumn(b.Travelers)
	if err != nil {
		return err
	}
	if travelers == nil {
		travelers = "[]"
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO bookings (user_id, tour_id, group_id, travelers, total_amount_cents, paid_amount_cents, payment_status, booking_status, travel_date, special_requests) VALUES (?,?,?,?,?,0,?,?,?,?)",
		b.UserID, b.TourID, b.GroupID, travelers, b.TotalAmountCents,
		model.PaymentPending, model.BookingPending, b.TravelDate.Format("2006-01-02"), b.SpecialRequests)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	got, err := r.GetByID(ctx, b.ID)
	if err != nil {
		return err
	}
	*b = got
	return nil
}

// GetByID fetches a booking by id.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE id = ? LIMIT 1", id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, err
}

// ListByUser returns the user's bookings, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	return r.list(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE user_id = ? ORDER BY created_at DESC, id DESC", userID)
}

// ListByTour returns all bookings placed for a tour, newest first.
func (r *BookingRepo) ListByTour(ctx context.Context, tourID uint64) ([]model.Booking, error) {
	return r.list(ctx, "SELECT "+bookingColumns+" FROM bookings WHERE tour_id = ? ORDER BY created_at DESC, id DESC", tourID)
}

func (r *BookingRepo) list(ctx context.Context, query string, args ...any) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBooking(row rowScanner) (model.Booking, error) {
	var (
		b         model.Booking
		travelers sql.NullString
		special   sql.NullString
	)
	err := row.Scan(&b.ID, &b.UserID, &b.TourID, &nullableID{&b.GroupID}, &travelers,
		&b.TotalAmountCents, &b.PaidAmountCents, &b.PaymentStatus, &b.BookingStatus,
		&b.TravelDate, &special, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return model.Booking{}, err
	}
	if travelers.Valid && travelers.String != "" {
		if err := json.Unmarshal([]byte(travelers.String), &b.Travelers); err != nil {
			return model.Booking{}, err
		}
	}
	if special.Valid {
		v := special.String
		b.SpecialRequests = &v
	}
	return b, nil
}

// BookingUpdate enumerates the mutable booking columns.  Payment and
// booking status are independent fields: nothing derives payment_status
// COMPLETED from paid == total, and nothing stops contradictory
// combinations.  Applying the same patch twice yields the same row.
type BookingUpdate struct {
	PaidAmountCents *int64
	PaymentStatus   *string
	BookingStatus   *string
	TravelDate      *string // "2006-01-02"
	SpecialRequests *string
}

func (u BookingUpdate) assignments() ([]string, []any) {
	var sets []string
	var args []any
	if u.PaidAmountCents != nil {
		sets = append(sets, "paid_amount_cents = ?")
		args = append(args, *u.PaidAmountCents)
	}
	if u.PaymentStatus != nil {
		sets = append(sets, "payment_status = ?")
		args = append(args, *u.PaymentStatus)
	}
	if u.BookingStatus != nil {
		sets = append(sets, "booking_status = ?")
		args = append(args, *u.BookingStatus)
	}
	if u.TravelDate != nil {
		sets = append(sets, "travel_date = ?")
		args = append(args, *u.TravelDate)
	}
	if u.SpecialRequests != nil {
		sets = append(sets, "special_requests = ?")
		args = append(args, *u.SpecialRequests)
	}
	return sets, args
}

// Update merges the supplied fields into the booking row.
func (r *BookingRepo) Update(ctx context.Context, id uint64, upd BookingUpdate) error {
	sets, args := upd.assignments()
	args = append(args, id)
	_, err := r.db.ExecContext(ctx, patchSQL("bookings", sets), args...)
	return err
}
