// This file defines repository methods for destinations.  A destination
// is a catalog entry created by admin users; rating aggregates on it are
// maintained by an external review pipeline and only patched verbatim here.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/roamly/group-travel-booking/internal/model"
)

// ErrDestinationNotFound is returned when a destination cannot be found.
var ErrDestinationNotFound = errors.New("destination not found")

// DestinationRepo encapsulates all database queries related to destinations.
type DestinationRepo struct{ db *sql.DB }

func NewDestinationRepo(db *sql.DB) *DestinationRepo { return &DestinationRepo{db: db} }

const destinationColumns = "id, name, description, category, latitude, longitude, address, rating, review_count, featured, created_at, updated_at"

// Create inserts a new destination with derived defaults: rating 0,
// review_count 0, featured false.  On success the record's ID and
// timestamps are populated.
func (r *DestinationRepo) Create(ctx context.Context, d *model.Destination) error {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO destinations (name, description, category, latitude, longitude, address) VALUES (?,?,?,?,?,?)",
		d.Name, d.Description, d.Category, d.Latitude, d.Longitude, d.Address)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	got, err := r.GetByID(ctx, d.ID)
	if err != nil {
		return err
	}
	*d = got
	return nil
}

// GetByID fetches a destination by id.
func (r *DestinationRepo) GetByID(ctx context.Context, id uint64) (model.Destination, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+destinationColumns+" FROM destinations WHERE id = ? LIMIT 1", id)
	d, err := scanDestination(row)
	if err == sql.ErrNoRows {
		return model.Destination{}, ErrDestinationNotFound
	}
	return d, err
}

// ListAll returns every destination in insertion order.
func (r *DestinationRepo) ListAll(ctx context.Context) ([]model.Destination, error) {
	return r.list(ctx, "SELECT "+destinationColumns+" FROM destinations ORDER BY id ASC")
}

// ListByCategory returns the destinations whose category equals the
// given value, in insertion order.
func (r *DestinationRepo) ListByCategory(ctx context.Context, category string) ([]model.Destination, error) {
	return r.list(ctx, "SELECT "+destinationColumns+" FROM destinations WHERE category = ? ORDER BY id ASC", category)
}

// ListFeatured returns the destinations flagged as featured.
func (r *DestinationRepo) ListFeatured(ctx context.Context) ([]model.Destination, error) {
	return r.list(ctx, "SELECT "+destinationColumns+" FROM destinations WHERE featured = 1 ORDER BY id ASC")
}

func (r *DestinationRepo) list(ctx context.Context, query string, args ...any) ([]model.Destination, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Destination, 0)
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

type rowScanner interface{ Scan(dest ...any) error }

func scanDestination(row rowScanner) (model.Destination, error) {
	var d model.Destination
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Category,
		&d.Latitude, &d.Longitude, &d.Address,
		&d.Rating, &d.ReviewCount, &d.Featured, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}

// DestinationUpdate enumerates the mutable destination columns.  Rating
// and ReviewCount are included because the external review pipeline
// writes them through the same patch path; no field-level validation is
// applied.
type DestinationUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Latitude    *float64
	Longitude   *float64
	Address     *string
	Rating      *float64
	ReviewCount *uint32
	Featured    *bool
}

func (u DestinationUpdate) assignments() ([]string, []any) {
	var sets []string
	var args []any
	if u.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *u.Name)
	}
	if u.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *u.Description)
	}
	if u.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *u.Category)
	}
	if u.Latitude != nil {
		sets = append(sets, "latitude = ?")
		args = append(args, *u.Latitude)
	}
	if u.Longitude != nil {
		sets = append(sets, "longitude = ?")
		args = append(args, *u.Longitude)
	}
	if u.Address != nil {
		sets = append(sets, "address = ?")
		args = append(args, *u.Address)
	}
	if u.Rating != nil {
		sets = append(sets, "rating = ?")
		args = append(args, *u.Rating)
	}
	if u.ReviewCount != nil {
		sets = append(sets, "review_count = ?")
		args = append(args, *u.ReviewCount)
	}
	if u.Featured != nil {
		sets = append(sets, "featured = ?")
		args = append(args, *u.Featured)
	}
	return sets, args
}

// Update merges the supplied fields into the destination row.
func (r *DestinationRepo) Update(ctx context.Context, id uint64, upd DestinationUpdate) error {
	sets, args := upd.assignments()
	args = append(args, id)
	_, err := r.db.ExecContext(ctx, patchSQL("destinations", sets), args...)
	return err
}
