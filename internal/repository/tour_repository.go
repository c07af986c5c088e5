package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/roamly/group-travel-booking/internal/model"
)

// ErrTourNotFound is returned when a tour cannot be found.
var ErrTourNotFound = errors.New("tour not found")

// TourRepo encapsulates database queries for tours.  Itinerary and
// availability are JSON columns; marshaling happens here so callers work
// with typed slices.
type TourRepo struct{ db *sql.DB }

func NewTourRepo(db *sql.DB) *TourRepo { return &TourRepo{db: db} }

const tourColumns = "id, destination_id, name, description, price_cents, original_price_cents, min_group_size, max_group_size, itinerary, availability, rating, review_count, created_at, updated_at"

// Create inserts a new tour with derived defaults (rating 0, review
// count 0).  No validation is applied to the group-size bounds or price;
// the catalog accepts what the admin supplies.
func (r *TourRepo) Create(ctx context.Context, t *model.Tour) error {
	itin, err := marshalJSONColumn(t.Itinerary)
	if err != nil {
		return err
	}
	avail, err := marshalJSONColumn(t.Availability)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO tours (destination_id, name, description, price_cents, original_price_cents, min_group_size, max_group_size, itinerary, availability) VALUES (?,?,?,?,?,?,?,?,?)",
		t.DestinationID, t.Name, t.Description, t.PriceCents, t.OriginalPriceCents,
		t.MinGroupSize, t.MaxGroupSize, itin, avail)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	got, err := r.GetByID(ctx, t.ID)
	if err != nil {
		return err
	}
	*t = got
	return nil
}

// GetByID fetches a tour by id.
func (r *TourRepo) GetByID(ctx context.Context, id uint64) (model.Tour, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+tourColumns+" FROM tours WHERE id = ? LIMIT 1", id)
	t, err := scanTour(row)
	if err == sql.ErrNoRows {
		return model.Tour{}, ErrTourNotFound
	}
	return t, err
}

// ListAll returns every tour in insertion order.
func (r *TourRepo) ListAll(ctx context.Context) ([]model.Tour, error) {
	return r.list(ctx, "SELECT "+tourColumns+" FROM tours ORDER BY id ASC")
}

// ListByDestination returns the tours that belong to the given
// destination, in insertion order.
func (r *TourRepo) ListByDestination(ctx context.Context, destinationID uint64) ([]model.Tour, error) {
	return r.list(ctx, "SELECT "+tourColumns+" FROM tours WHERE destination_id = ? ORDER BY id ASC", destinationID)
}

func (r *TourRepo) list(ctx context.Context, query string, args ...any) ([]model.Tour, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Tour, 0)
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func scanTour(row rowScanner) (model.Tour, error) {
	var (
		t        model.Tour
		original sql.NullInt64
		itin     sql.NullString
		avail    sql.NullString
	)
	err := row.Scan(&t.ID, &t.DestinationID, &t.Name, &t.Description,
		&t.PriceCents, &original, &t.MinGroupSize, &t.MaxGroupSize,
		&itin, &avail, &t.Rating, &t.ReviewCount, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return model.Tour{}, err
	}
	if original.Valid {
		v := original.Int64
		t.OriginalPriceCents = &v
	}
	if itin.Valid && itin.String != "" {
		if err := json.Unmarshal([]byte(itin.String), &t.Itinerary); err != nil {
			return model.Tour{}, err
		}
	}
	if avail.Valid && avail.String != "" {
		if err := json.Unmarshal([]byte(avail.String), &t.Availability); err != nil {
			return model.Tour{}, err
		}
	}
	return t, nil
}

// marshalJSONColumn encodes v for storage in a JSON column.  A nil slice
// stores SQL NULL rather than the string "null".
func marshalJSONColumn(v any) (any, error) {
	switch s := v.(type) {
	case []model.DayPlan:
		if s == nil {
			return nil, nil
		}
	case []string:
		if s == nil {
			return nil, nil
		}
	case []model.Traveler:
		if s == nil {
			return nil, nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// TourUpdate enumerates the mutable tour columns.  Itinerary and
// Availability replace the whole JSON document when supplied.
type TourUpdate struct {
	Name               *string
	Description        *string
	PriceCents         *int64
	OriginalPriceCents *int64
	MinGroupSize       *uint32
	MaxGroupSize       *uint32
	Itinerary          []model.DayPlan
	Availability       []string
	Rating             *float64
	ReviewCount        *uint32
}

func (u TourUpdate) assignments() ([]string, []any, error) {
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
	if u.PriceCents != nil {
		sets = append(sets, "price_cents = ?")
		args = append(args, *u.PriceCents)
	}
	if u.OriginalPriceCents != nil {
		sets = append(sets, "original_price_cents = ?")
		args = append(args, *u.OriginalPriceCents)
	}
	if u.MinGroupSize != nil {
		sets = append(sets, "min_group_size = ?")
		args = append(args, *u.MinGroupSize)
	}
	if u.MaxGroupSize != nil {
		sets = append(sets, "max_group_size = ?")
		args = append(args, *u.MaxGroupSize)
	}
	if u.Itinerary != nil {
		b, err := json.Marshal(u.Itinerary)
		if err != nil {
			return nil, nil, err
		}
		sets = append(sets, "itinerary = ?")
		args = append(args, string(b))
	}
	if u.Availability != nil {
		b, err := json.Marshal(u.Availability)
		if err != nil {
			return nil, nil, err
		}
		sets = append(sets, "availability = ?")
		args = append(args, string(b))
	}
	if u.Rating != nil {
		sets = append(sets, "rating = ?")
		args = append(args, *u.Rating)
	}
	if u.ReviewCount != nil {
		sets = append(sets, "review_count = ?")
		args = append(args, *u.ReviewCount)
	}
	return sets, args, nil
}

// Update merges the supplied fields into the tour row.
func (r *TourRepo) Update(ctx context.Context, id uint64, upd TourUpdate) error {
	sets, args, err := upd.assignments()
	if err != nil {
		return err
	}
	args = append(args, id)
	_, err = r.db.ExecContext(ctx, patchSQL("tours", sets), args...)
	return err
}

// TourSearchQuery defines filters & pagination for searching the tour
// catalog.
type TourSearchQuery struct {
	Name           string
	Destination    string
	Category       string
	MaxPriceCents  int64
	Page           int
	PageSize       int
}

// TourSearchRow is a flattened catalog row joined with its destination.
type TourSearchRow struct {
	ID              uint64  `json:"id"`
	Name            string  `json:"name"`
	DestinationID   uint64  `json:"destination_id"`
	DestinationName string  `json:"destination"`
	Category        string  `json:"category"`
	PriceCents      int64   `json:"price_cents"`
	Rating          float64 `json:"rating"`
}

// Search returns a page of tours matching the query plus the total match
// count.  Name and destination filters are case-insensitive substring
// matches.
func (r *TourRepo) Search(ctx context.Context, q TourSearchQuery) ([]TourSearchRow, int64, error) {
	where := []string{}
	args := []any{}

	if q.Name != "" {
		where = append(where, "LOWER(t.name) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Name)+"%")
	}
	if q.Destination != "" {
		where = append(where, "LOWER(d.name) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Destination)+"%")
	}
	if q.Category != "" {
		where = append(where, "d.category = ?")
		args = append(args, strings.ToUpper(q.Category))
	}
	if q.MaxPriceCents > 0 {
		where = append(where, "t.price_cents <= ?")
		args = append(args, q.MaxPriceCents)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	countSQL := `SELECT COUNT(*)
		FROM tours t
		JOIN destinations d ON d.id = t.destination_id
		WHERE ` + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}
	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize

	dataSQL := `SELECT t.id, t.name, t.destination_id, d.name, d.category, t.price_cents, t.rating
		FROM tours t
		JOIN destinations d ON d.id = t.destination_id
		WHERE ` + cond + `
		ORDER BY t.id ASC
		LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, dataSQL, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	out := make([]TourSearchRow, 0)
	for rows.Next() {
		var row TourSearchRow
		if err := rows.Scan(&row.ID, &row.Name, &row.DestinationID,
			&row.DestinationName, &row.Category, &row.PriceCents, &row.Rating); err != nil {
			return nil, 0, err
		}
		out = append(out, row)
	}
	return out, total, rows.Err()
}
