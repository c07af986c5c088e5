package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/group-travel-booking/internal/model"
)

func destinationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "description", "category", "latitude", "longitude", "address", "rating", "review_count", "featured", "created_at", "updated_at"})
}

func TestListByCategoryKeepsInsertionOrder(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	// rows come back ordered by id; the repo must not reorder them
	mock.ExpectQuery(`SELECT .+ FROM destinations WHERE category = \? ORDER BY id ASC`).
		WithArgs(model.CategoryBeach).
		WillReturnRows(destinationRows().
			AddRow(1, "Goa", "", model.CategoryBeach, 15.3, 74.1, "", 4.5, 120, true, now, now).
			AddRow(3, "Gokarna", "", model.CategoryBeach, 14.5, 74.3, "", 4.2, 40, false, now, now).
			AddRow(8, "Varkala", "", model.CategoryBeach, 8.7, 76.7, "", 4.0, 15, false, now, now))

	got, err := NewDestinationRepo(db).ListByCategory(context.Background(), model.CategoryBeach)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, []uint64{1, 3, 8}, []uint64{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, "Goa", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDMapsMissToSentinel(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery("SELECT .+ FROM destinations WHERE id = ").
		WithArgs(int64(99)).
		WillReturnRows(destinationRows())

	_, err := NewDestinationRepo(db).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrDestinationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
