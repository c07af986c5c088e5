package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/group-travel-booking/internal/model"
)

func ptr[T any](v T) *T { return &v }

func TestPatchSQL(t *testing.T) {
	got := patchSQL("bookings", []string{"paid_amount_cents = ?", "payment_status = ?"})
	assert.Equal(t, "UPDATE bookings SET paid_amount_cents = ?, payment_status = ?, updated_at = NOW() WHERE id = ?", got)
}

func TestPatchSQLEmptyPatchStillTouchesRow(t *testing.T) {
	got := patchSQL("travel_groups", nil)
	assert.Equal(t, "UPDATE travel_groups SET updated_at = NOW() WHERE id = ?", got)
}

func TestBookingUpdateAssignments(t *testing.T) {
	upd := BookingUpdate{
		PaidAmountCents: ptr(int64(200_00)),
		BookingStatus:   ptr(model.BookingConfirmed),
	}
	sets, args := upd.assignments()
	assert.Equal(t, []string{"paid_amount_cents = ?", "booking_status = ?"}, sets)
	assert.Equal(t, []any{int64(200_00), model.BookingConfirmed}, args)
}

func TestBookingUpdateAssignmentsEmpty(t *testing.T) {
	sets, args := BookingUpdate{}.assignments()
	assert.Empty(t, sets)
	assert.Empty(t, args)
}

func TestWalletUpdateAssignments(t *testing.T) {
	sets, args := WalletUpdate{BalanceCents: ptr(int64(5000))}.assignments()
	assert.Equal(t, []string{"balance_cents = ?"}, sets)
	assert.Equal(t, []any{int64(5000)}, args)
}

func TestTourUpdateAssignmentsMarshalsJSON(t *testing.T) {
	upd := TourUpdate{
		Name:         ptr("Spiti circuit"),
		Availability: []string{"2026-10-02", "2026-10-16"},
	}
	sets, args, err := upd.assignments()
	require.NoError(t, err)
	assert.Equal(t, []string{"name = ?", "availability = ?"}, sets)
	require.Len(t, args, 2)
	assert.Equal(t, "Spiti circuit", args[0])
	assert.JSONEq(t, `["2026-10-02","2026-10-16"]`, args[1].(string))
}

func TestMarshalJSONColumnNilSlicesBecomeNull(t *testing.T) {
	for _, v := range []any{[]model.DayPlan(nil), []string(nil), []model.Traveler(nil)} {
		got, err := marshalJSONColumn(v)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
	got, err := marshalJSONColumn([]string{"2026-01-05"})
	require.NoError(t, err)
	assert.JSONEq(t, `["2026-01-05"]`, got.(string))
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(errors.New("Error 1062 (23000): Duplicate entry 'a@b.c' for key 'uq_users_email'")))
	assert.False(t, isDuplicateKey(errors.New("Error 1452: foreign key constraint fails")))
	assert.False(t, isDuplicateKey(nil))
}
