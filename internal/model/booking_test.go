package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBookingInitialState(t *testing.T) {
	gid := uint64(7)
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	notes := "window seats please"
	b := NewBooking(3, 11, &gid, []Traveler{{Name: "Asha", Age: 29}}, 450_00, date, &notes)

	assert.Equal(t, uint64(3), b.UserID)
	assert.Equal(t, uint64(11), b.TourID)
	assert.Equal(t, &gid, b.GroupID)
	assert.Equal(t, int64(450_00), b.TotalAmountCents)
	assert.Equal(t, date, b.TravelDate)
	assert.Equal(t, &notes, b.SpecialRequests)

	// A fresh booking is unpaid and pending, whatever total was supplied.
	assert.Zero(t, b.PaidAmountCents)
	assert.Equal(t, PaymentPending, b.PaymentStatus)
	assert.Equal(t, BookingPending, b.BookingStatus)
}

func TestNewBookingSolo(t *testing.T) {
	b := NewBooking(1, 2, nil, []Traveler{{Name: "Ravi", Age: 40}}, 100_00, time.Now(), nil)
	assert.Nil(t, b.GroupID)
	assert.Nil(t, b.SpecialRequests)
	assert.Len(t, b.Travelers, 1)
}
