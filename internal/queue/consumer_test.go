package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestHandleMessageWritesLogLine(t *testing.T) {
	chdir(t, t.TempDir())

	gid := uint64(12)
	ev := BookingCreatedEvent{
		BookingID:        101,
		UserID:           7,
		TourID:           3,
		TourName:         "Spiti Valley Circuit",
		DestinationName:  "Spiti",
		GroupID:          &gid,
		TravelerCount:    4,
		TotalAmountCents: 1200_00,
		TravelDate:       "2026-10-02",
		CreatedAt:        "2026-08-28T10:00:00Z",
	}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	require.NoError(t, handleMessage(body))

	data, err := os.ReadFile(filepath.Join("logs", "booking.log"))
	require.NoError(t, err)
	line := string(data)
	assert.Contains(t, line, "booking_id=101")
	assert.Contains(t, line, `tour="Spiti Valley Circuit"`)
	assert.Contains(t, line, "group=12")
	assert.Contains(t, line, "travelers=4")
	assert.Contains(t, line, "total=120000 cents")
}

func TestHandleMessageSoloBooking(t *testing.T) {
	chdir(t, t.TempDir())

	ev := BookingCreatedEvent{BookingID: 5, UserID: 2, TourID: 9, TravelerCount: 1, TravelDate: "2026-11-20"}
	body, err := json.Marshal(ev)
	require.NoError(t, err)

	require.NoError(t, handleMessage(body))

	data, err := os.ReadFile(filepath.Join("logs", "booking.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "group=solo")
}

func TestHandleMessageRejectsGarbage(t *testing.T) {
	chdir(t, t.TempDir())
	assert.Error(t, handleMessage([]byte("{not json")))
}
