package ledger_test

import (
	"path/filepath"
	"testing"
	"time"

	"fjacquet/bookctl/internal/ledger"
	"fjacquet/bookctl/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking(id, userID string) models.Booking {
	return models.Booking{
		ID:          id,
		UserID:      userID,
		ServiceID:   "F100",
		ServiceName: "AirIndia 101",
		Kind:        models.KindFlight,
		Quantity:    2,
		UnitPrice:   decimal.RequireFromString("2500.00"),
		TotalPrice:  decimal.RequireFromString("5000.00"),
		CreatedAt:   time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	store := ledger.NewStore(filepath.Join(t.TempDir(), "bookings.yaml"))

	bookings, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestAppendAndLoadRoundTrip(t *testing.T) {
	store := ledger.NewStore(filepath.Join(t.TempDir(), "bookings.yaml"))

	first := sampleBooking("b-1", "C100")
	second := sampleBooking("b-2", "C100")
	second.Quantity = 1
	second.TotalPrice = decimal.RequireFromString("2500.00")

	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(second))

	bookings, err := store.LoadAll()
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	// Append order preserved, amounts exact
	assert.Equal(t, "b-1", bookings[0].ID)
	assert.Equal(t, "b-2", bookings[1].ID)
	assert.True(t, bookings[0].TotalPrice.Equal(decimal.RequireFromString("5000.00")))
	assert.True(t, bookings[1].UnitPrice.Equal(decimal.RequireFromString("2500.00")))
	assert.Equal(t, models.KindFlight, bookings[0].Kind)
	assert.Equal(t, first.CreatedAt, bookings[0].CreatedAt.UTC())
}

func TestLoadForUser(t *testing.T) {
	store := ledger.NewStore(filepath.Join(t.TempDir(), "bookings.yaml"))

	require.NoError(t, store.Append(sampleBooking("b-1", "C100")))
	require.NoError(t, store.Append(sampleBooking("b-2", "C200")))
	require.NoError(t, store.Append(sampleBooking("b-3", "C100")))

	bookings, err := store.LoadForUser("C100")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b-1", bookings[0].ID)
	assert.Equal(t, "b-3", bookings[1].ID)

	none, err := store.LoadForUser("C999")
	require.NoError(t, err)
	assert.Empty(t, none)
}
