package booking_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"fjacquet/bookctl/internal/booking"
	"fjacquet/bookctl/internal/bookingerror"
	"fjacquet/bookctl/internal/ledger"
	"fjacquet/bookctl/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlight(seats int) *models.Offering {
	return &models.Offering{
		Kind:        models.KindFlight,
		ID:          "F100",
		Name:        "AirIndia 101",
		Origin:      "Delhi",
		Destination: "Mumbai",
		Date:        "2026-03-15",
		Price:       decimal.RequireFromString("2500.00"),
		Seats:       seats,
	}
}

func TestReserveDecrementsAndPrices(t *testing.T) {
	engine := booking.NewEngine(nil, &bytes.Buffer{})
	user := &models.User{ID: "C100", Name: "Asha", Role: models.RoleCustomer}
	flight := newFlight(5)

	b, err := engine.Reserve(user, flight, 3)
	require.NoError(t, err)

	assert.True(t, b.TotalPrice.Equal(decimal.RequireFromString("7500.00")),
		"totalPrice must be price times quantity, got %s", b.TotalPrice)
	assert.Equal(t, 2, flight.Seats)
	assert.Equal(t, 3, b.Quantity)
	assert.Equal(t, "C100", b.UserID)
	assert.NotEmpty(t, b.ID)

	// Booking lands in the user's in-session history
	require.Len(t, user.Bookings, 1)
	assert.Equal(t, b, user.Bookings[0])
}

func TestReserveInsufficientCapacityIsIdempotent(t *testing.T) {
	engine := booking.NewEngine(nil, &bytes.Buffer{})
	user := &models.User{ID: "C100", Name: "Asha"}
	flight := newFlight(5)

	_, err := engine.Reserve(user, flight, 3)
	require.NoError(t, err)
	require.Equal(t, 2, flight.Seats)

	// Second reservation for 3 exceeds the remaining 2 seats
	_, err = engine.Reserve(user, flight, 3)
	require.Error(t, err)

	var capErr *bookingerror.InsufficientCapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 3, capErr.Requested)
	assert.Equal(t, 2, capErr.Available)

	// Failed attempt leaves capacity and history unchanged
	assert.Equal(t, 2, flight.Seats)
	assert.Len(t, user.Bookings, 1)
}

func TestReserveInvalidQuantity(t *testing.T) {
	engine := booking.NewEngine(nil, &bytes.Buffer{})
	user := &models.User{ID: "C100", Name: "Asha"}
	flight := newFlight(5)

	for _, qty := range []int{0, -2} {
		_, err := engine.Reserve(user, flight, qty)
		assert.Error(t, err, "quantity %d", qty)
	}
	assert.Equal(t, 5, flight.Seats)
}

func TestReserveTripForcesSingleUnit(t *testing.T) {
	engine := booking.NewEngine(nil, &bytes.Buffer{})
	user := &models.User{ID: "C100", Name: "Asha"}
	trip := &models.Offering{
		Kind:  models.KindTrip,
		ID:    "T300",
		Name:  "Golden Triangle",
		Price: decimal.RequireFromString("9000.00"),
	}

	b, err := engine.Reserve(user, trip, 7)
	require.NoError(t, err)

	// No capacity concept: quantity forced to 1, total equals the unit price
	assert.Equal(t, 1, b.Quantity)
	assert.True(t, b.TotalPrice.Equal(trip.Price))
}

func TestReservePersistsToLedger(t *testing.T) {
	store := ledger.NewStore(filepath.Join(t.TempDir(), "bookings.yaml"))
	engine := booking.NewEngine(store, &bytes.Buffer{})
	user := &models.User{ID: "C100", Name: "Asha"}

	b, err := engine.Reserve(user, newFlight(5), 2)
	require.NoError(t, err)

	recorded, err := store.LoadForUser("C100")
	require.NoError(t, err)
	require.Len(t, recorded, 1)
	assert.Equal(t, b.ID, recorded[0].ID)
	assert.True(t, recorded[0].TotalPrice.Equal(decimal.RequireFromString("5000.00")))
}

func TestPayAndNotifyEmitToConsole(t *testing.T) {
	var out bytes.Buffer
	engine := booking.NewEngine(nil, &out)
	user := &models.User{ID: "C100", Name: "Asha"}

	b, err := engine.Reserve(user, newFlight(5), 2)
	require.NoError(t, err)

	payment := engine.Pay(b, b.TotalPrice)
	assert.Equal(t, b.ID, payment.BookingID)
	assert.True(t, payment.Amount.Equal(b.TotalPrice))
	assert.False(t, payment.PaidAt.IsZero())

	notification := engine.Notify(user, "Your booking is confirmed!")
	assert.Equal(t, "C100", notification.UserID)

	output := out.String()
	assert.Contains(t, output, "Booking made successfully for Asha.")
	assert.Contains(t, output, "Payment of ₹5000.00 successful")
	assert.Contains(t, output, "[Notification to Asha] Your booking is confirmed!")
}
