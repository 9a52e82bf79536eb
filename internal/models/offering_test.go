package models

import (
	"errors"
	"testing"

	"fjacquet/bookctl/internal/bookingerror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferingReserveDecrementsSeats(t *testing.T) {
	o := &Offering{
		Kind:  KindFlight,
		ID:    "F100",
		Price: decimal.RequireFromString("2500.00"),
		Seats: 5,
	}

	err := o.Reserve(3)
	require.NoError(t, err)
	assert.Equal(t, 2, o.Seats)
	assert.Equal(t, 2, o.Available())
}

func TestOfferingReserveInsufficientCapacity(t *testing.T) {
	o := &Offering{Kind: KindHotel, ID: "H200", Rooms: 2}

	err := o.Reserve(3)
	require.Error(t, err)

	var capErr *bookingerror.InsufficientCapacityError
	require.True(t, errors.As(err, &capErr))
	assert.Equal(t, 3, capErr.Requested)
	assert.Equal(t, 2, capErr.Available)

	// Failed reservation leaves capacity unchanged
	assert.Equal(t, 2, o.Rooms)
}

func TestOfferingReserveNoCapacityKind(t *testing.T) {
	o := &Offering{Kind: KindTrip, ID: "T300"}
	assert.NoError(t, o.Reserve(99))
	assert.Equal(t, 0, o.Available())
}

func TestOfferingCapacityColumn(t *testing.T) {
	assert.Equal(t, "seats", (&Offering{Kind: KindBus}).CapacityColumn())
	assert.Equal(t, "rooms", (&Offering{Kind: KindHotel}).CapacityColumn())
}

func TestOfferingInfo(t *testing.T) {
	price := decimal.RequireFromString("2500")

	flight := &Offering{
		Kind: KindFlight, Name: "AirIndia 101", Origin: "Delhi",
		Destination: "Mumbai", Date: "2026-03-15", Price: price, Seats: 5,
	}
	assert.Equal(t,
		"[Flight] AirIndia 101 | Delhi to Mumbai | Date: 2026-03-15 | ₹2500.00 | Seats: 5",
		flight.Info())

	hotel := &Offering{
		Kind: KindHotel, Name: "Taj Palace", Origin: "Mumbai",
		Date: "2026-03-15", Price: price, Contact: "022-555", Rooms: 3,
	}
	assert.Equal(t,
		"[Hotel] Taj Palace | Mumbai | Date: 2026-03-15 | ₹2500.00 | Contact: 022-555 | Rooms: 3",
		hotel.Info())

	homestay := &Offering{
		Kind: KindHomestay, Name: "Hillside", Origin: "Manali",
		Date: "2026-03-15", Price: price, Contact: "98-555",
	}
	assert.Equal(t,
		"[Homestay] Hillside | Manali | Date: 2026-03-15 | ₹2500.00 | Contact: 98-555",
		homestay.Info())

	trip := &Offering{
		Kind: KindTrip, Name: "Golden Triangle", Origin: "Delhi",
		Destination: "Jaipur", Date: "2026-03-15", Price: price,
	}
	assert.Equal(t,
		"[Trip] Golden Triangle | Delhi to Jaipur | Date: 2026-03-15 | ₹2500.00",
		trip.Info())

	// Determinism: repeated calls yield identical output
	assert.Equal(t, flight.Info(), flight.Info())
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin", "C100"))
	assert.Equal(t, RoleCustomer, ParseRole("customer", "A001"))

	// Empty or unknown role falls back to the legacy prefix convention
	assert.Equal(t, RoleAdmin, ParseRole("", "A001"))
	assert.Equal(t, RoleCustomer, ParseRole("", "C100"))
	assert.Equal(t, RoleCustomer, ParseRole("owner", "C100"))
}

func TestNewBookingIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewBookingID()
		assert.False(t, seen[id], "booking IDs must not collide")
		seen[id] = true
	}
}
