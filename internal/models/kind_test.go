package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseServiceKind(t *testing.T) {
	for _, kind := range AllKinds {
		parsed, err := ParseServiceKind(string(kind))
		assert.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := ParseServiceKind("cruise")
	assert.Error(t, err)
}

func TestKindCapabilities(t *testing.T) {
	tests := []struct {
		kind        ServiceKind
		hasSeats    bool
		hasRooms    bool
		hasContact  bool
		hasCapacity bool
	}{
		{KindFlight, true, false, false, true},
		{KindBus, true, false, false, true},
		{KindTrain, true, false, false, true},
		{KindTrip, false, false, false, false},
		{KindHotel, false, true, true, true},
		{KindHomestay, false, false, true, false},
		{KindFarmhouse, false, false, true, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.hasSeats, tt.kind.HasSeats(), "%s HasSeats", tt.kind)
		assert.Equal(t, tt.hasRooms, tt.kind.HasRooms(), "%s HasRooms", tt.kind)
		assert.Equal(t, tt.hasContact, tt.kind.HasContact(), "%s HasContact", tt.kind)
		assert.Equal(t, tt.hasCapacity, tt.kind.HasCapacity(), "%s HasCapacity", tt.kind)
	}
}

func TestKindLabel(t *testing.T) {
	assert.Equal(t, "Flight", KindFlight.Label())
	assert.Equal(t, "Farmhouse", KindFarmhouse.Label())
}
