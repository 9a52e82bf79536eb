package models

import "fmt"

// ServiceKind identifies the kind of bookable offering. The set of kinds is
// closed and known at design time, so capability checks hang off the kind tag
// rather than structural probing.
type ServiceKind string

const (
	KindFlight    ServiceKind = "flight"
	KindBus       ServiceKind = "bus"
	KindTrain     ServiceKind = "train"
	KindTrip      ServiceKind = "trip"
	KindHotel     ServiceKind = "hotel"
	KindHomestay  ServiceKind = "homestay"
	KindFarmhouse ServiceKind = "farmhouse"
)

// AllKinds lists every service kind in display order.
var AllKinds = []ServiceKind{
	KindFlight, KindBus, KindTrain, KindTrip, KindHotel, KindHomestay, KindFarmhouse,
}

// ParseServiceKind converts a user-supplied string into a ServiceKind
func ParseServiceKind(s string) (ServiceKind, error) {
	kind := ServiceKind(s)
	switch kind {
	case KindFlight, KindBus, KindTrain, KindTrip, KindHotel, KindHomestay, KindFarmhouse:
		return kind, nil
	}
	return "", fmt.Errorf("unknown service kind: %s", s)
}

// HasSeats reports whether offerings of this kind carry a seat count
func (k ServiceKind) HasSeats() bool {
	return k == KindFlight || k == KindBus || k == KindTrain
}

// HasRooms reports whether offerings of this kind carry a room count
func (k ServiceKind) HasRooms() bool {
	return k == KindHotel
}

// HasCapacity reports whether offerings of this kind have bookable units.
// Kinds without capacity are booked as a single unit per reservation.
func (k ServiceKind) HasCapacity() bool {
	return k.HasSeats() || k.HasRooms()
}

// HasContact reports whether offerings of this kind carry a contact string
func (k ServiceKind) HasContact() bool {
	return k == KindHotel || k == KindHomestay || k == KindFarmhouse
}

// IsStay reports whether this kind is a stay rather than transport or a trip
func (k ServiceKind) IsStay() bool {
	return k == KindHotel || k == KindHomestay || k == KindFarmhouse
}

// Label returns the capitalized tag used in offering summaries
func (k ServiceKind) Label() string {
	switch k {
	case KindFlight:
		return "Flight"
	case KindBus:
		return "Bus"
	case KindTrain:
		return "Train"
	case KindTrip:
		return "Trip"
	case KindHotel:
		return "Hotel"
	case KindHomestay:
		return "Homestay"
	case KindFarmhouse:
		return "Farmhouse"
	}
	return string(k)
}
