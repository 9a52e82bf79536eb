package models

import (
	"fmt"

	"fjacquet/bookctl/internal/bookingerror"

	"github.com/shopspring/decimal"
)

// Offering is a bookable item: transport, trip or stay. A single struct with
// a kind tag replaces the subclass hierarchy of the system this replaces;
// capability methods on ServiceKind decide which fields are meaningful.
//
// Invariants: Seats and Rooms never go below zero; Price is set at decode
// time and never mutated afterwards.
type Offering struct {
	Kind        ServiceKind
	ID          string
	Name        string
	Origin      string
	Destination string
	Date        string
	Price       decimal.Decimal
	Seats       int    // transport kinds only
	Rooms       int    // hotel only
	Contact     string // stay kinds only
}

// Available returns the remaining bookable units, or 0 for kinds without a
// capacity concept.
func (o *Offering) Available() int {
	switch {
	case o.Kind.HasSeats():
		return o.Seats
	case o.Kind.HasRooms():
		return o.Rooms
	}
	return 0
}

// Reserve decrements the in-memory capacity by quantity. The caller persists
// the new count separately. Fails without mutation when quantity exceeds the
// available units.
func (o *Offering) Reserve(quantity int) error {
	if !o.Kind.HasCapacity() {
		return nil
	}
	available := o.Available()
	if quantity > available {
		return &bookingerror.InsufficientCapacityError{
			OfferingID: o.ID,
			Requested:  quantity,
			Available:  available,
		}
	}
	if o.Kind.HasSeats() {
		o.Seats -= quantity
	} else {
		o.Rooms -= quantity
	}
	return nil
}

// CapacityColumn returns the CSV column holding this offering's capacity.
// Only meaningful for kinds where HasCapacity is true.
func (o *Offering) CapacityColumn() string {
	if o.Kind.HasRooms() {
		return "rooms"
	}
	return "seats"
}

// Info produces the one-line human-readable summary shown in catalog
// listings. Field set and order depend on the kind; the output is
// deterministic for a given offering.
func (o *Offering) Info() string {
	switch {
	case o.Kind.HasSeats():
		return fmt.Sprintf("[%s] %s | %s to %s | Date: %s | ₹%s | Seats: %d",
			o.Kind.Label(), o.Name, o.Origin, o.Destination, o.Date,
			o.Price.StringFixed(2), o.Seats)
	case o.Kind.HasRooms():
		return fmt.Sprintf("[%s] %s | %s | Date: %s | ₹%s | Contact: %s | Rooms: %d",
			o.Kind.Label(), o.Name, o.Origin, o.Date,
			o.Price.StringFixed(2), o.Contact, o.Rooms)
	case o.Kind.HasContact():
		return fmt.Sprintf("[%s] %s | %s | Date: %s | ₹%s | Contact: %s",
			o.Kind.Label(), o.Name, o.Origin, o.Date,
			o.Price.StringFixed(2), o.Contact)
	}
	return fmt.Sprintf("[%s] %s | %s to %s | Date: %s | ₹%s",
		o.Kind.Label(), o.Name, o.Origin, o.Destination, o.Date,
		o.Price.StringFixed(2))
}
