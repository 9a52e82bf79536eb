package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking records a confirmed reservation. Immutable once created. The
// offering fields are a snapshot taken at reservation time, not a live
// reference, so history stays readable after catalog rows change.
type Booking struct {
	ID          string
	UserID      string
	ServiceID   string
	ServiceName string
	Kind        ServiceKind
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time
}

// NewBookingID returns a collision-resistant opaque booking identifier.
// Replaces the second-resolution timestamp IDs of the system this replaces,
// which could silently collide under rapid sequential bookings.
func NewBookingID() string {
	return uuid.NewString()
}

// String renders the booking for history listings
func (b *Booking) String() string {
	return fmt.Sprintf("BookingID: %s, Service: [%s] %s, Quantity: %d, Total: ₹%s, Date: %s",
		b.ID, b.Kind.Label(), b.ServiceName, b.Quantity,
		b.TotalPrice.StringFixed(2), b.CreatedAt.Format("2006-01-02 15:04:05"))
}

// Payment records a completed payment for a booking. A side-effecting action
// rather than a stored ledger entry; no gateway failure is modeled.
type Payment struct {
	ID        string
	BookingID string
	Amount    decimal.Decimal
	PaidAt    time.Time
}

// NewPayment creates a timestamped payment record for a booking
func NewPayment(booking *Booking, amount decimal.Decimal) Payment {
	return Payment{
		ID:        uuid.NewString(),
		BookingID: booking.ID,
		Amount:    amount,
		PaidAt:    time.Now(),
	}
}

// Notification is a message addressed to a user, emitted on the console
type Notification struct {
	UserID  string
	Message string
}
