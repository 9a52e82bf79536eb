// Package booking implements the reservation, payment and notification flow.
package booking

import (
	"fmt"
	"io"
	"os"
	"time"

	"fjacquet/bookctl/internal/ledger"
	"fjacquet/bookctl/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Engine runs booking attempts. Reservation mutates inventory and must be
// correct; payment and notification are pure side effects with no invariant,
// so a ledger-write failure after a successful capacity check is logged
// rather than unwinding the reservation.
type Engine struct {
	ledger *ledger.Store
	out    io.Writer
}

// NewEngine creates a booking engine. The ledger may be nil for callers that
// do not persist history; out defaults to stdout.
func NewEngine(store *ledger.Store, out io.Writer) *Engine {
	if out == nil {
		out = os.Stdout
	}
	return &Engine{ledger: store, out: out}
}

// Reserve books quantity units of an offering for a user. Kinds without a
// capacity concept are always booked as a single unit regardless of the
// requested quantity. On success the offering's in-memory capacity is
// decremented and the booking is recorded; the caller persists the new
// capacity to the catalog resource. Never fails once the capacity check has
// passed.
func (e *Engine) Reserve(user *models.User, offering *models.Offering, quantity int) (*models.Booking, error) {
	if !offering.Kind.HasCapacity() {
		quantity = 1
	} else if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}

	if err := offering.Reserve(quantity); err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:          models.NewBookingID(),
		UserID:      user.ID,
		ServiceID:   offering.ID,
		ServiceName: offering.Name,
		Kind:        offering.Kind,
		Quantity:    quantity,
		UnitPrice:   offering.Price,
		TotalPrice:  offering.Price.Mul(decimal.NewFromInt(int64(quantity))),
		CreatedAt:   time.Now(),
	}
	user.AddBooking(booking)

	if e.ledger != nil {
		if err := e.ledger.Append(*booking); err != nil {
			log.WithError(err).WithField("booking", booking.ID).Warn("Failed to record booking in ledger")
		}
	}

	log.WithFields(logrus.Fields{
		"booking":  booking.ID,
		"user":     user.ID,
		"service":  offering.ID,
		"quantity": quantity,
		"total":    booking.TotalPrice.StringFixed(2),
	}).Info("Reservation confirmed")

	fmt.Fprintf(e.out, "Booking made successfully for %s.\n", user.Name)
	return booking, nil
}

// Pay records a payment for a booking. Always succeeds; no payment gateway
// is modeled.
func (e *Engine) Pay(booking *models.Booking, amount decimal.Decimal) models.Payment {
	payment := models.NewPayment(booking, amount)

	log.WithFields(logrus.Fields{
		"payment": payment.ID,
		"booking": booking.ID,
		"amount":  amount.StringFixed(2),
	}).Info("Payment processed")

	fmt.Fprintf(e.out, "Payment of ₹%s successful for booking %s on %s.\n",
		amount.StringFixed(2), booking.ID, payment.PaidAt.Format("2006-01-02 15:04:05"))
	return payment
}

// Notify emits a message to a user on the console. Always succeeds.
func (e *Engine) Notify(user *models.User, message string) models.Notification {
	notification := models.Notification{UserID: user.ID, Message: message}

	log.WithFields(logrus.Fields{
		"user": user.ID,
	}).Debug("Notification sent")

	fmt.Fprintf(e.out, "[Notification to %s] %s\n", user.Name, message)
	return notification
}
