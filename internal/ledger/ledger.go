// Package ledger persists booking history to a YAML file under the data
// directory, so history survives process exit.
package ledger

import (
	"fmt"
	"os"
	"time"

	"fjacquet/bookctl/internal/fileutils"
	"fjacquet/bookctl/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// entry is the YAML representation of a booking. Decimal amounts are stored
// as strings to keep the file human-readable and precision-exact.
type entry struct {
	ID          string    `yaml:"id"`
	UserID      string    `yaml:"user_id"`
	ServiceID   string    `yaml:"service_id"`
	ServiceName string    `yaml:"service_name"`
	Kind        string    `yaml:"kind"`
	Quantity    int       `yaml:"quantity"`
	UnitPrice   string    `yaml:"unit_price"`
	TotalPrice  string    `yaml:"total_price"`
	CreatedAt   time.Time `yaml:"created_at"`
}

// Store manages the booking ledger file
type Store struct {
	Path string
}

// NewStore creates a ledger store backed by the given YAML file
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// LoadAll returns every recorded booking in append order. A missing ledger
// file is an empty history, not an error.
func (s *Store) LoadAll() ([]models.Booking, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return []models.Booking{}, nil
		}
		return nil, fmt.Errorf("error reading ledger file: %w", err)
	}

	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing ledger file: %w", err)
	}

	bookings := make([]models.Booking, 0, len(entries))
	for _, e := range entries {
		booking, err := e.toBooking()
		if err != nil {
			log.WithError(err).WithField("booking", e.ID).Warn("Skipping unreadable ledger entry")
			continue
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

// LoadForUser returns the bookings recorded for one user, in append order
func (s *Store) LoadForUser(userID string) ([]models.Booking, error) {
	all, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	for _, b := range all {
		if b.UserID == userID {
			bookings = append(bookings, b)
		}
	}
	return bookings, nil
}

// Append records one booking at the end of the ledger and atomically
// rewrites the file.
func (s *Store) Append(booking models.Booking) error {
	all, err := s.LoadAll()
	if err != nil {
		return err
	}
	all = append(all, booking)

	entries := make([]entry, 0, len(all))
	for _, b := range all {
		entries = append(entries, fromBooking(b))
	}

	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("error marshaling ledger: %w", err)
	}

	if err := fileutils.WriteFileAtomic(s.Path, data, 0644); err != nil {
		return fmt.Errorf("error writing ledger file: %w", err)
	}

	log.WithFields(logrus.Fields{
		"booking": booking.ID,
		"user":    booking.UserID,
	}).Debug("Recorded booking in ledger")
	return nil
}

func fromBooking(b models.Booking) entry {
	return entry{
		ID:          b.ID,
		UserID:      b.UserID,
		ServiceID:   b.ServiceID,
		ServiceName: b.ServiceName,
		Kind:        string(b.Kind),
		Quantity:    b.Quantity,
		UnitPrice:   b.UnitPrice.String(),
		TotalPrice:  b.TotalPrice.String(),
		CreatedAt:   b.CreatedAt,
	}
}

func (e entry) toBooking() (models.Booking, error) {
	unit, err := decimal.NewFromString(e.UnitPrice)
	if err != nil {
		return models.Booking{}, fmt.Errorf("invalid unit price '%s': %w", e.UnitPrice, err)
	}
	total, err := decimal.NewFromString(e.TotalPrice)
	if err != nil {
		return models.Booking{}, fmt.Errorf("invalid total price '%s': %w", e.TotalPrice, err)
	}
	return models.Booking{
		ID:          e.ID,
		UserID:      e.UserID,
		ServiceID:   e.ServiceID,
		ServiceName: e.ServiceName,
		Kind:        models.ServiceKind(e.Kind),
		Quantity:    e.Quantity,
		UnitPrice:   unit,
		TotalPrice:  total,
		CreatedAt:   e.CreatedAt,
	}, nil
}
