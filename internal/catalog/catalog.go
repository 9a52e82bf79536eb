// Package catalog loads typed offerings from the per-kind CSV resources.
package catalog

import (
	"errors"
	"path/filepath"
	"strconv"

	"fjacquet/bookctl/internal/bookingerror"
	"fjacquet/bookctl/internal/common"
	"fjacquet/bookctl/internal/dateutils"
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

// resourceFiles maps each service kind to its backing CSV file name
var resourceFiles = map[models.ServiceKind]string{
	models.KindFlight:    "flights.csv",
	models.KindBus:       "buses.csv",
	models.KindTrain:     "trains.csv",
	models.KindTrip:      "trips.csv",
	models.KindHotel:     "hotels.csv",
	models.KindHomestay:  "homestays.csv",
	models.KindFarmhouse: "farmhouses.csv",
}

// transportSchema is shared by flights, buses and trains
var transportSchema = []string{"service_id", "service_name", "origin", "destination", "date", "price", "seats"}

// schemas holds the ordered header per kind, used for admin row addition
var schemas = map[models.ServiceKind][]string{
	models.KindFlight:    transportSchema,
	models.KindBus:       transportSchema,
	models.KindTrain:     transportSchema,
	models.KindTrip:      {"service_id", "service_name", "origin", "destination", "date", "price"},
	models.KindHotel:     {"service_id", "service_name", "origin", "destination", "date", "price", "contact", "rooms"},
	models.KindHomestay:  {"service_id", "service_name", "origin", "destination", "date", "price", "contact"},
	models.KindFarmhouse: {"service_id", "service_name", "origin", "destination", "date", "price", "contact"},
}

// Schema returns the ordered column names for a kind's resource
func Schema(kind models.ServiceKind) []string {
	return schemas[kind]
}

// Loader reads offerings from CSV resources under a data directory. Each
// call produces a fresh, disposable slice; nothing is cached across calls.
type Loader struct {
	dir string
}

// NewLoader creates a Loader rooted at the given data directory
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// ResourcePath returns the path of the CSV file backing a kind
func (l *Loader) ResourcePath(kind models.ServiceKind) string {
	return filepath.Join(l.dir, resourceFiles[kind])
}

// LoadOfferings decodes all rows of a kind's resource into offerings.
// A missing resource yields an empty slice with a logged warning. A row whose
// price, seats or rooms cannot parse is excluded with a logged warning; one
// bad row never takes down the whole catalog view.
func (l *Loader) LoadOfferings(kind models.ServiceKind) ([]models.Offering, error) {
	path := l.ResourcePath(kind)

	switch {
	case kind.HasSeats():
		rows, err := common.ReadCSVFile[models.TransportRow](path)
		if err != nil {
			return emptyOnNotFound(err, path)
		}
		return decodeRows(path, rows, func(row models.TransportRow, line int) (models.Offering, error) {
			return decodeTransport(kind, path, row, line)
		}), nil
	case kind == models.KindTrip:
		rows, err := common.ReadCSVFile[models.TripRow](path)
		if err != nil {
			return emptyOnNotFound(err, path)
		}
		return decodeRows(path, rows, func(row models.TripRow, line int) (models.Offering, error) {
			return decodeTrip(path, row, line)
		}), nil
	case kind == models.KindHotel:
		rows, err := common.ReadCSVFile[models.HotelRow](path)
		if err != nil {
			return emptyOnNotFound(err, path)
		}
		return decodeRows(path, rows, func(row models.HotelRow, line int) (models.Offering, error) {
			return decodeHotel(path, row, line)
		}), nil
	default:
		rows, err := common.ReadCSVFile[models.StayRow](path)
		if err != nil {
			return emptyOnNotFound(err, path)
		}
		return decodeRows(path, rows, func(row models.StayRow, line int) (models.Offering, error) {
			return decodeStay(kind, path, row, line)
		}), nil
	}
}

// emptyOnNotFound recovers a missing resource as an empty catalog
func emptyOnNotFound(err error, path string) ([]models.Offering, error) {
	var notFound *bookingerror.NotFoundError
	if errors.As(err, &notFound) {
		log.WithField("resource", path).Warn("Catalog resource not found, returning empty catalog")
		return []models.Offering{}, nil
	}
	return nil, err
}

// decodeRows applies a per-row decoder, excluding rows that fail to decode
func decodeRows[TRow any](path string, rows []TRow, decode func(TRow, int) (models.Offering, error)) []models.Offering {
	offerings := make([]models.Offering, 0, len(rows))
	for i, row := range rows {
		// Line numbers are 1-based and account for the header
		offering, err := decode(row, i+2)
		if err != nil {
			log.WithError(err).WithField("resource", path).Warn("Excluding malformed catalog row")
			continue
		}
		offerings = append(offerings, offering)
	}
	return offerings
}

func decodeTransport(kind models.ServiceKind, path string, row models.TransportRow, line int) (models.Offering, error) {
	price, err := parsePrice(path, line, row.Price)
	if err != nil {
		return models.Offering{}, err
	}
	seats, err := parseCount(path, line, "seats", row.Seats)
	if err != nil {
		return models.Offering{}, err
	}
	return models.Offering{
		Kind:        kind,
		ID:          row.ServiceID,
		Name:        row.ServiceName,
		Origin:      row.Origin,
		Destination: row.Destination,
		Date:        dateutils.NormalizeDate(row.Date),
		Price:       price,
		Seats:       seats,
	}, nil
}

func decodeTrip(path string, row models.TripRow, line int) (models.Offering, error) {
	price, err := parsePrice(path, line, row.Price)
	if err != nil {
		return models.Offering{}, err
	}
	return models.Offering{
		Kind:        models.KindTrip,
		ID:          row.ServiceID,
		Name:        row.ServiceName,
		Origin:      row.Origin,
		Destination: row.Destination,
		Date:        dateutils.NormalizeDate(row.Date),
		Price:       price,
	}, nil
}

func decodeHotel(path string, row models.HotelRow, line int) (models.Offering, error) {
	price, err := parsePrice(path, line, row.Price)
	if err != nil {
		return models.Offering{}, err
	}
	rooms, err := parseCount(path, line, "rooms", row.Rooms)
	if err != nil {
		return models.Offering{}, err
	}
	return models.Offering{
		Kind:        models.KindHotel,
		ID:          row.ServiceID,
		Name:        row.ServiceName,
		Origin:      row.Origin,
		Destination: row.Destination,
		Date:        dateutils.NormalizeDate(row.Date),
		Price:       price,
		Contact:     row.Contact,
		Rooms:       rooms,
	}, nil
}

func decodeStay(kind models.ServiceKind, path string, row models.StayRow, line int) (models.Offering, error) {
	price, err := parsePrice(path, line, row.Price)
	if err != nil {
		return models.Offering{}, err
	}
	return models.Offering{
		Kind:        kind,
		ID:          row.ServiceID,
		Name:        row.ServiceName,
		Origin:      row.Origin,
		Destination: row.Destination,
		Date:        dateutils.NormalizeDate(row.Date),
		Price:       price,
		Contact:     row.Contact,
	}, nil
}

func parsePrice(path string, line int, value string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, &bookingerror.MalformedRowError{
			Resource: path, Line: line, Field: "price", Value: value, Err: err,
		}
	}
	if price.IsNegative() {
		return decimal.Zero, &bookingerror.MalformedRowError{
			Resource: path, Line: line, Field: "price", Value: value,
			Err: errors.New("price must not be negative"),
		}
	}
	return price, nil
}

func parseCount(path string, line int, field, value string) (int, error) {
	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, &bookingerror.MalformedRowError{
			Resource: path, Line: line, Field: field, Value: value, Err: err,
		}
	}
	if count < 0 {
		return 0, &bookingerror.MalformedRowError{
			Resource: path, Line: line, Field: field, Value: value,
			Err: errors.New("count must not be negative"),
		}
	}
	return count, nil
}
