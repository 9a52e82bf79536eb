package models

// CSV row structs mapped with gocsv tags. All values stay strings at this
// layer; the catalog loader and directory own the numeric coercion so a bad
// cell surfaces as a MalformedRowError instead of a decode panic.

// TransportRow is a row of flights.csv, buses.csv or trains.csv
type TransportRow struct {
	ServiceID   string `csv:"service_id"`
	ServiceName string `csv:"service_name"`
	Origin      string `csv:"origin"`
	Destination string `csv:"destination"`
	Date        string `csv:"date"`
	Price       string `csv:"price"`
	Seats       string `csv:"seats"`
}

// TripRow is a row of trips.csv
type TripRow struct {
	ServiceID   string `csv:"service_id"`
	ServiceName string `csv:"service_name"`
	Origin      string `csv:"origin"`
	Destination string `csv:"destination"`
	Date        string `csv:"date"`
	Price       string `csv:"price"`
}

// HotelRow is a row of hotels.csv
type HotelRow struct {
	ServiceID   string `csv:"service_id"`
	ServiceName string `csv:"service_name"`
	Origin      string `csv:"origin"`
	Destination string `csv:"destination"`
	Date        string `csv:"date"`
	Price       string `csv:"price"`
	Contact     string `csv:"contact"`
	Rooms       string `csv:"rooms"`
}

// StayRow is a row of homestays.csv or farmhouses.csv
type StayRow struct {
	ServiceID   string `csv:"service_id"`
	ServiceName string `csv:"service_name"`
	Origin      string `csv:"origin"`
	Destination string `csv:"destination"`
	Date        string `csv:"date"`
	Price       string `csv:"price"`
	Contact     string `csv:"contact"`
}

// UserRow is a row of users.csv. Role is optional on read for rows written
// before the column existed.
type UserRow struct {
	UserID   string `csv:"user_id"`
	Name     string `csv:"name"`
	Email    string `csv:"email"`
	Password string `csv:"password"`
	Role     string `csv:"role"`
}
