package models

import "strings"

// Role distinguishes administrators from customers. It is stored explicitly
// in the user directory; RoleFromUserID exists only for legacy rows written
// before the role column was introduced.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// ParseRole converts a stored role value into a Role, falling back to the
// legacy ID-prefix convention when the value is empty or unknown.
func ParseRole(value, userID string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin
	case RoleCustomer:
		return RoleCustomer
	}
	return RoleFromUserID(userID)
}

// RoleFromUserID infers the role from the historical "A"-prefix convention.
// Kept only for user rows that predate the explicit role column.
func RoleFromUserID(userID string) Role {
	if strings.HasPrefix(userID, "A") {
		return RoleAdmin
	}
	return RoleCustomer
}

// User is a registered account. Passwords are stored and compared in plain
// text, matching the system this replaces.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     Role

	// Bookings holds the bookings made during this session, newest last.
	Bookings []*Booking
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// AddBooking appends a booking to the user's in-session history
func (u *User) AddBooking(b *Booking) {
	u.Bookings = append(u.Bookings, b)
}
