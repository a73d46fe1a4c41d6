package domain

import "time"

// Role determines which slice of platform data a user sees and which
// actions are offered to them.
type Role string

const (
	RoleDonor         Role = "donor"
	RoleRequester     Role = "requester"
	RoleAdministrator Role = "administrator"
)

func (r Role) Valid() bool {
	switch r {
	case RoleDonor, RoleRequester, RoleAdministrator:
		return true
	}
	return false
}

// Coordinates is a geographic point kept alongside a postal address.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a postal address with optional coordinates.
type Location struct {
	Address     string       `json:"address,omitempty"`
	City        string       `json:"city,omitempty"`
	State       string       `json:"state,omitempty"`
	Zip         string       `json:"zip,omitempty"`
	Country     string       `json:"country,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// IsZero reports whether no address field is set. Coordinates alone do not
// make a usable request location.
func (l Location) IsZero() bool {
	return l.Address == "" && l.City == "" && l.State == "" && l.Zip == "" && l.Country == ""
}

// PlaceholderLocation is attached to created blood requests when the
// requester has no stored location.
var PlaceholderLocation = Location{
	City:    "Unknown",
	Country: "Unknown",
}

// User represents an authenticated identity resolved through the session
// provider.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         Role       `json:"role"`
	Phone        string     `json:"phone,omitempty"`
	BloodType    BloodType  `json:"blood_type,omitempty"`
	Location     *Location  `json:"location,omitempty"`
	LastDonation *time.Time `json:"last_donation,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// RequestLocation returns the location to attach to a request created by
// this user, falling back to PlaceholderLocation.
func (u *User) RequestLocation() Location {
	if u == nil || u.Location == nil || u.Location.IsZero() {
		return PlaceholderLocation
	}
	return *u.Location
}
