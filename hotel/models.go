package hotel

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	ErrInvalidEmail     = errors.New("invalid email")
	ErrInvalidRoomType  = errors.New("invalid room type")
	ErrInvalidPrice     = errors.New("invalid room price")
	ErrInvalidDate      = errors.New("invalid date")
	ErrRoomNotFound     = errors.New("room not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrRoomUnavailable  = errors.New("room not available for the requested dates")
)

// emailPattern requires a non-empty local part, domain and tld.
var emailPattern = regexp.MustCompile(`^(.+)@(.+)\.(.+)$`)

// Customer is a registered hotel guest. The email is the identity.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// NewCustomer validates the email and builds the customer.
func NewCustomer(email, firstName, lastName string) (Customer, error) {
	if !ValidEmail(email) {
		return Customer{}, fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return Customer{FirstName: firstName, LastName: lastName, Email: email}, nil
}

// ValidEmail reports whether email looks like local@domain.tld.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func (c Customer) String() string {
	return fmt.Sprintf("First Name: %s Last Name: %s Email: %s", c.FirstName, c.LastName, c.Email)
}

// RoomType is the bed configuration of a room.
type RoomType int

const (
	Single RoomType = iota + 1
	Double
)

func (t RoomType) String() string {
	switch t {
	case Single:
		return "SINGLE"
	case Double:
		return "DOUBLE"
	default:
		return fmt.Sprintf("RoomType(%d)", int(t))
	}
}

// Label is the menu token for the type: "1" for single, "2" for double.
func (t RoomType) Label() string {
	switch t {
	case Single:
		return "1"
	case Double:
		return "2"
	default:
		return ""
	}
}

func (t RoomType) Valid() bool { return t == Single || t == Double }

func (t RoomType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRoomType, int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText accepts both the names (SINGLE, DOUBLE) and the menu labels (1, 2).
func (t *RoomType) UnmarshalText(b []byte) error {
	switch s := string(b); s {
	case "SINGLE", "1":
		*t = Single
	case "DOUBLE", "2":
		*t = Double
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRoomType, s)
	}
	return nil
}

// Room is identified by its number; two rooms with the same number are the same room.
type Room struct {
	Number string   `json:"roomNumber"`
	Price  float64  `json:"price"`
	Type   RoomType `json:"roomType"`
}

// Equal compares rooms by number only.
func (r Room) Equal(other Room) bool { return r.Number == other.Number }

func (r Room) String() string {
	return fmt.Sprintf("Room Number: %s Price: $%.2f Type: %s", r.Number, r.Price, r.Type)
}

// Reservation books a room for a customer over [CheckIn, CheckOut).
// Customer is nil when the booking was made for an email that is not registered.
type Reservation struct {
	ID       string    `json:"id"`
	Customer *Customer `json:"customer"`
	Room     Room      `json:"room"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

// CustomerEmail returns the grouping key of the reservation.
func (r Reservation) CustomerEmail() string {
	if r.Customer == nil {
		return ""
	}
	return r.Customer.Email
}

func (r Reservation) String() string {
	customer := "unknown"
	if r.Customer != nil {
		customer = r.Customer.String()
	}
	return fmt.Sprintf("Reservation: %s\nCustomer: %s\nRoom: %s\nCheckIn Date: %s\nCheckOut Date: %s",
		r.ID, customer, r.Room, FormatDate(r.CheckIn), FormatDate(r.CheckOut))
}
