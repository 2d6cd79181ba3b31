package hotel

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultWindowDays is how far the alternative window is shifted from the requested dates.
const DefaultWindowDays = 7

// Ledger stores rooms and reservations and answers availability queries.
//
// Reserve never checks for overlapping reservations: callers are expected to
// consult AvailableRooms first. Two callers racing between that check and
// Reserve can double-book a room. ReserveIfAvailable performs the check and
// the insert as one step for callers that need it.
type Ledger interface {
	AddRoom(room Room) error
	GetRoom(number string) (Room, bool, error)
	AllRooms() ([]Room, error)

	Reserve(customer *Customer, room Room, checkIn, checkOut time.Time) (Reservation, error)
	ReserveIfAvailable(customer *Customer, room Room, checkIn, checkOut time.Time) (Reservation, error)
	ReservationsFor(customer *Customer) ([]Reservation, error)
	AllReservations() ([]Reservation, error)

	AvailableRooms(checkIn, checkOut time.Time) ([]Room, error)
	AlternativeRooms(checkIn, checkOut time.Time) ([]Room, error)

	Close() error
}

// ShiftByDefaultWindow moves a date forward by DefaultWindowDays calendar days.
func ShiftByDefaultWindow(date time.Time) time.Time {
	return date.AddDate(0, 0, DefaultWindowDays)
}

// Overlaps reports whether r intersects [checkIn, checkOut). Touching
// endpoints do not overlap, so back-to-back stays are allowed.
func Overlaps(r Reservation, checkIn, checkOut time.Time) bool {
	return checkIn.Before(r.CheckOut) && checkOut.After(r.CheckIn)
}

// availableRooms is every room minus the rooms of overlapping reservations.
func availableRooms(rooms []Room, reservations []Reservation, checkIn, checkOut time.Time) []Room {
	taken := make(map[string]struct{})
	for _, r := range reservations {
		if Overlaps(r, checkIn, checkOut) {
			taken[r.Room.Number] = struct{}{}
		}
	}

	free := make([]Room, 0, len(rooms))
	for _, room := range rooms {
		if _, ok := taken[room.Number]; !ok {
			free = append(free, room)
		}
	}
	return free
}

func newReservation(customer *Customer, room Room, checkIn, checkOut time.Time) Reservation {
	return Reservation{
		ID:       uuid.NewString(),
		Customer: cloneCustomer(customer),
		Room:     room,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
}

func cloneCustomer(c *Customer) *Customer {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

// clone detaches the reservation from the customer the ledger holds.
func (r Reservation) clone() Reservation {
	r.Customer = cloneCustomer(r.Customer)
	return r
}

func sortRooms(rooms []Room) {
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Number < rooms[j].Number })
}

// MemoryLedger keeps rooms and reservations in maps for the life of the process.
type MemoryLedger struct {
	mu           sync.RWMutex
	rooms        map[string]Room
	reservations map[string][]Reservation // by customer email, insertion order
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		rooms:        make(map[string]Room),
		reservations: make(map[string][]Reservation),
	}
}

// AddRoom inserts or replaces the room with the same number.
func (l *MemoryLedger) AddRoom(room Room) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rooms[room.Number] = room
	return nil
}

func (l *MemoryLedger) GetRoom(number string) (Room, bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	room, ok := l.rooms[number]
	return room, ok, nil
}

func (l *MemoryLedger) AllRooms() ([]Room, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.allRoomsUnsafe(), nil
}

func (l *MemoryLedger) Reserve(customer *Customer, room Room, checkIn, checkOut time.Time) (Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.reserveUnsafe(customer, room, checkIn, checkOut), nil
}

func (l *MemoryLedger) ReserveIfAvailable(customer *Customer, room Room, checkIn, checkOut time.Time) (Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range l.allReservationsUnsafe() {
		if r.Room.Equal(room) && Overlaps(r, checkIn, checkOut) {
			return Reservation{}, ErrRoomUnavailable
		}
	}
	return l.reserveUnsafe(customer, room, checkIn, checkOut), nil
}

// ReservationsFor returns the customer's reservations in booking order.
func (l *MemoryLedger) ReservationsFor(customer *Customer) ([]Reservation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	key := ""
	if customer != nil {
		key = customer.Email
	}
	group := l.reservations[key]
	out := make([]Reservation, 0, len(group))
	for _, r := range group {
		out = append(out, r.clone())
	}
	return out, nil
}

func (l *MemoryLedger) AllReservations() ([]Reservation, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.allReservationsUnsafe(), nil
}

func (l *MemoryLedger) AvailableRooms(checkIn, checkOut time.Time) ([]Room, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return availableRooms(l.allRoomsUnsafe(), l.allReservationsUnsafe(), checkIn, checkOut), nil
}

func (l *MemoryLedger) AlternativeRooms(checkIn, checkOut time.Time) ([]Room, error) {
	return l.AvailableRooms(ShiftByDefaultWindow(checkIn), ShiftByDefaultWindow(checkOut))
}

func (l *MemoryLedger) Close() error { return nil }

func (l *MemoryLedger) reserveUnsafe(customer *Customer, room Room, checkIn, checkOut time.Time) Reservation {
	r := newReservation(customer, room, checkIn, checkOut)
	key := r.CustomerEmail()
	l.reservations[key] = append(l.reservations[key], r)
	return r.clone()
}

func (l *MemoryLedger) allRoomsUnsafe() []Room {
	rooms := make([]Room, 0, len(l.rooms))
	for _, room := range l.rooms {
		rooms = append(rooms, room)
	}
	sortRooms(rooms)
	return rooms
}

func (l *MemoryLedger) allReservationsUnsafe() []Reservation {
	emails := make([]string, 0, len(l.reservations))
	for email := range l.reservations {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	all := []Reservation{}
	for _, email := range emails {
		for _, r := range l.reservations[email] {
			all = append(all, r.clone())
		}
	}
	return all
}
