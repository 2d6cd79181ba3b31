package hotel

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Store names accepted by OpenLedger.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// OpenLedger builds the ledger backend named by store.
func OpenLedger(store string) (Ledger, error) {
	switch store {
	case StoreMemory, "":
		return NewMemoryLedger(), nil
	case StoreSQLite:
		return NewDatabase()
	default:
		return nil, fmt.Errorf("unknown store %q, want %q or %q", store, StoreMemory, StoreSQLite)
	}
}

// HotelManager is a thin façade over the customer directory and the ledger,
// keeping caller code simple.
type HotelManager struct {
	customers *CustomerDirectory
	ledger    Ledger
	log       *zap.SugaredLogger
}

func NewHotelManager(customers *CustomerDirectory, ledger Ledger, log *zap.SugaredLogger) *HotelManager {
	return &HotelManager{customers: customers, ledger: ledger, log: log}
}

// Close closes the underlying ledger.
func (hm *HotelManager) Close() error { return hm.ledger.Close() }

// ------------------ Customers ------------------

func (hm *HotelManager) LookupCustomer(email string) (Customer, bool) {
	return hm.customers.GetCustomer(email)
}

func (hm *HotelManager) RegisterCustomer(email, firstName, lastName string) error {
	if err := hm.customers.AddCustomer(email, firstName, lastName); err != nil {
		return err
	}
	hm.log.Infow("customer registered", "email", email)
	return nil
}

func (hm *HotelManager) AllCustomers() []Customer { return hm.customers.AllCustomers() }

// ------------------ Rooms ------------------

func (hm *HotelManager) AddRoom(room Room) error {
	if err := hm.ledger.AddRoom(room); err != nil {
		return err
	}
	hm.log.Infow("room saved", "room", room.Number, "price", room.Price, "type", room.Type.String())
	return nil
}

// AddRooms saves each room in order and stops at the first failure.
func (hm *HotelManager) AddRooms(rooms []Room) error {
	for _, room := range rooms {
		if err := hm.AddRoom(room); err != nil {
			return err
		}
	}
	return nil
}

func (hm *HotelManager) GetRoom(number string) (Room, bool, error) { return hm.ledger.GetRoom(number) }
func (hm *HotelManager) AllRooms() ([]Room, error)                 { return hm.ledger.AllRooms() }

// ------------------ Reservations ------------------

// Book reserves the room for the customer registered under email. An unknown
// email still produces a reservation, with no customer attached. Book does not
// check availability; see FindRooms and BookIfAvailable.
func (hm *HotelManager) Book(email string, room Room, checkIn, checkOut time.Time) (Reservation, error) {
	var customer *Customer
	if c, ok := hm.customers.GetCustomer(email); ok {
		customer = &c
	} else {
		hm.log.Warnw("booking without a registered customer", "email", email, "room", room.Number)
	}

	r, err := hm.ledger.Reserve(customer, room, checkIn, checkOut)
	if err != nil {
		return Reservation{}, err
	}
	hm.logReservation(r)
	return r, nil
}

// BookIfAvailable resolves the customer and room and reserves the room only
// if no existing reservation overlaps the dates.
func (hm *HotelManager) BookIfAvailable(email, roomNumber string, checkIn, checkOut time.Time) (Reservation, error) {
	customer, ok := hm.customers.GetCustomer(email)
	if !ok {
		return Reservation{}, fmt.Errorf("%w: %s", ErrCustomerNotFound, email)
	}
	room, ok, err := hm.ledger.GetRoom(roomNumber)
	if err != nil {
		return Reservation{}, err
	}
	if !ok {
		return Reservation{}, fmt.Errorf("%w: %s", ErrRoomNotFound, roomNumber)
	}

	r, err := hm.ledger.ReserveIfAvailable(&customer, room, checkIn, checkOut)
	if err != nil {
		return Reservation{}, err
	}
	hm.logReservation(r)
	return r, nil
}

// ReservationsOf returns an empty slice when the customer is unknown.
func (hm *HotelManager) ReservationsOf(email string) ([]Reservation, error) {
	customer, ok := hm.customers.GetCustomer(email)
	if !ok {
		return []Reservation{}, nil
	}
	return hm.ledger.ReservationsFor(&customer)
}

func (hm *HotelManager) AllReservations() ([]Reservation, error) { return hm.ledger.AllReservations() }

// ------------------ Availability ------------------

func (hm *HotelManager) FindRooms(checkIn, checkOut time.Time) ([]Room, error) {
	return hm.ledger.AvailableRooms(checkIn, checkOut)
}

func (hm *HotelManager) FindAlternativeRooms(checkIn, checkOut time.Time) ([]Room, error) {
	return hm.ledger.AlternativeRooms(checkIn, checkOut)
}

func (hm *HotelManager) ShiftByDefaultWindow(date time.Time) time.Time {
	return ShiftByDefaultWindow(date)
}

// Availability is the answer to a room search. When Alternative is set the
// rooms are free for the shifted window in CheckIn/CheckOut, not the one asked for.
type Availability struct {
	CheckIn     time.Time `json:"checkIn"`
	CheckOut    time.Time `json:"checkOut"`
	Alternative bool      `json:"alternative"`
	Rooms       []Room    `json:"rooms"`
}

// Search looks for rooms on the requested dates and falls back to the
// alternative window when nothing is free.
func (hm *HotelManager) Search(checkIn, checkOut time.Time) (Availability, error) {
	rooms, err := hm.FindRooms(checkIn, checkOut)
	if err != nil {
		return Availability{}, err
	}
	if len(rooms) > 0 {
		return Availability{CheckIn: checkIn, CheckOut: checkOut, Rooms: rooms}, nil
	}

	rooms, err = hm.FindAlternativeRooms(checkIn, checkOut)
	if err != nil {
		return Availability{}, err
	}
	return Availability{
		CheckIn:     hm.ShiftByDefaultWindow(checkIn),
		CheckOut:    hm.ShiftByDefaultWindow(checkOut),
		Alternative: true,
		Rooms:       rooms,
	}, nil
}

func (hm *HotelManager) logReservation(r Reservation) {
	hm.log.Infow("room reserved",
		"reservation", r.ID,
		"email", r.CustomerEmail(),
		"room", r.Room.Number,
		"checkIn", FormatDate(r.CheckIn),
		"checkOut", FormatDate(r.CheckOut),
	)
}
