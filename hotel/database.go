package hotel

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Database is a Ledger backed by a private in-memory SQLite database. Nothing
// is written to disk; the data lives as long as the Database is open.
type Database struct {
	db *sql.DB

	addRoomStmt        *sql.Stmt
	addReservationStmt *sql.Stmt
}

// NewDatabase opens an in-memory SQLite database, applies the schema and
// prepares common statements. Each call gets its own database.
func NewDatabase() (*Database, error) {
	// Shared cache keeps the named memory database alive across pooled
	// connections; the unique name keeps instances apart.
	dsn := fmt.Sprintf("file:hotel-%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection serialises writers, so a transaction is the lock.
	db.SetMaxOpenConns(1)

	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	database := &Database{db: db}
	if err := database.prepareStatements(); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// Close releases prepared statements and closes the DB, dropping its contents.
func (d *Database) Close() error {
	if d.addRoomStmt != nil {
		d.addRoomStmt.Close()
	}
	if d.addReservationStmt != nil {
		d.addReservationStmt.Close()
	}
	return d.db.Close()
}

// ---------------------------------------------------------------------------
// Schema migration
// ---------------------------------------------------------------------------

const schemaVersion = 1

func applyMigrations(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS meta (key TEXT PRIMARY KEY, value TEXT);`); err != nil {
		return fmt.Errorf("create meta: %w", err)
	}

	var current int
	_ = db.QueryRow(`SELECT value FROM meta WHERE key='schema_version';`).Scan(&current)
	if current >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rooms (
            room_number TEXT PRIMARY KEY,
            price REAL NOT NULL,
            room_type INTEGER NOT NULL
        );`,
		// Room and customer columns are snapshots taken at booking time.
		`CREATE TABLE IF NOT EXISTS reservations (
            seq INTEGER PRIMARY KEY AUTOINCREMENT,
            id TEXT NOT NULL UNIQUE,
            has_customer BOOLEAN NOT NULL,
            customer_email TEXT NOT NULL,
            first_name TEXT NOT NULL,
            last_name TEXT NOT NULL,
            room_number TEXT NOT NULL,
            price REAL NOT NULL,
            room_type INTEGER NOT NULL,
            check_in TEXT NOT NULL,
            check_out TEXT NOT NULL
        );`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_customer ON reservations(customer_email);`,
		`CREATE INDEX IF NOT EXISTS idx_reservations_room ON reservations(room_number);`,
	}

	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}
	if _, err := tx.Exec(`INSERT INTO meta(key,value) VALUES('schema_version',?)
        ON CONFLICT(key) DO UPDATE SET value=excluded.value;`, schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}

	return tx.Commit()
}

// ---------------------------------------------------------------------------
// Prepared statements
// ---------------------------------------------------------------------------

func (d *Database) prepareStatements() error {
	var err error
	if d.addRoomStmt, err = d.db.Prepare(`INSERT INTO rooms(room_number,price,room_type) VALUES(?,?,?)
        ON CONFLICT(room_number) DO UPDATE SET price=excluded.price, room_type=excluded.room_type`); err != nil {
		return err
	}
	if d.addReservationStmt, err = d.db.Prepare(`INSERT INTO reservations(
            id,has_customer,customer_email,first_name,last_name,
            room_number,price,room_type,check_in,check_out
        ) VALUES(?,?,?,?,?,?,?,?,?,?)`); err != nil {
		return err
	}
	return nil
}

// ---------------------------------------------------------------------------
// Rooms
// ---------------------------------------------------------------------------

// AddRoom inserts the room or overwrites the one with the same number.
func (d *Database) AddRoom(room Room) error {
	if _, err := d.addRoomStmt.Exec(room.Number, room.Price, int(room.Type)); err != nil {
		return fmt.Errorf("add room %s: %w", room.Number, err)
	}
	return nil
}

func (d *Database) GetRoom(number string) (Room, bool, error) {
	var (
		r        Room
		roomType int
	)
	err := d.db.QueryRow(`SELECT room_number,price,room_type FROM rooms WHERE room_number=?`, number).
		Scan(&r.Number, &r.Price, &roomType)
	if err == sql.ErrNoRows {
		return Room{}, false, nil
	}
	if err != nil {
		return Room{}, false, fmt.Errorf("get room %s: %w", number, err)
	}
	r.Type = RoomType(roomType)
	return r, true, nil
}

func (d *Database) AllRooms() ([]Room, error) {
	return queryRooms(d.db)
}

// ---------------------------------------------------------------------------
// Reservations
// ---------------------------------------------------------------------------

// Reserve stores the reservation without looking at other reservations.
func (d *Database) Reserve(customer *Customer, room Room, checkIn, checkOut time.Time) (Reservation, error) {
	r := newReservation(customer, room, checkIn, checkOut)
	if _, err := d.addReservationStmt.Exec(reservationArgs(r)...); err != nil {
		return Reservation{}, fmt.Errorf("reserve room %s: %w", room.Number, err)
	}
	return r, nil
}

// ReserveIfAvailable checks the room for overlapping reservations and stores
// the new one in the same transaction.
func (d *Database) ReserveIfAvailable(customer *Customer, room Room, checkIn, checkOut time.Time) (Reservation, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return Reservation{}, err
	}
	defer tx.Rollback()

	existing, err := queryReservations(tx, `WHERE room_number=?`, room.Number)
	if err != nil {
		return Reservation{}, err
	}
	for _, r := range existing {
		if Overlaps(r, checkIn, checkOut) {
			return Reservation{}, ErrRoomUnavailable
		}
	}

	r := newReservation(customer, room, checkIn, checkOut)
	if _, err := tx.Stmt(d.addReservationStmt).Exec(reservationArgs(r)...); err != nil {
		return Reservation{}, fmt.Errorf("reserve room %s: %w", room.Number, err)
	}
	return r, tx.Commit()
}

// ReservationsFor returns the customer's reservations in booking order.
func (d *Database) ReservationsFor(customer *Customer) ([]Reservation, error) {
	email := ""
	if customer != nil {
		email = customer.Email
	}
	return queryReservations(d.db, `WHERE customer_email=?`, email)
}

func (d *Database) AllReservations() ([]Reservation, error) {
	return queryReservations(d.db, "")
}

// AvailableRooms loads rooms and reservations and applies the same overlap
// rule as the in-memory ledger.
func (d *Database) AvailableRooms(checkIn, checkOut time.Time) ([]Room, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rooms, err := queryRooms(tx)
	if err != nil {
		return nil, err
	}
	reservations, err := queryReservations(tx, "")
	if err != nil {
		return nil, err
	}
	return availableRooms(rooms, reservations, checkIn, checkOut), nil
}

func (d *Database) AlternativeRooms(checkIn, checkOut time.Time) ([]Room, error) {
	return d.AvailableRooms(ShiftByDefaultWindow(checkIn), ShiftByDefaultWindow(checkOut))
}

// ---------------------------------------------------------------------------
// Row helpers
// ---------------------------------------------------------------------------

type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

func queryRooms(q querier) ([]Room, error) {
	rows, err := q.Query(`SELECT room_number,price,room_type FROM rooms ORDER BY room_number`)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	rooms := []Room{}
	for rows.Next() {
		var (
			r        Room
			roomType int
		)
		if err := rows.Scan(&r.Number, &r.Price, &roomType); err != nil {
			return nil, err
		}
		r.Type = RoomType(roomType)
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}

// queryReservations runs a reservation SELECT with an optional WHERE clause,
// ordered by customer and then booking order.
func queryReservations(q querier, where string, args ...any) ([]Reservation, error) {
	rows, err := q.Query(`SELECT id,has_customer,customer_email,first_name,last_name,
        room_number,price,room_type,check_in,check_out
        FROM reservations `+where+` ORDER BY customer_email, seq`, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	reservations := []Reservation{}
	for rows.Next() {
		var (
			r                 Reservation
			hasCustomer       bool
			c                 Customer
			roomType          int
			checkIn, checkOut string
		)
		if err := rows.Scan(&r.ID, &hasCustomer, &c.Email, &c.FirstName, &c.LastName,
			&r.Room.Number, &r.Room.Price, &roomType, &checkIn, &checkOut); err != nil {
			return nil, err
		}
		if hasCustomer {
			r.Customer = &c
		}
		r.Room.Type = RoomType(roomType)
		if r.CheckIn, err = time.Parse(time.RFC3339Nano, checkIn); err != nil {
			return nil, fmt.Errorf("reservation %s check-in: %w", r.ID, err)
		}
		if r.CheckOut, err = time.Parse(time.RFC3339Nano, checkOut); err != nil {
			return nil, fmt.Errorf("reservation %s check-out: %w", r.ID, err)
		}
		reservations = append(reservations, r)
	}
	return reservations, rows.Err()
}

func reservationArgs(r Reservation) []any {
	var c Customer
	if r.Customer != nil {
		c = *r.Customer
	}
	return []any{
		r.ID, r.Customer != nil, c.Email, c.FirstName, c.LastName,
		r.Room.Number, r.Room.Price, int(r.Room.Type),
		r.CheckIn.Format(time.RFC3339Nano), r.CheckOut.Format(time.RFC3339Nano),
	}
}
