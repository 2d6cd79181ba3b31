package hotel

import (
	"sync"
	"testing"
)

func tempDB(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase()
	if err != nil {
		t.Fatalf("new db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDatabasesAreIsolated(t *testing.T) {
	db1 := tempDB(t)
	db2 := tempDB(t)

	if err := db1.AddRoom(Room{Number: "101", Price: 100, Type: Single}); err != nil {
		t.Fatalf("add room: %v", err)
	}
	rooms, err := db2.AllRooms()
	if err != nil {
		t.Fatalf("all rooms: %v", err)
	}
	if len(rooms) != 0 {
		t.Fatalf("want empty second database, got %d rooms", len(rooms))
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	db := tempDB(t)
	if err := applyMigrations(db.db); err != nil {
		t.Fatalf("re-apply migrations: %v", err)
	}

	var version int
	if err := db.db.QueryRow(`SELECT value FROM meta WHERE key='schema_version'`).Scan(&version); err != nil {
		t.Fatalf("schema version: %v", err)
	}
	if version != schemaVersion {
		t.Fatalf("want schema version %d, got %d", schemaVersion, version)
	}
}

func TestReservationRoundTrip(t *testing.T) {
	db := tempDB(t)
	customer := &Customer{FirstName: "Ann", LastName: "Lee", Email: "ann@lee.io"}
	room := Room{Number: "7", Price: 89.9, Type: Double}

	want, err := db.Reserve(customer, room, Date(2024, 2, 28), Date(2024, 3, 2))
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}

	got, err := db.ReservationsFor(customer)
	if err != nil {
		t.Fatalf("reservations: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("want 1 reservation, got %d", len(got))
	}
	r := got[0]
	if r.ID != want.ID || r.Room != room || *r.Customer != *customer {
		t.Fatalf("round trip mismatch: %+v", r)
	}
	if !r.CheckIn.Equal(want.CheckIn) || !r.CheckOut.Equal(want.CheckOut) {
		t.Fatalf("dates changed: %v-%v", r.CheckIn, r.CheckOut)
	}
}

// TestConcurrentReserveIfAvailable lets several callers race for the same
// room and dates; exactly one may win.
func TestConcurrentReserveIfAvailable(t *testing.T) {
	db := tempDB(t)
	room := Room{Number: "101", Price: 100, Type: Single}
	if err := db.AddRoom(room); err != nil {
		t.Fatalf("add room: %v", err)
	}

	const callers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := db.ReserveIfAvailable(alice, room, Date(2024, 6, 1), Date(2024, 6, 5))
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			} else if err != ErrRoomUnavailable {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("want exactly one reservation, got %d", wins)
	}
}
