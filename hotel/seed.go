package hotel

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReadRooms decodes a JSON array of rooms:
//
//	[{"roomNumber": "101", "price": 100, "roomType": "SINGLE"}]
//
// roomType also accepts the menu labels "1" and "2".
func ReadRooms(r io.Reader) ([]Room, error) {
	var rooms []Room
	if err := json.NewDecoder(r).Decode(&rooms); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}
	for i, room := range rooms {
		if room.Number == "" {
			return nil, fmt.Errorf("room %d: missing room number", i+1)
		}
		if room.Price < 0 {
			return nil, fmt.Errorf("room %s: %w: %v", room.Number, ErrInvalidPrice, room.Price)
		}
		if !room.Type.Valid() {
			return nil, fmt.Errorf("room %s: %w", room.Number, ErrInvalidRoomType)
		}
	}
	return rooms, nil
}

// ImportRooms reads the seed file at path and adds its rooms through the manager.
func (hm *HotelManager) ImportRooms(path string) (int, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rooms, err := ReadRooms(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if err := hm.AddRooms(rooms); err != nil {
		return 0, err
	}
	return len(rooms), nil
}
