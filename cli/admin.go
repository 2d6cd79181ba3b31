package cli

import (
	"errors"
	"strings"

	"hotel-reservation/hotel"
)

func (m *Menu) runAdmin() {
	for {
		m.clearScreen()
		m.printAdminMenu()
		line, ok := m.readLine()
		if !ok {
			return
		}

		switch line {
		case "1":
			m.handleListCustomers()
		case "2":
			m.handleListRooms()
		case "3":
			m.handleListReservations()
		case "4":
			m.handleAddRooms()
		case "5", "":
			return
		default:
			if len(line) == 1 {
				m.println("Unknown action")
			} else {
				m.println("Error: Invalid action")
			}
		}
	}
}

func (m *Menu) printAdminMenu() {
	m.printf(`
Admin Menu
--------------------------------------------
1. See all Customers
2. See all Rooms
3. See all Reservations
4. Add a Room
5. Back to Main Menu
--------------------------------------------
Please select a number for the menu option:
`)
}

func (m *Menu) handleListCustomers() {
	customers := m.mgr.AllCustomers()
	if len(customers) == 0 {
		m.println("No customers found.")
		return
	}

	m.printf("%-30s %-20s %-20s\n", "Email", "First Name", "Last Name")
	m.println(strings.Repeat("-", 72))
	for _, c := range customers {
		m.printf("%-30s %-20s %-20s\n",
			truncateString(c.Email, 30),
			truncateString(c.FirstName, 20),
			truncateString(c.LastName, 20))
	}
}

func (m *Menu) handleListRooms() {
	rooms, err := m.mgr.AllRooms()
	if err != nil {
		m.printf("Error: %v\n", err)
		return
	}
	m.printRooms(rooms)
}

func (m *Menu) handleListReservations() {
	reservations, err := m.mgr.AllReservations()
	if err != nil {
		m.printf("Error: %v\n", err)
		return
	}
	m.printReservations(reservations)
}

// handleAddRooms adds rooms one at a time until the user answers N.
func (m *Menu) handleAddRooms() {
	for {
		if !m.handleAddRoom() {
			return
		}
		another, ok := m.confirm("Would like to add another room? Y/N", "Y", "N")
		if !ok || !another {
			return
		}
	}
}

func (m *Menu) handleAddRoom() bool {
	number, ok := readValid(m, "Enter room number:", "Room number cannot be empty.", parseRoomNumber)
	if !ok {
		return false
	}
	price, ok := readValid(m, "Enter price per night:",
		"Invalid room price! Please, enter a valid non-negative number. Decimals should be separated by point (.)",
		hotel.ParsePrice)
	if !ok {
		return false
	}
	roomType, ok := readValid(m, "Enter room type: 1 for single bed, 2 for double bed:",
		"Invalid room type! Please, choose 1 for single bed or 2 for double bed:",
		hotel.ParseRoomTypeLabel)
	if !ok {
		return false
	}

	if err := m.mgr.AddRoom(hotel.Room{Number: number, Price: price, Type: roomType}); err != nil {
		m.printf("Error: %v\n", err)
		return false
	}
	m.println("Room added successfully!")
	return true
}

var errEmptyRoomNumber = errors.New("empty room number")

func parseRoomNumber(s string) (string, error) {
	if s == "" {
		return "", errEmptyRoomNumber
	}
	return s, nil
}
