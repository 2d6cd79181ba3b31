package cli

import (
	"fmt"
	"strings"

	"hotel-reservation/hotel"
)

func (m *Menu) printRooms(rooms []hotel.Room) {
	if len(rooms) == 0 {
		m.println("No rooms found.")
		return
	}

	m.printf("%-12s %-12s %-8s\n", "Room", "Price", "Type")
	m.println(strings.Repeat("-", 34))
	for _, r := range rooms {
		m.printf("%-12s %-12s %-8s\n", truncateString(r.Number, 12), fmt.Sprintf("$%.2f", r.Price), r.Type)
	}
}

func (m *Menu) printReservations(reservations []hotel.Reservation) {
	if len(reservations) == 0 {
		m.println("No reservations found.")
		return
	}
	for _, r := range reservations {
		m.println()
		m.println(r)
	}
}

func truncateString(s string, maxLength int) string {
	if len(s) <= maxLength {
		return s
	}
	return s[:maxLength-3] + "..."
}
