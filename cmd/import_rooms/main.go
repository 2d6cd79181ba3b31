package main

import (
	"fmt"
	"os"
	"strings"

	"hotel-reservation/hotel"

	"go.uber.org/zap"
)

// import_rooms checks one or more seed files by loading each into a fresh
// SQLite ledger and printing the rooms it would provide.
func main() {
	files := os.Args[1:]
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: import_rooms <rooms.json>...")
		os.Exit(2)
	}
	os.Exit(run(files))
}

func run(files []string) int {
	ledger, err := hotel.NewDatabase()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating database: %v\n", err)
		return 1
	}
	manager := hotel.NewHotelManager(hotel.NewCustomerDirectory(), ledger, zap.NewNop().Sugar())
	defer manager.Close()

	successCount := 0
	errorCount := 0

	for _, path := range files {
		fmt.Printf("Importing: %s... ", path)

		n, err := manager.ImportRooms(path)
		if err != nil {
			fmt.Printf("ERROR - %v\n", err)
			errorCount++
			continue
		}

		fmt.Printf("SUCCESS (%d rooms)\n", n)
		successCount++
	}

	fmt.Printf("\nImport complete!\n")
	fmt.Printf("Successfully imported: %d files\n", successCount)
	fmt.Printf("Errors: %d\n", errorCount)

	if successCount > 0 {
		fmt.Println("\nImported rooms:")
		rooms, err := manager.AllRooms()
		if err != nil {
			fmt.Printf("Error retrieving rooms: %v\n", err)
		} else {
			fmt.Printf("%-12s %-12s %-8s\n", "Room", "Price", "Type")
			fmt.Println(strings.Repeat("-", 34))
			for _, room := range rooms {
				fmt.Printf("%-12s %-12s %-8s\n", truncateString(room.Number, 12), fmt.Sprintf("$%.2f", room.Price), room.Type)
			}
		}
	}

	if errorCount > 0 {
		return 1
	}
	return 0
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
