package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"hotel-reservation/hotel"

	"golang.org/x/term"
)

const defaultMaxAttempts = 3

// Options tunes the console menus.
type Options struct {
	MaxAttempts int  // re-prompts before an input is abandoned
	ClearScreen bool // clear the terminal before each menu
}

// Menu is the interactive console front end over a HotelManager.
type Menu struct {
	sc   *bufio.Scanner
	out  io.Writer
	mgr  *hotel.HotelManager
	opts Options
}

func NewMenu(in io.Reader, out io.Writer, mgr *hotel.HotelManager, opts Options) *Menu {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	return &Menu{sc: bufio.NewScanner(in), out: out, mgr: mgr, opts: opts}
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Run shows the main menu until the user exits or input ends.
func (m *Menu) Run() {
	for {
		m.clearScreen()
		m.printMainMenu()
		line, ok := m.readLine()
		if !ok {
			return
		}

		switch line {
		case "1":
			m.handleFindAndReserve()
		case "2":
			m.handleMyReservations()
		case "3":
			m.handleCreateAccount()
		case "4":
			m.runAdmin()
		case "5":
			m.println("Exit")
			return
		case "":
			m.println("Empty input received. Exiting program...")
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

func (m *Menu) printMainMenu() {
	m.printf(`
Welcome to the Hotel Reservation Application
--------------------------------------------
1. Find and reserve a room
2. See my reservations
3. Create an Account
4. Admin
5. Exit
--------------------------------------------
Please select a number for the menu option:
`)
}

func (m *Menu) handleFindAndReserve() {
	checkIn, ok := readValid(m, "Enter Check-In Date mm/dd/yyyy example 02/01/2022", "Error: Invalid date.", hotel.ParseDate)
	if !ok {
		return
	}
	checkOut, ok := readValid(m, "Enter Check-Out Date mm/dd/yyyy example 02/21/2022", "Error: Invalid date.", hotel.ParseDate)
	if !ok {
		return
	}
	if !checkOut.After(checkIn) {
		m.println("Error: Check-Out Date must be after Check-In Date.")
		return
	}

	found, err := m.mgr.Search(checkIn, checkOut)
	if err != nil {
		m.printf("Error: %v\n", err)
		return
	}
	if len(found.Rooms) == 0 {
		m.println("No rooms found.")
		return
	}
	if found.Alternative {
		m.printf("We've only found rooms on alternative dates:\nCheck-In Date: %s\nCheck-Out Date: %s\n",
			hotel.FormatDate(found.CheckIn), hotel.FormatDate(found.CheckOut))
	}
	m.printRooms(found.Rooms)
	m.reserveRoom(found.CheckIn, found.CheckOut, found.Rooms)
}

func (m *Menu) reserveRoom(checkIn, checkOut time.Time, offered []hotel.Room) {
	book, ok := m.confirm("Would you like to book? y/n", "y", "n")
	if !ok || !book {
		return
	}

	hasAccount, ok := m.confirm("Do you have an account with us? y/n", "y", "n")
	if !ok {
		return
	}
	if !hasAccount {
		m.println("Please, create an account.")
		m.handleCreateAccount()
	}
	m.chooseRoom(checkIn, checkOut, offered)
}

func (m *Menu) chooseRoom(checkIn, checkOut time.Time, offered []hotel.Room) {
	email, ok := m.ask("Enter Email format: name@domain.com")
	if !ok {
		return
	}
	if _, found := m.mgr.LookupCustomer(email); !found {
		m.println("Customer not found.\nYou may need to create a new account.")
		m.handleCreateAccount()
		return
	}

	number, ok := m.ask("What room number would you like to reserve?")
	if !ok {
		return
	}
	var room hotel.Room
	offeredRoom := false
	for _, r := range offered {
		if r.Number == number {
			room, offeredRoom = r, true
			break
		}
	}
	if !offeredRoom {
		m.println("Error: room number not available.\nStart reservation again.")
		return
	}

	reservation, err := m.mgr.Book(email, room, checkIn, checkOut)
	if err != nil {
		m.printf("Error: %v\n", err)
		return
	}
	m.println("Reservation created successfully!")
	m.println(reservation)
}

func (m *Menu) handleMyReservations() {
	email, ok := m.ask("Enter your Email format: name@domain.com")
	if !ok {
		return
	}
	reservations, err := m.mgr.ReservationsOf(email)
	if err != nil {
		m.printf("Error: %v\n", err)
		return
	}
	m.printReservations(reservations)
}

func (m *Menu) handleCreateAccount() {
	email, ok := m.ask("Enter Email format: name@domain.com")
	if !ok {
		return
	}
	firstName, ok := m.ask("First Name:")
	if !ok {
		return
	}
	lastName, ok := m.ask("Last Name:")
	if !ok {
		return
	}

	if err := m.mgr.RegisterCustomer(email, firstName, lastName); err != nil {
		m.printf("Error: %v\n", err)
		return
	}
	m.println("Account created successfully!")
}

// ---------------------------------------------------------------------------
// Input helpers
// ---------------------------------------------------------------------------

func (m *Menu) readLine() (string, bool) {
	if !m.sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.sc.Text()), true
}

// ask prints the prompt and reads one line.
func (m *Menu) ask(prompt string) (string, bool) {
	m.println(prompt)
	return m.readLine()
}

// confirm asks until the answer is yes or no, at most MaxAttempts times.
func (m *Menu) confirm(prompt, yes, no string) (bool, bool) {
	m.println(prompt)
	for attempt := 1; attempt <= m.opts.MaxAttempts; attempt++ {
		answer, ok := m.readLine()
		if !ok {
			return false, false
		}
		switch answer {
		case yes:
			return true, true
		case no:
			return false, true
		}
		if attempt < m.opts.MaxAttempts {
			m.printf("Please enter %s (Yes) or %s (No)\n", yes, no)
		}
	}
	m.println("Too many invalid answers.")
	return false, false
}

// readValid asks until parse accepts the input, at most MaxAttempts times.
func readValid[T any](m *Menu, prompt, retry string, parse func(string) (T, error)) (T, bool) {
	var zero T
	m.println(prompt)
	for attempt := 1; attempt <= m.opts.MaxAttempts; attempt++ {
		line, ok := m.readLine()
		if !ok {
			return zero, false
		}
		v, err := parse(line)
		if err == nil {
			return v, true
		}
		if attempt < m.opts.MaxAttempts {
			m.println(retry)
		}
	}
	m.println("Too many invalid answers.")
	return zero, false
}

func (m *Menu) clearScreen() {
	if m.opts.ClearScreen {
		m.printf("\033[H\033[2J")
	}
}

func (m *Menu) printf(format string, args ...any) { fmt.Fprintf(m.out, format, args...) }
func (m *Menu) println(args ...any)               { fmt.Fprintln(m.out, args...) }
