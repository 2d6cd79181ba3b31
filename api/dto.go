package api

import (
	"time"

	"hotel-reservation/hotel"
)

type customerRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type reservationRequest struct {
	Email      string `json:"email"`
	RoomNumber string `json:"roomNumber"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
}

// reservationResponse carries dates in the MM/dd/yyyy layout callers send.
type reservationResponse struct {
	ID       string          `json:"id"`
	Customer *hotel.Customer `json:"customer"`
	Room     hotel.Room      `json:"room"`
	CheckIn  string          `json:"checkIn"`
	CheckOut string          `json:"checkOut"`
}

func toReservationResponse(r hotel.Reservation) reservationResponse {
	return reservationResponse{
		ID:       r.ID,
		Customer: r.Customer,
		Room:     r.Room,
		CheckIn:  hotel.FormatDate(r.CheckIn),
		CheckOut: hotel.FormatDate(r.CheckOut),
	}
}

func toReservationResponses(rs []hotel.Reservation) []reservationResponse {
	out := make([]reservationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, toReservationResponse(r))
	}
	return out
}

type availabilityResponse struct {
	CheckIn     string       `json:"checkIn"`
	CheckOut    string       `json:"checkOut"`
	Alternative bool         `json:"alternative"`
	Rooms       []hotel.Room `json:"rooms"`
}

// parseStay parses both dates and requires check-out after check-in.
func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := hotel.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	out, err := hotel.ParseDate(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, errStayOrder
	}
	return in, out, nil
}
