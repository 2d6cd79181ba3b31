package hotel

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the MM/dd/yyyy format callers use for check-in and check-out dates.
const DateLayout = "01/02/2006"

// parseLayout also accepts single-digit months and days ("2/1/2022").
const parseLayout = "1/2/2006"

// Date returns the calendar date at midnight UTC.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a MM/dd/yyyy date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(parseLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, expected mm/dd/yyyy", ErrInvalidDate, s)
	}
	return t, nil
}

func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// ParsePrice parses a non-negative price per night. Decimals are separated by a point.
func ParsePrice(s string) (float64, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || price < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return price, nil
}

// ParseRoomTypeLabel maps the menu tokens "1" and "2" to a room type.
func ParseRoomTypeLabel(s string) (RoomType, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return Single, nil
	case "2":
		return Double, nil
	default:
		return 0, fmt.Errorf("%w: %q, choose 1 for single bed or 2 for double bed", ErrInvalidRoomType, s)
	}
}
