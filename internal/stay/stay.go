package stay

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date format")
)

const dateLayout = "2006-01-02"

func ParseDate(dateStr string) (time.Time, error) {
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

// Nights returns the stay length in nights between two 2006-01-02 dates.
// A checkout on or before the checkin yields zero or a negative count.
func Nights(checkinStr, checkoutStr string) (int, error) {
	checkin, err := ParseDate(checkinStr)
	if err != nil {
		return 0, err
	}
	checkout, err := ParseDate(checkoutStr)
	if err != nil {
		return 0, err
	}
	return int(checkout.Sub(checkin).Hours() / 24), nil
}

// SpansWeekend reports whether any night of the stay is a Friday or Saturday
// night. Nights are counted from the checkin date.
func SpansWeekend(checkinStr string, nights int) (bool, error) {
	checkin, err := ParseDate(checkinStr)
	if err != nil {
		return false, err
	}
	for i := 0; i < nights; i++ {
		switch checkin.AddDate(0, 0, i).Weekday() {
		case time.Friday, time.Saturday:
			return true, nil
		}
	}
	return false, nil
}

// Range is a half-open [Checkin, Checkout) date interval.
type Range struct {
	Checkin  time.Time
	Checkout time.Time
}

func NewRange(checkinStr, checkoutStr string) (Range, error) {
	checkin, err := ParseDate(checkinStr)
	if err != nil {
		return Range{}, err
	}
	checkout, err := ParseDate(checkoutStr)
	if err != nil {
		return Range{}, err
	}
	return Range{Checkin: checkin, Checkout: checkout}, nil
}

// Overlaps is true when the two stays share at least one night. Back-to-back
// stays (one checkout on the other checkin) do not overlap.
func Overlaps(a, b Range) bool {
	return a.Checkin.Before(b.Checkout) && b.Checkin.Before(a.Checkout)
}
