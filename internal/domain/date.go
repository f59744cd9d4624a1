package domain

import (
	"strings"
	"time"
)

var (
	ErrInvalidDate       = ValidationError("Data de transação inválida")
	ErrFutureDate        = ValidationError("Data de transação não pode ser futura")
	ErrUnsupportedFormat = ValidationError("Formato de data não suportado")
)

// Date is a transaction calendar date. It is never in the future.
type Date struct {
	t time.Time
}

func NewDate(t time.Time) (Date, error) {
	if t.IsZero() {
		return Date{}, ErrInvalidDate
	}
	now := time.Now()
	endOfToday := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, int(999*time.Millisecond), now.Location())
	if t.After(endOfToday) {
		return Date{}, ErrFutureDate
	}
	return Date{t: t}, nil
}

func Today() Date {
	d, _ := NewDate(time.Now())
	return d
}

// DateFromString accepts YYYY-MM-DD, DD/MM/YYYY and DD-MM-YYYY.
func DateFromString(s string) (Date, error) {
	var layout string
	switch {
	case strings.Contains(s, "/"):
		layout = "02/01/2006"
	case strings.Contains(s, "-") && len(s) == 10 && s[4] == '-':
		layout = "2006-01-02"
	case strings.Contains(s, "-"):
		layout = "02-01-2006"
	default:
		return Date{}, ErrUnsupportedFormat
	}
	t, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return NewDate(t)
}

func (d Date) Time() time.Time { return d.t }
func (d Date) Year() int       { return d.t.Year() }
func (d Date) Month() int      { return int(d.t.Month()) }
func (d Date) Day() int        { return d.t.Day() }

func (d Date) Equal(other Date) bool     { return d.t.Equal(other.t) }
func (d Date) SameMonth(other Date) bool { return d.Year() == other.Year() && d.Month() == other.Month() }
func (d Date) SameYear(other Date) bool  { return d.Year() == other.Year() }
func (d Date) Before(other Date) bool    { return d.t.Before(other.t) }
func (d Date) After(other Date) bool     { return d.t.After(other.t) }

// InPeriod reports whether the date falls in the given month/year.
func (d Date) InPeriod(month, year int) bool {
	return d.Month() == month && d.Year() == year
}

func (d Date) String() string { return d.t.Format("02/01/2006") }
