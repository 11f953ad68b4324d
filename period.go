package recur

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Unit is the interval unit of a period token.
type Unit byte

const (
	Year  Unit = 'y'
	Month Unit = 'm'
	Week  Unit = 'w'
	Day   Unit = 'd'
)

// Period is a parsed period token such as "3m" or "1y".
type Period struct {
	Count int
	Unit  Unit
}

// The count may be signed so a negative period is reported as not advancing
// rather than being rejected as unparseable.
var periodRegex = regexp.MustCompile(`^(-?\d+)([ymwd])$`)

// ParsePeriod parses a period token of the form <count><unit>.
func ParsePeriod(token string) (Period, error) {
	m := periodRegex.FindStringSubmatch(token)
	if m == nil {
		return Period{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, token)
	}

	count, err := strconv.ParseInt(m[1], 10, 32)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q: count out of range", ErrInvalidPeriod, token)
	}

	return Period{Count: int(count), Unit: Unit(m[2][0])}, nil
}

func (p Period) String() string {
	return strconv.Itoa(p.Count) + string(p.Unit)
}

// AddTo returns date advanced by the period. Years and months are calendar
// units: the day of month is kept, clamped to the length of the target month.
func (p Period) AddTo(date time.Time) (time.Time, error) {
	switch p.Unit {
	case Year:
		return addMonths(date, 12*p.Count), nil
	case Month:
		return addMonths(date, p.Count), nil
	case Week:
		return date.AddDate(0, 0, 7*p.Count), nil
	case Day:
		return date.AddDate(0, 0, p.Count), nil
	}
	return date, fmt.Errorf("%w: unknown unit %q", ErrInvalidPeriod, string(p.Unit))
}

// AddPeriod parses token and adds it to date.
func AddPeriod(date time.Time, token string) (time.Time, error) {
	p, err := ParsePeriod(token)
	if err != nil {
		return date, err
	}
	return p.AddTo(date)
}

func addMonths(date time.Time, n int) time.Time {
	y, m, d := date.Date()
	// time.Date normalizes the month overflow into the year.
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, date.Location())
	last := first.AddDate(0, 1, -1).Day()
	return first.AddDate(0, 0, min(d, last)-1)
}
