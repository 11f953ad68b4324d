package recur

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	godate "github.com/joyt/godate"
)

// DateFormat is the layout due dates are written back with.
const DateFormat = "2006/01/02"

// Year, month and day separated consistently by '-' or '/'.
const dateExpr = `\d{4}(?:-\d{1,2}-|/\d{1,2}/)\d{1,2}`

var dateRegex = regexp.MustCompile(`^(\d{4})(?:-(\d{1,2})-|/(\d{1,2})/)(\d{1,2})$`)

// ParseDate parses a calendar date. Text in the template header form
// (YYYY/MM/DD or YYYY-MM-DD, one or two digit month and day) is checked to be
// a real date; anything else goes through layout detection. The result has
// no time of day.
func ParseDate(text string) (time.Time, error) {
	if m := dateRegex.FindStringSubmatch(text); m != nil {
		y, _ := strconv.Atoi(m[1])
		mon, _ := strconv.Atoi(m[2] + m[3])
		d, _ := strconv.Atoi(m[4])
		t := time.Date(y, time.Month(mon), d, 0, 0, 0, 0, time.UTC)
		if t.Year() != y || int(t.Month()) != mon || t.Day() != d {
			return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, text)
		}
		return t, nil
	}

	t, _, err := godate.ParseAndGetLayout(text)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedDate, text, err)
	}
	return truncateDate(t), nil
}

// FormatDate renders a due date in DateFormat.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// Today is the current local calendar date.
func Today() time.Time {
	return truncateDate(time.Now())
}

func truncateDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
