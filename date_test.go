package recur

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		text string
		want time.Time
	}{
		{"2020/01/05", day(2020, 1, 5)},
		{"2020-01-05", day(2020, 1, 5)},
		{"2020/1/5", day(2020, 1, 5)},
		{"2020-12-31", day(2020, 12, 31)},
		{"2024/02/29", day(2024, 2, 29)},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			got, err := ParseDate(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseDateMalformed(t *testing.T) {
	for _, text := range []string{"2021/02/31", "2021/13/01", "2021/00/10", "2021-04-31", "not a date"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseDate(text)
			require.ErrorIs(t, err, ErrMalformedDate)
			assert.Contains(t, err.Error(), text)
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2020/03/07", FormatDate(day(2020, 3, 7)))
}

func TestToday(t *testing.T) {
	today := Today()
	now := time.Now()
	assert.Equal(t, now.Day(), today.Day())
	assert.Zero(t, today.Hour())
	assert.Zero(t, today.Minute())
}
