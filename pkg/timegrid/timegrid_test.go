package timegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{name: "midnight", in: "00:00", want: 0},
		{name: "opening", in: "10:00", want: 600},
		{name: "half past", in: "17:30", want: 1050},
		{name: "last minute", in: "23:59", want: 1439},
		{name: "single digit hour", in: "9:05", want: 545},
		{name: "no colon", in: "1000", wantErr: true},
		{name: "three fields", in: "10:00:00", wantErr: true},
		{name: "letters", in: "ab:cd", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToMinutes(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToClock(t *testing.T) {
	assert.Equal(t, "00:00", ToClock(0))
	assert.Equal(t, "09:05", ToClock(545))
	assert.Equal(t, "17:30", ToClock(1050))
	assert.Equal(t, "24:30", ToClock(1470), "values past midnight are rendered raw")
}

func TestRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m += 7 {
		got, err := ToMinutes(ToClock(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestWeekdayOf(t *testing.T) {
	tests := map[string]int{
		"2024-01-01": 0, // Monday
		"2024-01-03": 2,
		"2024-01-06": 5,
		"2024-01-07": 6, // Sunday
		"2024-02-29": 3, // leap day, Thursday
	}

	for date, want := range tests {
		t.Run(date, func(t *testing.T) {
			got, err := WeekdayOf(date)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2023-02-29")
	assert.ErrorIs(t, err, ErrDate)

	_, err = ParseDate("2024-13-01")
	assert.ErrorIs(t, err, ErrDate)

	_, err = ParseDate("")
	assert.ErrorIs(t, err, ErrDate)

	_, err = ParseDate("2024-1-5")
	assert.ErrorIs(t, err, ErrDate)

	d, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.Format(DateFormat))
}
