// Package timegrid переводы между строками "HH:MM", минутами от полуночи и датами YYYY-MM-DD.
package timegrid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// ClockFormat формат времени HH:MM
	ClockFormat = "15:04"
	// DateFormat формат даты YYYY-MM-DD
	DateFormat = "2006-01-02"

	MinutesPerDay = 24 * 60
)

var (
	// ErrFormat возвращается, когда строка времени не состоит ровно из двух целых полей через ':'
	ErrFormat = errors.New("timegrid: invalid HH:MM format")

	// ErrDate возвращается, когда строка не является реальной календарной датой YYYY-MM-DD
	ErrDate = errors.New("timegrid: invalid YYYY-MM-DD date")
)

// ToMinutes переводит "HH:MM" в минуты от полуночи.
// Диапазон не проверяется: "25:00" даёт 1500.
func ToMinutes(hm string) (int, error) {
	parts := strings.Split(hm, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrFormat, hm)
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, hm)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, hm)
	}

	return hours*60 + minutes, nil
}

// ToClock выводит минуты от полуночи как "HH:MM" с ведущими нулями.
// Переход через полночь не выполняется: 1470 выводится как "24:30".
func ToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate разбирает дату строго в виде YYYY-MM-DD (UTC).
// Месяц и день без ведущего нуля ("2024-1-5") отклоняются.
func ParseDate(isoDate string) (time.Time, error) {
	t, err := time.Parse(DateFormat, isoDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDate, isoDate)
	}
	return t, nil
}

// WeekdayOf день недели даты: понедельник = 0, воскресенье = 6
func WeekdayOf(isoDate string) (int, error) {
	t, err := ParseDate(isoDate)
	if err != nil {
		return 0, err
	}
	return Weekday(t), nil
}

// Weekday переводит time.Weekday (воскресенье = 0) в индекс с понедельника
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
