package models

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	"github.com/m04kA/SMC-HairBooking/pkg/types"
)

// DayHours часы работы в один день недели (0 = понедельник)
type DayHours struct {
	Weekday int    `json:"weekday"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// ShopHoursResponse часы работы салона
type ShopHoursResponse struct {
	ShopID int64      `json:"shopId"`
	Hours  []DayHours `json:"hours"`
}

// StaffHoursResponse расписание мастера вместе с его салоном
type StaffHoursResponse struct {
	StaffID   int64      `json:"staffId"`
	StaffName string     `json:"staffName"`
	ShopID    int64      `json:"shopId"`
	ShopName  string     `json:"shopName,omitempty"`
	Hours     []DayHours `json:"hours"`
}

// ToDomainIntervals отбирает дни, где заданы и начало, и конец, и проверяет формат.
// Конец раньше начала допустим: такой день просто не даёт слотов.
func ToDomainIntervals(days []DayHours) ([]domain.WorkingInterval, error) {
	result := make([]domain.WorkingInterval, 0, len(days))
	seen := make(map[int]bool, len(days))

	for _, d := range days {
		start := strings.TrimSpace(d.Start)
		end := strings.TrimSpace(d.End)
		if start == "" || end == "" {
			continue
		}
		if d.Weekday < 0 || d.Weekday > 6 {
			return nil, fmt.Errorf("weekday %d out of range", d.Weekday)
		}
		if seen[d.Weekday] {
			return nil, fmt.Errorf("weekday %d given twice", d.Weekday)
		}

		startHM, err := types.NewTimeStringFromString(start)
		if err != nil {
			return nil, err
		}
		endHM, err := types.NewTimeStringFromString(end)
		if err != nil {
			return nil, err
		}

		seen[d.Weekday] = true
		result = append(result, domain.WorkingInterval{Weekday: d.Weekday, Start: startHM, End: endHM})
	}

	return result, nil
}

// FromDomainIntervals конвертирует интервалы
func FromDomainIntervals(intervals []domain.WorkingInterval) []DayHours {
	result := make([]DayHours, 0, len(intervals))
	for _, i := range intervals {
		result = append(result, DayHours{Weekday: i.Weekday, Start: i.Start.String(), End: i.End.String()})
	}
	return result
}
