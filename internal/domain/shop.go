package domain

import (
	"time"

	"github.com/m04kA/SMC-HairBooking/pkg/types"
)

// ShopCategory категория салона
type ShopCategory string

const (
	CategoryHair   ShopCategory = "Hair"
	CategoryBarber ShopCategory = "Barber"
	CategoryBoth   ShopCategory = "Both"
)

// NormalizeCategory возвращает Hair для любого неизвестного значения
func NormalizeCategory(s string) ShopCategory {
	switch ShopCategory(s) {
	case CategoryHair, CategoryBarber, CategoryBoth:
		return ShopCategory(s)
	default:
		return CategoryHair
	}
}

// Shop салон
type Shop struct {
	ID          int64
	Name        string
	City        string
	Area        string
	Category    ShopCategory
	Address     string
	Phone       string
	Description string
	IsOpen      bool
}

// WorkingInterval рабочий интервал салона или мастера в один день недели.
// Weekday: 0 = понедельник ... 6 = воскресенье.
type WorkingInterval struct {
	Weekday int
	Start   types.TimeString
	End     types.TimeString
}

// DefaultIntervals стандартные часы 10:00-18:00 для указанных дней недели
func DefaultIntervals(weekdays []int) []WorkingInterval {
	result := make([]WorkingInterval, 0, len(weekdays))
	for _, wd := range weekdays {
		result = append(result, WorkingInterval{
			Weekday: wd,
			Start:   DefaultHoursStart,
			End:     DefaultHoursEnd,
		})
	}
	return result
}

// Review отзыв о салоне
type Review struct {
	ID           int64
	ShopID       int64
	CustomerName string
	Rating       int
	Comment      string
	CreatedAt    time.Time
}

// ShopFilter фильтр поиска салонов
type ShopFilter struct {
	Query      string         // подстрока названия, без учёта регистра
	City       string         // точное совпадение
	Categories []ShopCategory // любой из перечисленных
}

// BusinessLead заявка бизнеса на подключение
type BusinessLead struct {
	ID        int64
	Plan      string
	Billing   string
	Email     string
	Phone     string
	CreatedAt time.Time
}
