package get_available_slots

import (
	"github.com/m04kA/SMC-HairBooking/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StaffID int64
	Date    string // YYYY-MM-DD
	// DurationMinutes запрошенная длительность. Не влияет на расчёт:
	// длительность и шаг слота всегда равны получасу.
	DurationMinutes int
}

// Response модель ответа со списком доступных слотов
type Response struct {
	StaffID int64
	Date    string
	Slots   []types.TimeString // по возрастанию
}

// busyInterval занятый интервал в минутах от полуночи, [start, end)
type busyInterval struct {
	start int
	end   int
}
