package domain

// Параметры расчёта слотов.
// Все услуги нормализованы к получасу: длительность и шаг слота фиксированы
// и не зависят от длительности, указанной у услуги.
const (
	SlotDurationMinutes = 30
	SlotStepMinutes     = 30
)

// Значения по умолчанию
const (
	DefaultCity           = "Χανιά"
	DefaultReviewerName   = "Πελάτης"
	DefaultReviewRating   = 5
	DefaultHoursStart     = "10:00"
	DefaultHoursEnd       = "18:00"
	ShopDetailReviews     = 30
	DashboardAppointments = 100
)

// Дни недели, на которые создаются часы по умолчанию
var (
	DefaultShopWeekdays  = []int{0, 1, 2, 3, 4, 5}
	DefaultStaffWeekdays = []int{1, 2, 3, 4, 5}
)

// Лимиты полей
const (
	MinRating = 1
	MaxRating = 5

	MaxShopNameLength     = 140
	MaxCustomerNameLength = 140
	MaxNotesLength        = 300
	MaxCommentLength      = 300
)

// Тарифы и периоды оплаты для заявок бизнеса
var (
	LeadPlans    = []string{"freemium", "solo", "duo", "team"}
	LeadBillings = []string{"monthly", "annual"}
)

const DefaultLeadBilling = "monthly"
