package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	shopRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/shop"
	staffRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/staff"
	"github.com/m04kA/SMC-HairBooking/pkg/types"
)

// UseCase use case расчёта свободных слотов мастера на дату
type UseCase struct {
	staffRepo       StaffRepository
	shopRepo        ShopRepository
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	staffRepo StaffRepository,
	shopRepo ShopRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		staffRepo:       staffRepo,
		shopRepo:        shopRepo,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов.
// Отсутствующий мастер или выходной день дают пустой список, а не ошибку.
// Часы берутся у салона мастера; личное расписание мастера не учитывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	weekday, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	resp := &Response{
		StaffID: req.StaffID,
		Date:    req.Date,
		Slots:   []types.TimeString{},
	}

	// 2. Получаем мастера
	staff, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Info("GetAvailableSlots: staff id=%d not found, no slots", req.StaffID)
			return resp, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 3. Часы работы салона на день недели
	hours, err := uc.shopRepo.GetHours(ctx, staff.ShopID, weekday)
	if err != nil {
		if errors.Is(err, shopRepo.ErrHoursNotFound) {
			uc.logger.Info("GetAvailableSlots: shop id=%d closed on weekday %d", staff.ShopID, weekday)
			return resp, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get hours of shop id=%d: %v", staff.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop hours: %v", ErrInternal, err)
	}

	// 4. Занятые интервалы мастера
	appts, err := uc.appointmentRepo.ListOccupying(ctx, req.StaffID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	busy, err := busyFromAppointments(appts)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: malformed appointment: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Генерируем слоты
	slots, err := generateSlots(*hours, busy)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: malformed hours of shop id=%d: %v", staff.ShopID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	resp.Slots = slots

	uc.logger.Info("GetAvailableSlots: %d slots for staff=%d, date=%s", len(slots), req.StaffID, req.Date)

	return resp, nil
}

// Contains проверяет, входит ли время в список слотов
func (r *Response) Contains(hm types.TimeString) bool {
	for _, s := range r.Slots {
		if s == hm {
			return true
		}
	}
	return false
}
