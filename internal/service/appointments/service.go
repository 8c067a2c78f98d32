package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/catalog"
	shopRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/shop"
	staffRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/staff"
	"github.com/m04kA/SMC-HairBooking/internal/service/appointments/models"
)

// Service сервис для работы с созданными записями
type Service struct {
	appointmentRepo AppointmentRepository
	shopRepo        ShopRepository
	staffRepo       StaffRepository
	serviceRepo     ServiceRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	shopRepo ShopRepository,
	staffRepo StaffRepository,
	serviceRepo ServiceRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		shopRepo:        shopRepo,
		staffRepo:       staffRepo,
		serviceRepo:     serviceRepo,
		logger:          logger,
	}
}

// GetSummary возвращает итог записи: саму запись и названия салона, мастера и услуги
func (s *Service) GetSummary(ctx context.Context, id int64) (*models.SummaryResponse, error) {
	s.logger.Info("GetSummary: fetching appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := &models.SummaryResponse{Appointment: models.FromDomainAppointment(appt)}

	shop, err := s.shopRepo.GetByID(ctx, appt.ShopID)
	switch {
	case err == nil:
		summary.ShopName = shop.Name
	case !errors.Is(err, shopRepo.ErrShopNotFound):
		s.logger.Error("GetSummary: failed to get shop id=%d: %v", appt.ShopID, err)
		return nil, fmt.Errorf("%w: GetSummary - shop: %v", ErrInternal, err)
	}

	staff, err := s.staffRepo.GetByID(ctx, appt.StaffID)
	switch {
	case err == nil:
		summary.StaffName = staff.Name
	case !errors.Is(err, staffRepo.ErrStaffNotFound):
		s.logger.Error("GetSummary: failed to get staff id=%d: %v", appt.StaffID, err)
		return nil, fmt.Errorf("%w: GetSummary - staff: %v", ErrInternal, err)
	}

	service, err := s.serviceRepo.GetByID(ctx, appt.ServiceID)
	switch {
	case err == nil:
		summary.ServiceName = service.Name
		summary.PriceCents = service.PriceCents
		summary.Price = domain.CentsToEuro(service.PriceCents)
	case !errors.Is(err, catalogRepo.ErrServiceNotFound):
		s.logger.Error("GetSummary: failed to get service id=%d: %v", appt.ServiceID, err)
		return nil, fmt.Errorf("%w: GetSummary - service: %v", ErrInternal, err)
	}

	return summary, nil
}

// ListRecent возвращает последние записи: по дате и времени начала, новые первыми
func (s *Service) ListRecent(ctx context.Context, limit uint64) ([]models.AppointmentResponse, error) {
	list, err := s.appointmentRepo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Error("ListRecent: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRecent - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainAppointmentList(list), nil
}

// Cancel отменяет запись. Запись не удаляется, меняется только статус,
// после чего её время снова считается свободным.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if !appt.CanBeCancelled() {
		s.logger.Info("Cancel: appointment id=%d already cancelled", id)
		result := models.FromDomainAppointment(appt)
		return &result, nil
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, domain.StatusCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: failed to update status of appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - update status: %v", ErrInternal, err)
	}

	appt.Status = domain.StatusCancelled
	s.logger.Info("Cancel: appointment id=%d cancelled", id)

	result := models.FromDomainAppointment(appt)
	return &result, nil
}

func (s *Service) getAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("failed to get appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: get appointment: %v", ErrInternal, err)
	}
	return appt, nil
}
