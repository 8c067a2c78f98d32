package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/catalog"
	shopRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/shop"
	staffRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/staff"
	"github.com/m04kA/SMC-HairBooking/internal/integrations/mailer"
	slotsUC "github.com/m04kA/SMC-HairBooking/internal/usecase/get_available_slots"
)

// UseCase use case подтверждения записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	shopRepo        ShopRepository
	staffRepo       StaffRepository
	serviceRepo     ServiceRepository
	slots           SlotsProvider
	txManager       TransactionManager
	notifier        Notifier
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	shopRepo ShopRepository,
	staffRepo StaffRepository,
	serviceRepo ServiceRepository,
	slots SlotsProvider,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		shopRepo:        shopRepo,
		staffRepo:       staffRepo,
		serviceRepo:     serviceRepo,
		slots:           slots,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute подтверждает запись: повторно проверяет свободность времени и создаёт запись
// в одной сериализуемой транзакции. Письмо клиенту отправляется после фиксации и
// на результат не влияет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: shop=%d, staff=%d, service=%d, date=%s, start=%s",
		req.ShopID, req.StaffID, req.ServiceID, req.ApptDate, req.StartHM)

	// 1. Валидация входных данных
	cust, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем салон, услугу и мастера
	shop, service, staff, err := uc.loadParticipants(ctx, req)
	if err != nil {
		return nil, err
	}

	endHM, err := req.StartHM.AddMinutes(domain.SlotDurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created *domain.Appointment

	// 3. Повторная проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Время всё ещё свободно
		slots, err := uc.slots.Execute(txCtx, &slotsUC.Request{
			StaffID:         staff.ID,
			Date:            req.ApptDate,
			DurationMinutes: service.DurationMin,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to recheck slots: %v", ErrInternal, err)
		}
		if !slots.Contains(req.StartHM) {
			return ErrSlotTaken
		}

		// 3.2. Создаём запись
		appt := &domain.Appointment{
			ShopID:        shop.ID,
			StaffID:       staff.ID,
			ServiceID:     service.ID,
			ApptDate:      req.ApptDate,
			StartHM:       req.StartHM,
			EndHM:         endHM,
			CustomerName:  cust.name,
			Phone:         cust.phone,
			CustomerEmail: cust.email,
			Notes:         cust.notes,
			PaymentMethod: cust.payment,
			Status:        domain.StatusNew,
		}

		created, err = uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return ErrSlotTaken
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotTaken) || isSerializationFailure(err) {
			uc.metrics.IncSlotConflicts()
			uc.logger.Warn("CreateBooking: slot %s %s of staff=%d was taken concurrently",
				req.ApptDate, req.StartHM, staff.ID)
			return nil, ErrSlotTaken
		}
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateBooking: %v", err)
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.IncAppointmentsCreated()
	uc.logger.Info("CreateBooking: created appointment id=%d", created.ID)

	// 4. Письмо клиенту, ошибки не влияют на результат
	sent := uc.notify(ctx, created, shop, service, staff)

	return &Response{
		ID:               created.ID,
		ShopID:           created.ShopID,
		StaffID:          created.StaffID,
		ServiceID:        created.ServiceID,
		ApptDate:         created.ApptDate,
		StartHM:          created.StartHM,
		EndHM:            created.EndHM,
		PaymentMethod:    created.PaymentMethod,
		Status:           created.Status,
		CreatedAt:        created.CreatedAt,
		NotificationSent: sent,
	}, nil
}

// loadParticipants загружает салон, услугу и мастера и проверяет, что они относятся к салону и активны
func (uc *UseCase) loadParticipants(ctx context.Context, req *Request) (*domain.Shop, *domain.Service, *domain.Staff, error) {
	shop, err := uc.shopRepo.GetByID(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			return nil, nil, nil, ErrShopNotFound
		}
		uc.logger.Error("CreateBooking: failed to get shop id=%d: %v", req.ShopID, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, nil, nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.ShopID != shop.ID || !service.IsActive {
		return nil, nil, nil, ErrServiceNotFound
	}

	staff, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, nil, nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, nil, nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if staff.ShopID != shop.ID || !staff.IsActive {
		return nil, nil, nil, ErrStaffNotFound
	}

	return shop, service, staff, nil
}

func (uc *UseCase) notify(ctx context.Context, appt *domain.Appointment, shop *domain.Shop, service *domain.Service, staff *domain.Staff) bool {
	err := uc.notifier.SendBookingConfirmation(ctx, mailer.BookingConfirmation{
		To:           appt.CustomerEmail,
		ShopName:     shop.Name,
		ServiceName:  service.Name,
		StaffName:    staff.Name,
		ApptDate:     appt.ApptDate,
		StartHM:      appt.StartHM.String(),
		EndHM:        appt.EndHM.String(),
		CustomerName: appt.CustomerName,
		Phone:        appt.Phone,
	})
	if err == nil {
		return true
	}

	if !errors.Is(err, mailer.ErrDisabled) {
		uc.metrics.IncNotificationsFailed()
		uc.logger.Warn("CreateBooking: confirmation email for appointment id=%d failed: %v", appt.ID, err)
	}
	return false
}

// isSerializationFailure проверяет, что транзакцию отменила БД из-за конкурентной записи
func isSerializationFailure(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "40001"
}
