package booking_wizard

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	catalogRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/catalog"
	shopRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/shop"
	staffRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/staff"
	createBooking "github.com/m04kA/SMC-HairBooking/internal/usecase/create_booking"
	slotsUC "github.com/m04kA/SMC-HairBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-HairBooking/pkg/timegrid"
	"github.com/m04kA/SMC-HairBooking/pkg/types"
)

// UseCase пошаговый мастер записи: date -> service -> staff -> time -> confirm.
// Состояние копится в черновике сессии; каждый шаг проверяет предусловие
// и при его отсутствии отправляет пользователя на более ранний шаг.
type UseCase struct {
	drafts      DraftStore
	shopRepo    ShopRepository
	serviceRepo ServiceRepository
	staffRepo   StaffRepository
	slots       SlotsProvider
	creator     BookingCreator
	logger      Logger
	now         func() time.Time
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	drafts DraftStore,
	shopRepo ShopRepository,
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	slots SlotsProvider,
	creator BookingCreator,
	logger Logger,
) *UseCase {
	return &UseCase{
		drafts:      drafts,
		shopRepo:    shopRepo,
		serviceRepo: serviceRepo,
		staffRepo:   staffRepo,
		slots:       slots,
		creator:     creator,
		logger:      logger,
		now:         time.Now,
	}
}

// Start начинает запись в салон заново: прежний черновик отбрасывается
func (uc *UseCase) Start(ctx context.Context, sessionID string, shopID int64) error {
	if _, err := uc.getShop(ctx, shopID); err != nil {
		return err
	}

	if err := uc.saveDraft(ctx, sessionID, &domain.BookingDraft{ShopID: shopID}); err != nil {
		return err
	}

	uc.logger.Info("BookingWizard: session started booking for shop=%d", shopID)
	return nil
}

// View возвращает данные шага. Если предусловие шага не выполнено,
// возвращается *StepRedirectError с шагом, который нужно показать.
func (uc *UseCase) View(ctx context.Context, sessionID string, shopID int64, step domain.BookingStep) (*StepView, error) {
	shop, draft, err := uc.load(ctx, sessionID, shopID, step)
	if err != nil {
		return nil, err
	}

	view := &StepView{Step: step, Shop: shop, Draft: *draft}

	switch step {
	case domain.StepDate:
		view.Today = uc.now().Format(timegrid.DateFormat)

	case domain.StepService:
		view.Services, err = uc.serviceRepo.ListActiveByShop(ctx, shopID)
		if err != nil {
			uc.logger.Error("BookingWizard: failed to list services of shop=%d: %v", shopID, err)
			return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
		}

	case domain.StepStaff:
		view.Staff, err = uc.staffRepo.ListActiveByShop(ctx, shopID)
		if err != nil {
			uc.logger.Error("BookingWizard: failed to list staff of shop=%d: %v", shopID, err)
			return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
		}

	case domain.StepTime, domain.StepConfirm:
		view.Service, view.StaffMember, err = uc.selected(ctx, draft)
		if err != nil {
			return nil, err
		}
		if step == domain.StepTime {
			view.Slots, err = uc.availableSlots(ctx, draft)
			if err != nil {
				return nil, err
			}
		}

	default:
		return nil, domain.ErrUnknownStep
	}

	return view, nil
}

// SubmitDate сохраняет дату записи. Черновик другого салона заменяется новым.
func (uc *UseCase) SubmitDate(ctx context.Context, sessionID string, shopID int64, isoDate string) error {
	_, draft, err := uc.load(ctx, sessionID, shopID, domain.StepDate)
	if err != nil {
		return err
	}

	if _, err := timegrid.ParseDate(isoDate); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	draft.ApptDate = isoDate
	return uc.saveDraft(ctx, sessionID, draft)
}

// SubmitService сохраняет услугу; она должна быть активной и принадлежать салону
func (uc *UseCase) SubmitService(ctx context.Context, sessionID string, shopID, serviceID int64) error {
	_, draft, err := uc.load(ctx, sessionID, shopID, domain.StepService)
	if err != nil {
		return err
	}

	if serviceID <= 0 {
		return ErrInvalidService
	}
	service, err := uc.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return ErrInvalidService
		}
		uc.logger.Error("BookingWizard: failed to get service id=%d: %v", serviceID, err)
		return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.ShopID != shopID || !service.IsActive {
		return ErrInvalidService
	}

	draft.ServiceID = service.ID
	return uc.saveDraft(ctx, sessionID, draft)
}

// SubmitStaff сохраняет мастера; он должен быть активным и работать в салоне
func (uc *UseCase) SubmitStaff(ctx context.Context, sessionID string, shopID, staffID int64) error {
	_, draft, err := uc.load(ctx, sessionID, shopID, domain.StepStaff)
	if err != nil {
		return err
	}

	if staffID <= 0 {
		return ErrInvalidStaff
	}
	staff, err := uc.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return ErrInvalidStaff
		}
		uc.logger.Error("BookingWizard: failed to get staff id=%d: %v", staffID, err)
		return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if staff.ShopID != shopID || !staff.IsActive {
		return ErrInvalidStaff
	}

	draft.StaffID = staff.ID
	return uc.saveDraft(ctx, sessionID, draft)
}

// SubmitTime сохраняет время начала, если оно входит в свободные слоты мастера.
// Время окончания всегда на полчаса позже начала.
func (uc *UseCase) SubmitTime(ctx context.Context, sessionID string, shopID int64, hm string) error {
	_, draft, err := uc.load(ctx, sessionID, shopID, domain.StepTime)
	if err != nil {
		return err
	}

	start, err := types.NewTimeStringFromString(hm)
	if err != nil {
		return ErrSlotUnavailable
	}

	slots, err := uc.availableSlots(ctx, draft)
	if err != nil {
		return err
	}
	if !slices.Contains(slots, start) {
		return ErrSlotUnavailable
	}

	end, err := start.AddMinutes(domain.SlotDurationMinutes)
	if err != nil {
		return ErrSlotUnavailable
	}

	draft.StartHM = start
	draft.EndHM = end
	return uc.saveDraft(ctx, sessionID, draft)
}

// Confirm создаёт запись по черновику. При успехе черновик удаляется.
// Если время успели занять, черновик остаётся, а пользователь отправляется на шаг time.
func (uc *UseCase) Confirm(ctx context.Context, sessionID string, shopID int64, c Contact) (*createBooking.Response, error) {
	_, draft, err := uc.load(ctx, sessionID, shopID, domain.StepConfirm)
	if err != nil {
		return nil, err
	}

	resp, err := uc.creator.Execute(ctx, &createBooking.Request{
		ShopID:      draft.ShopID,
		ApptDate:    draft.ApptDate,
		ServiceID:   draft.ServiceID,
		StaffID:     draft.StaffID,
		StartHM:     draft.StartHM,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Notes:       c.Notes,
		Payment:     c.Payment,
		AcceptTerms: c.AcceptTerms,
	})
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			uc.logger.Warn("BookingWizard: slot %s %s taken before confirmation, back to time step",
				draft.ApptDate, draft.StartHM)
			return nil, &StepRedirectError{Step: domain.StepTime, Cause: err}
		case errors.Is(err, createBooking.ErrServiceNotFound):
			return nil, &StepRedirectError{Step: domain.StepService, Cause: err}
		case errors.Is(err, createBooking.ErrStaffNotFound):
			return nil, &StepRedirectError{Step: domain.StepStaff, Cause: err}
		case errors.Is(err, createBooking.ErrShopNotFound):
			return nil, ErrShopNotFound
		}
		return nil, err
	}

	if err := uc.drafts.ClearDraft(ctx, sessionID); err != nil {
		// Запись уже создана, повторное подтверждение упрётся в занятый слот
		uc.logger.Warn("BookingWizard: failed to clear draft after appointment id=%d: %v", resp.ID, err)
	}

	return resp, nil
}

// load проверяет салон и предусловие шага и возвращает черновик для изменения
func (uc *UseCase) load(ctx context.Context, sessionID string, shopID int64, step domain.BookingStep) (*domain.Shop, *domain.BookingDraft, error) {
	shop, err := uc.getShop(ctx, shopID)
	if err != nil {
		return nil, nil, err
	}

	draft, err := uc.drafts.GetDraft(ctx, sessionID)
	if err != nil {
		uc.logger.Error("BookingWizard: failed to load draft: %v", err)
		return nil, nil, fmt.Errorf("%w: failed to load draft: %v", ErrInternal, err)
	}

	if resolved := draft.Resolve(step, shopID); resolved != step {
		return nil, nil, &StepRedirectError{Step: resolved}
	}

	if draft == nil || draft.ShopID != shopID {
		draft = &domain.BookingDraft{ShopID: shopID}
	}
	return shop, draft, nil
}

func (uc *UseCase) getShop(ctx context.Context, shopID int64) (*domain.Shop, error) {
	shop, err := uc.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			return nil, ErrShopNotFound
		}
		uc.logger.Error("BookingWizard: failed to get shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}
	return shop, nil
}

// selected загружает выбранные в черновике услугу и мастера.
// Если их успели удалить, пользователь возвращается на соответствующий шаг.
func (uc *UseCase) selected(ctx context.Context, draft *domain.BookingDraft) (*domain.Service, *domain.Staff, error) {
	service, err := uc.serviceRepo.GetByID(ctx, draft.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, nil, &StepRedirectError{Step: domain.StepService, Cause: ErrInvalidService}
		}
		return nil, nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	staff, err := uc.staffRepo.GetByID(ctx, draft.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, nil, &StepRedirectError{Step: domain.StepStaff, Cause: ErrInvalidStaff}
		}
		return nil, nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	return service, staff, nil
}

func (uc *UseCase) availableSlots(ctx context.Context, draft *domain.BookingDraft) ([]types.TimeString, error) {
	resp, err := uc.slots.Execute(ctx, &slotsUC.Request{
		StaffID:         draft.StaffID,
		Date:            draft.ApptDate,
		DurationMinutes: domain.SlotDurationMinutes,
	})
	if err != nil {
		uc.logger.Error("BookingWizard: failed to compute slots for staff=%d date=%s: %v",
			draft.StaffID, draft.ApptDate, err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}
	return resp.Slots, nil
}

func (uc *UseCase) saveDraft(ctx context.Context, sessionID string, draft *domain.BookingDraft) error {
	if err := uc.drafts.SaveDraft(ctx, sessionID, draft); err != nil {
		uc.logger.Error("BookingWizard: failed to save draft: %v", err)
		return fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
	}
	return nil
}
