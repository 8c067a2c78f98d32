package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	shopRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/shop"
	"github.com/m04kA/SMC-HairBooking/internal/service/admin/models"
	appointmentModels "github.com/m04kA/SMC-HairBooking/internal/service/appointments/models"
	hoursModels "github.com/m04kA/SMC-HairBooking/internal/service/hours/models"
	shopModels "github.com/m04kA/SMC-HairBooking/internal/service/shops/models"
)

// Service back-office администратора: вход по общему паролю, салоны, мастера и услуги
type Service struct {
	shopRepo        ShopRepository
	staffRepo       StaffRepository
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	sessions        SessionStore
	txManager       TransactionManager
	passwordHash    []byte
	logger          Logger
}

// NewService создает новый экземпляр сервиса администратора.
// passwordHash - bcrypt-хэш общего пароля.
func NewService(
	shopRepo ShopRepository,
	staffRepo StaffRepository,
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	sessions SessionStore,
	txManager TransactionManager,
	passwordHash []byte,
	logger Logger,
) *Service {
	return &Service{
		shopRepo:        shopRepo,
		staffRepo:       staffRepo,
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		sessions:        sessions,
		txManager:       txManager,
		passwordHash:    passwordHash,
		logger:          logger,
	}
}

// Dashboard собирает панель администратора. Если салон не выбран, берётся первый по названию.
func (s *Service) Dashboard(ctx context.Context, selectedShopID *int64) (*models.DashboardResponse, error) {
	shops, err := s.shopRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Dashboard: failed to list shops: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - shops: %v", ErrInternal, err)
	}

	resp := &models.DashboardResponse{
		Shops:    shopModels.FromDomainShops(shops),
		Staff:    []shopModels.StaffResponse{},
		Services: []shopModels.ServiceResponse{},
		Hours:    []hoursModels.DayHours{},
	}

	shopID := selectedShopID
	if shopID == nil && len(shops) > 0 {
		shopID = &shops[0].ID
	}

	if shopID != nil {
		resp.SelectedShopID = shopID
		if err := s.fillSelectedShop(ctx, *shopID, resp); err != nil {
			return nil, err
		}
	}

	appts, err := s.appointmentRepo.ListRecent(ctx, domain.DashboardAppointments)
	if err != nil {
		s.logger.Error("Dashboard: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - appointments: %v", ErrInternal, err)
	}
	resp.Appointments = appointmentModels.FromDomainAppointmentList(appts)

	return resp, nil
}

// fillSelectedShop добавляет данные выбранного салона. Несуществующий салон даёт пустой блок.
func (s *Service) fillSelectedShop(ctx context.Context, shopID int64, resp *models.DashboardResponse) error {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			return nil
		}
		s.logger.Error("Dashboard: failed to get shop id=%d: %v", shopID, err)
		return fmt.Errorf("%w: Dashboard - shop: %v", ErrInternal, err)
	}
	selected := shopModels.FromDomainShop(shop)
	resp.SelectedShop = &selected

	staff, err := s.staffRepo.ListActiveByShop(ctx, shopID)
	if err != nil {
		return fmt.Errorf("%w: Dashboard - staff: %v", ErrInternal, err)
	}
	resp.Staff = shopModels.FromDomainStaff(staff)

	services, err := s.serviceRepo.ListActiveByShop(ctx, shopID)
	if err != nil {
		return fmt.Errorf("%w: Dashboard - services: %v", ErrInternal, err)
	}
	resp.Services = shopModels.FromDomainServices(services)

	hours, err := s.shopRepo.ListHours(ctx, shopID)
	if err != nil {
		return fmt.Errorf("%w: Dashboard - hours: %v", ErrInternal, err)
	}
	resp.Hours = hoursModels.FromDomainIntervals(hours)

	return nil
}

// CreateShop создает открытый салон с часами работы по умолчанию (пн-сб 10:00-18:00)
func (s *Service) CreateShop(ctx context.Context, req *models.CreateShopRequest) (*shopModels.ShopResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrMissingName
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		city = domain.DefaultCity
	}

	shop := &domain.Shop{
		Name:        truncate(name, domain.MaxShopNameLength),
		City:        city,
		Area:        strings.TrimSpace(req.Area),
		Category:    domain.NormalizeCategory(strings.TrimSpace(req.Category)),
		Address:     strings.TrimSpace(req.Address),
		Phone:       strings.TrimSpace(req.Phone),
		Description: strings.TrimSpace(req.Description),
		IsOpen:      true,
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.shopRepo.Create(txCtx, shop)
		if err != nil {
			return err
		}
		shop = created
		return s.shopRepo.ReplaceHours(txCtx, shop.ID, domain.DefaultIntervals(domain.DefaultShopWeekdays))
	})
	if err != nil {
		s.logger.Error("CreateShop: failed to create shop %q: %v", name, err)
		return nil, fmt.Errorf("%w: CreateShop: %v", ErrInternal, err)
	}

	s.logger.Info("CreateShop: shop id=%d created, category=%s", shop.ID, shop.Category)
	result := shopModels.FromDomainShop(shop)
	return &result, nil
}

// UpdateCategory меняет категорию салона. Неизвестная категория заменяется на Hair.
func (s *Service) UpdateCategory(ctx context.Context, shopID int64, category string) (*shopModels.ShopResponse, error) {
	shop, err := s.getShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	c := strings.TrimSpace(category)
	if c == "" {
		c = string(shop.Category)
	}
	shop.Category = domain.NormalizeCategory(c)

	if err := s.shopRepo.UpdateCategory(ctx, shopID, shop.Category); err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			return nil, ErrShopNotFound
		}
		s.logger.Error("UpdateCategory: failed for shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: UpdateCategory: %v", ErrInternal, err)
	}

	result := shopModels.FromDomainShop(shop)
	return &result, nil
}

// ToggleOpen открывает или закрывает салон
func (s *Service) ToggleOpen(ctx context.Context, shopID int64) (*models.ToggleResponse, error) {
	isOpen, err := s.shopRepo.ToggleOpen(ctx, shopID)
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			return nil, ErrShopNotFound
		}
		s.logger.Error("ToggleOpen: failed for shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: ToggleOpen: %v", ErrInternal, err)
	}

	s.logger.Info("ToggleOpen: shop id=%d is_open=%t", shopID, isOpen)
	return &models.ToggleResponse{ShopID: shopID, IsOpen: isOpen}, nil
}

// DeleteShop удаляет салон вместе с мастерами, услугами, расписаниями, записями и отзывами
func (s *Service) DeleteShop(ctx context.Context, shopID int64) error {
	if err := s.shopRepo.Delete(ctx, shopID); err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			return ErrShopNotFound
		}
		s.logger.Error("DeleteShop: failed for shop id=%d: %v", shopID, err)
		return fmt.Errorf("%w: DeleteShop: %v", ErrInternal, err)
	}

	s.logger.Warn("DeleteShop: shop id=%d deleted", shopID)
	return nil
}

// CreateStaff добавляет мастера с расписанием по умолчанию (вт-сб 10:00-18:00)
func (s *Service) CreateStaff(ctx context.Context, req *models.CreateStaffRequest) (*shopModels.StaffResponse, error) {
	name := strings.TrimSpace(req.Name)
	if req.ShopID <= 0 {
		return nil, ErrMissingShop
	}
	if name == "" {
		return nil, ErrMissingName
	}
	if _, err := s.getShop(ctx, req.ShopID); err != nil {
		return nil, err
	}

	staff := &domain.Staff{
		ShopID:   req.ShopID,
		Name:     name,
		Title:    strings.TrimSpace(req.Title),
		IsActive: true,
	}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := s.staffRepo.Create(txCtx, staff)
		if err != nil {
			return err
		}
		staff = created
		return s.staffRepo.ReplaceHours(txCtx, staff.ID, domain.DefaultIntervals(domain.DefaultStaffWeekdays))
	})
	if err != nil {
		s.logger.Error("CreateStaff: failed for shop id=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: CreateStaff: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStaff: staff id=%d added to shop id=%d", staff.ID, staff.ShopID)
	return &shopModels.FromDomainStaff([]*domain.Staff{staff})[0], nil
}

// CreateService добавляет услугу. Длительность всегда полчаса.
func (s *Service) CreateService(ctx context.Context, req *models.CreateServiceRequest) (*shopModels.ServiceResponse, error) {
	name := strings.TrimSpace(req.Name)
	if req.ShopID <= 0 {
		return nil, ErrMissingShop
	}
	if name == "" {
		return nil, ErrMissingName
	}
	if _, err := s.getShop(ctx, req.ShopID); err != nil {
		return nil, err
	}

	service, err := s.serviceRepo.Create(ctx, &domain.Service{
		ShopID:      req.ShopID,
		Name:        name,
		DurationMin: domain.SlotDurationMinutes,
		PriceCents:  ParsePriceCents(req.Price),
		IsActive:    true,
	})
	if err != nil {
		s.logger.Error("CreateService: failed for shop id=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: CreateService: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: service id=%d added to shop id=%d, price=%d", service.ID, service.ShopID, service.PriceCents)
	return &shopModels.FromDomainServices([]*domain.Service{service})[0], nil
}

func (s *Service) getShop(ctx context.Context, shopID int64) (*domain.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			return nil, ErrShopNotFound
		}
		s.logger.Error("failed to get shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: get shop: %v", ErrInternal, err)
	}
	return shop, nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
