package hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	shopRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/shop"
	staffRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/staff"
	"github.com/m04kA/SMC-HairBooking/internal/service/hours/models"
)

// Service часы работы салонов и расписание мастеров.
// Сохранение заменяет все интервалы владельца целиком.
type Service struct {
	shopRepo  ShopRepository
	staffRepo StaffRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса часов работы
func NewService(
	shopRepo ShopRepository,
	staffRepo StaffRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		shopRepo:  shopRepo,
		staffRepo: staffRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// GetShopHours возвращает часы работы салона по дням недели
func (s *Service) GetShopHours(ctx context.Context, shopID int64) (*models.ShopHoursResponse, error) {
	if _, err := s.getShop(ctx, shopID); err != nil {
		return nil, err
	}

	intervals, err := s.shopRepo.ListHours(ctx, shopID)
	if err != nil {
		s.logger.Error("GetShopHours: failed to list hours of shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: GetShopHours - list: %v", ErrInternal, err)
	}

	return &models.ShopHoursResponse{ShopID: shopID, Hours: models.FromDomainIntervals(intervals)}, nil
}

// SaveShopHours заменяет часы работы салона. Дни без начала или конца считаются выходными.
func (s *Service) SaveShopHours(ctx context.Context, shopID int64, days []models.DayHours) (*models.ShopHoursResponse, error) {
	s.logger.Info("SaveShopHours: saving %d rows for shop=%d", len(days), shopID)

	// 1. Валидация
	intervals, err := models.ToDomainIntervals(days)
	if err != nil {
		s.logger.Warn("SaveShopHours: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}

	// 2. Салон существует
	if _, err := s.getShop(ctx, shopID); err != nil {
		return nil, err
	}

	// 3. Замена в транзакции
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.shopRepo.ReplaceHours(txCtx, shopID, intervals)
	})
	if err != nil {
		s.logger.Error("SaveShopHours: failed to replace hours of shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: SaveShopHours - replace: %v", ErrInternal, err)
	}

	s.logger.Info("SaveShopHours: shop=%d now open %d days a week", shopID, len(intervals))
	return &models.ShopHoursResponse{ShopID: shopID, Hours: models.FromDomainIntervals(intervals)}, nil
}

// GetStaffHours возвращает расписание мастера
func (s *Service) GetStaffHours(ctx context.Context, staffID int64) (*models.StaffHoursResponse, error) {
	staff, err := s.getStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	intervals, err := s.staffRepo.ListHours(ctx, staffID)
	if err != nil {
		s.logger.Error("GetStaffHours: failed to list hours of staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetStaffHours - list: %v", ErrInternal, err)
	}

	resp := &models.StaffHoursResponse{
		StaffID:   staff.ID,
		StaffName: staff.Name,
		ShopID:    staff.ShopID,
		Hours:     models.FromDomainIntervals(intervals),
	}

	shop, err := s.shopRepo.GetByID(ctx, staff.ShopID)
	switch {
	case err == nil:
		resp.ShopName = shop.Name
	case !errors.Is(err, shopRepo.ErrShopNotFound):
		s.logger.Error("GetStaffHours: failed to get shop id=%d: %v", staff.ShopID, err)
		return nil, fmt.Errorf("%w: GetStaffHours - shop: %v", ErrInternal, err)
	}

	return resp, nil
}

// SaveStaffHours заменяет расписание мастера.
// Расписание хранится, но на расчёт слотов не влияет: слоты строятся по часам салона.
func (s *Service) SaveStaffHours(ctx context.Context, staffID int64, days []models.DayHours) (*models.StaffHoursResponse, error) {
	s.logger.Info("SaveStaffHours: saving %d rows for staff=%d", len(days), staffID)

	intervals, err := models.ToDomainIntervals(days)
	if err != nil {
		s.logger.Warn("SaveStaffHours: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}

	staff, err := s.getStaff(ctx, staffID)
	if err != nil {
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.staffRepo.ReplaceHours(txCtx, staffID, intervals)
	})
	if err != nil {
		s.logger.Error("SaveStaffHours: failed to replace hours of staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: SaveStaffHours - replace: %v", ErrInternal, err)
	}

	return &models.StaffHoursResponse{
		StaffID:   staff.ID,
		StaffName: staff.Name,
		ShopID:    staff.ShopID,
		Hours:     models.FromDomainIntervals(intervals),
	}, nil
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

func (s *Service) getStaff(ctx context.Context, staffID int64) (*domain.Staff, error) {
	staff, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("failed to get staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: get staff: %v", ErrInternal, err)
	}
	return staff, nil
}
