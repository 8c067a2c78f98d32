package admin

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

type mockShopRepo struct {
	mock.Mock
}

func (m *mockShopRepo) Create(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	args := m.Called(ctx, shop)
	if s := args.Get(0); s != nil {
		return s.(*domain.Shop), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShopRepo) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*domain.Shop), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShopRepo) ListAll(ctx context.Context) ([]*domain.Shop, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Shop), args.Error(1)
}

func (m *mockShopRepo) UpdateCategory(ctx context.Context, id int64, category domain.ShopCategory) error {
	return m.Called(ctx, id, category).Error(0)
}

func (m *mockShopRepo) ToggleOpen(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockShopRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockShopRepo) ListHours(ctx context.Context, shopID int64) ([]domain.WorkingInterval, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]domain.WorkingInterval), args.Error(1)
}

func (m *mockShopRepo) ReplaceHours(ctx context.Context, shopID int64, hours []domain.WorkingInterval) error {
	return m.Called(ctx, shopID, hours).Error(0)
}

type mockStaffRepo struct {
	mock.Mock
}

func (m *mockStaffRepo) Create(ctx context.Context, s *domain.Staff) (*domain.Staff, error) {
	args := m.Called(ctx, s)
	if r := args.Get(0); r != nil {
		return r.(*domain.Staff), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStaffRepo) ListActiveByShop(ctx context.Context, shopID int64) ([]*domain.Staff, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]*domain.Staff), args.Error(1)
}

func (m *mockStaffRepo) ReplaceHours(ctx context.Context, staffID int64, hours []domain.WorkingInterval) error {
	return m.Called(ctx, staffID, hours).Error(0)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) Create(ctx context.Context, s *domain.Service) (*domain.Service, error) {
	args := m.Called(ctx, s)
	if r := args.Get(0); r != nil {
		return r.(*domain.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepo) ListActiveByShop(ctx context.Context, shopID int64) ([]*domain.Service, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]*domain.Service), args.Error(1)
}

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) ListRecent(ctx context.Context, limit uint64) ([]*domain.Appointment, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]*domain.Appointment), args.Error(1)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
