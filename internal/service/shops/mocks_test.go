package shops

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

type mockShopRepo struct {
	mock.Mock
}

func (m *mockShopRepo) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*domain.Shop), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShopRepo) Search(ctx context.Context, filter domain.ShopFilter) ([]*domain.Shop, error) {
	args := m.Called(ctx, filter)
	if s := args.Get(0); s != nil {
		return s.([]*domain.Shop), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShopRepo) DistinctCities(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockShopRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) ListActiveByShop(ctx context.Context, shopID int64) ([]*domain.Service, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]*domain.Service), args.Error(1)
}

type mockStaffRepo struct {
	mock.Mock
}

func (m *mockStaffRepo) ListActiveByShop(ctx context.Context, shopID int64) ([]*domain.Staff, error) {
	args := m.Called(ctx, shopID)
	return args.Get(0).([]*domain.Staff), args.Error(1)
}

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	args := m.Called(ctx, rv)
	if r := args.Get(0); r != nil {
		return r.(*domain.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewRepo) ListLatestByShop(ctx context.Context, shopID int64, limit uint64) ([]*domain.Review, error) {
	args := m.Called(ctx, shopID, limit)
	return args.Get(0).([]*domain.Review), args.Error(1)
}
