package booking_wizard

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-HairBooking/internal/usecase/create_booking"
	slotsUC "github.com/m04kA/SMC-HairBooking/internal/usecase/get_available_slots"
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

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*domain.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockServiceRepo) ListActiveByShop(ctx context.Context, shopID int64) ([]*domain.Service, error) {
	args := m.Called(ctx, shopID)
	if s := args.Get(0); s != nil {
		return s.([]*domain.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockStaffRepo struct {
	mock.Mock
}

func (m *mockStaffRepo) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*domain.Staff), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStaffRepo) ListActiveByShop(ctx context.Context, shopID int64) ([]*domain.Staff, error) {
	args := m.Called(ctx, shopID)
	if s := args.Get(0); s != nil {
		return s.([]*domain.Staff), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSlots struct {
	mock.Mock
}

func (m *mockSlots) Execute(ctx context.Context, req *slotsUC.Request) (*slotsUC.Response, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*slotsUC.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCreator struct {
	mock.Mock
}

func (m *mockCreator) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}
