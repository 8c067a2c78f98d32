package get_available_slots

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

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

type mockShopRepo struct {
	mock.Mock
}

func (m *mockShopRepo) GetHours(ctx context.Context, shopID int64, weekday int) (*domain.WorkingInterval, error) {
	args := m.Called(ctx, shopID, weekday)
	if h := args.Get(0); h != nil {
		return h.(*domain.WorkingInterval), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) ListOccupying(ctx context.Context, staffID int64, apptDate string) ([]*domain.Appointment, error) {
	args := m.Called(ctx, staffID, apptDate)
	if a := args.Get(0); a != nil {
		return a.([]*domain.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}
