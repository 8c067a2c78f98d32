package create_booking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	"github.com/m04kA/SMC-HairBooking/internal/integrations/mailer"
	slotsUC "github.com/m04kA/SMC-HairBooking/internal/usecase/get_available_slots"
)

type mockAppointmentRepo struct {
	mock.Mock
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	args := m.Called(ctx, appt)
	if a := args.Get(0); a != nil {
		return a.(*domain.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

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

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendBookingConfirmation(ctx context.Context, msg mailer.BookingConfirmation) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// inlineTx выполняет fn без БД; commitErr имитирует ошибку фиксации
type inlineTx struct {
	commitErr error
}

func (t *inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return t.commitErr
}

type countingMetrics struct {
	created   int
	conflicts int
	failed    int
}

func (m *countingMetrics) IncAppointmentsCreated() { m.created++ }
func (m *countingMetrics) IncSlotConflicts()       { m.conflicts++ }
func (m *countingMetrics) IncNotificationsFailed() { m.failed++ }
