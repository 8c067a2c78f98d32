package booking_wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	"github.com/m04kA/SMC-HairBooking/internal/infra/session"
	shopRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/shop"
	createBooking "github.com/m04kA/SMC-HairBooking/internal/usecase/create_booking"
	slotsUC "github.com/m04kA/SMC-HairBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-HairBooking/pkg/logger"
	"github.com/m04kA/SMC-HairBooking/pkg/types"
)

const sid = "session-1"

type fixture struct {
	store    *session.Store
	shops    *mockShopRepo
	services *mockServiceRepo
	staff    *mockStaffRepo
	slots    *mockSlots
	creator  *mockCreator
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		store:    session.NewStore(session.NewMemoryBackend(), time.Hour),
		shops:    new(mockShopRepo),
		services: new(mockServiceRepo),
		staff:    new(mockStaffRepo),
		slots:    new(mockSlots),
		creator:  new(mockCreator),
	}
	f.uc = NewUseCase(f.store, f.shops, f.services, f.staff, f.slots, f.creator, logger.Nop())
	f.uc.now = func() time.Time { return time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC) }

	f.shops.On("GetByID", mock.Anything, int64(1)).Return(&domain.Shop{ID: 1, Name: "Barber Craft"}, nil).Maybe()
	f.shops.On("GetByID", mock.Anything, int64(2)).Return(&domain.Shop{ID: 2, Name: "Hair Studio"}, nil).Maybe()
	f.shops.On("GetByID", mock.Anything, int64(99)).Return(nil, shopRepo.ErrShopNotFound).Maybe()
	f.services.On("GetByID", mock.Anything, int64(2)).
		Return(&domain.Service{ID: 2, ShopID: 1, Name: "Κούρεμα", DurationMin: 30, IsActive: true}, nil).Maybe()
	f.staff.On("GetByID", mock.Anything, int64(3)).
		Return(&domain.Staff{ID: 3, ShopID: 1, Name: "Νίκος", IsActive: true}, nil).Maybe()
	f.slots.On("Execute", mock.Anything, &slotsUC.Request{StaffID: 3, Date: "2024-01-01", DurationMinutes: 30}).
		Return(&slotsUC.Response{StaffID: 3, Date: "2024-01-01", Slots: []types.TimeString{"10:00", "10:30"}}, nil).Maybe()
	return f
}

func (f *fixture) saveDraft(t *testing.T, d *domain.BookingDraft) {
	t.Helper()
	require.NoError(t, f.store.SaveDraft(context.Background(), sid, d))
}

func (f *fixture) draft(t *testing.T) *domain.BookingDraft {
	t.Helper()
	d, err := f.store.GetDraft(context.Background(), sid)
	require.NoError(t, err)
	return d
}

func requireRedirect(t *testing.T, err error, step domain.BookingStep) *StepRedirectError {
	t.Helper()
	var redirect *StepRedirectError
	require.True(t, errors.As(err, &redirect), "expected redirect, got %v", err)
	assert.Equal(t, step, redirect.Step)
	return redirect
}

func TestWizard_FullFlow(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	require.NoError(t, f.uc.Start(ctx, sid, 1))
	require.NoError(t, f.uc.SubmitDate(ctx, sid, 1, "2024-01-01"))
	require.NoError(t, f.uc.SubmitService(ctx, sid, 1, 2))
	require.NoError(t, f.uc.SubmitStaff(ctx, sid, 1, 3))
	require.NoError(t, f.uc.SubmitTime(ctx, sid, 1, "10:30"))

	assert.Equal(t, &domain.BookingDraft{
		ShopID: 1, ApptDate: "2024-01-01", ServiceID: 2, StaffID: 3, StartHM: "10:30", EndHM: "11:00",
	}, f.draft(t))

	f.creator.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
		return r.ShopID == 1 && r.StaffID == 3 && r.ServiceID == 2 && r.StartHM == "10:30" &&
			r.Name == "Κώστας" && r.AcceptTerms
	})).Return(&createBooking.Response{ID: 5, Status: domain.StatusNew}, nil)

	resp, err := f.uc.Confirm(ctx, sid, 1, Contact{
		Name: "Κώστας", Phone: "6900000000", Email: "k@example.com", AcceptTerms: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.ID)
	assert.Nil(t, f.draft(t))
}

func TestWizard_TimeStepBeforeServiceRedirectsToService(t *testing.T) {
	f := newFixture()
	f.saveDraft(t, &domain.BookingDraft{ShopID: 1, ApptDate: "2024-01-01"})

	_, err := f.uc.View(context.Background(), sid, 1, domain.StepTime)
	requireRedirect(t, err, domain.StepService)

	err = f.uc.SubmitTime(context.Background(), sid, 1, "10:00")
	requireRedirect(t, err, domain.StepService)
	f.slots.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestWizard_DraftOfAnotherShopStartsOver(t *testing.T) {
	f := newFixture()
	f.saveDraft(t, &domain.BookingDraft{ShopID: 2, ApptDate: "2024-01-01", ServiceID: 7})

	_, err := f.uc.View(context.Background(), sid, 1, domain.StepService)
	requireRedirect(t, err, domain.StepDate)

	require.NoError(t, f.uc.SubmitDate(context.Background(), sid, 1, "2024-01-02"))
	assert.Equal(t, &domain.BookingDraft{ShopID: 1, ApptDate: "2024-01-02"}, f.draft(t))
}

func TestWizard_ConfirmConflictKeepsDraft(t *testing.T) {
	f := newFixture()
	draft := &domain.BookingDraft{
		ShopID: 1, ApptDate: "2024-01-01", ServiceID: 2, StaffID: 3, StartHM: "10:00", EndHM: "10:30",
	}
	f.saveDraft(t, draft)
	f.creator.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrSlotTaken)

	_, err := f.uc.Confirm(context.Background(), sid, 1, Contact{
		Name: "Κώστας", Phone: "6900000000", Email: "k@example.com", AcceptTerms: true,
	})

	redirect := requireRedirect(t, err, domain.StepTime)
	assert.ErrorIs(t, redirect, createBooking.ErrSlotTaken)
	assert.Equal(t, draft, f.draft(t))
	f.creator.AssertNumberOfCalls(t, "Execute", 1)
}

func TestWizard_ConfirmValidationErrorPassesThrough(t *testing.T) {
	f := newFixture()
	f.saveDraft(t, &domain.BookingDraft{
		ShopID: 1, ApptDate: "2024-01-01", ServiceID: 2, StaffID: 3, StartHM: "10:00", EndHM: "10:30",
	})
	f.creator.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrTermsNotAccepted)

	_, err := f.uc.Confirm(context.Background(), sid, 1, Contact{Name: "a", Phone: "1", Email: "a@b.c"})
	assert.ErrorIs(t, err, createBooking.ErrTermsNotAccepted)
	assert.NotNil(t, f.draft(t))
}

func TestWizard_SubmitValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown shop", func(t *testing.T) {
		f := newFixture()
		assert.ErrorIs(t, f.uc.Start(ctx, sid, 99), ErrShopNotFound)
	})

	t.Run("invalid date", func(t *testing.T) {
		f := newFixture()
		require.NoError(t, f.uc.Start(ctx, sid, 1))
		assert.ErrorIs(t, f.uc.SubmitDate(ctx, sid, 1, "2024-02-30"), ErrInvalidDate)
		assert.Empty(t, f.draft(t).ApptDate)
	})

	t.Run("service of another shop", func(t *testing.T) {
		f := newFixture()
		f.saveDraft(t, &domain.BookingDraft{ShopID: 1, ApptDate: "2024-01-01"})
		f.services.On("GetByID", mock.Anything, int64(8)).
			Return(&domain.Service{ID: 8, ShopID: 2, IsActive: true}, nil)
		assert.ErrorIs(t, f.uc.SubmitService(ctx, sid, 1, 8), ErrInvalidService)
	})

	t.Run("inactive staff", func(t *testing.T) {
		f := newFixture()
		f.saveDraft(t, &domain.BookingDraft{ShopID: 1, ApptDate: "2024-01-01", ServiceID: 2})
		f.staff.On("GetByID", mock.Anything, int64(4)).
			Return(&domain.Staff{ID: 4, ShopID: 1, IsActive: false}, nil)
		assert.ErrorIs(t, f.uc.SubmitStaff(ctx, sid, 1, 4), ErrInvalidStaff)
	})

	t.Run("time not in slots", func(t *testing.T) {
		f := newFixture()
		f.saveDraft(t, &domain.BookingDraft{ShopID: 1, ApptDate: "2024-01-01", ServiceID: 2, StaffID: 3})
		assert.ErrorIs(t, f.uc.SubmitTime(ctx, sid, 1, "11:00"), ErrSlotUnavailable)
		assert.ErrorIs(t, f.uc.SubmitTime(ctx, sid, 1, "10:0"), ErrSlotUnavailable)
		assert.True(t, f.draft(t).StartHM.IsZero())
	})
}

func TestWizard_View(t *testing.T) {
	ctx := context.Background()

	t.Run("date step", func(t *testing.T) {
		f := newFixture()
		view, err := f.uc.View(ctx, sid, 1, domain.StepDate)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", view.Today)
		assert.Equal(t, int64(1), view.Draft.ShopID)
	})

	t.Run("time step lists slots", func(t *testing.T) {
		f := newFixture()
		f.saveDraft(t, &domain.BookingDraft{ShopID: 1, ApptDate: "2024-01-01", ServiceID: 2, StaffID: 3})

		view, err := f.uc.View(ctx, sid, 1, domain.StepTime)
		require.NoError(t, err)
		assert.Equal(t, []types.TimeString{"10:00", "10:30"}, view.Slots)
		assert.Equal(t, "Νίκος", view.StaffMember.Name)
		assert.Equal(t, "Κούρεμα", view.Service.Name)
	})

	t.Run("service step lists active services", func(t *testing.T) {
		f := newFixture()
		f.saveDraft(t, &domain.BookingDraft{ShopID: 1, ApptDate: "2024-01-01"})
		f.services.On("ListActiveByShop", mock.Anything, int64(1)).
			Return([]*domain.Service{{ID: 2, ShopID: 1, Name: "Κούρεμα", IsActive: true}}, nil)

		view, err := f.uc.View(ctx, sid, 1, domain.StepService)
		require.NoError(t, err)
		assert.Len(t, view.Services, 1)
	})

	t.Run("unknown shop", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.View(ctx, sid, 99, domain.StepDate)
		assert.ErrorIs(t, err, ErrShopNotFound)
	})
}
