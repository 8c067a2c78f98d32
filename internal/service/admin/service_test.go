package admin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	"github.com/m04kA/SMC-HairBooking/internal/infra/session"
	shopRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/shop"
	"github.com/m04kA/SMC-HairBooking/internal/service/admin/models"
	"github.com/m04kA/SMC-HairBooking/pkg/logger"
	"github.com/m04kA/SMC-HairBooking/pkg/ptr"
)

type fixture struct {
	shops    *mockShopRepo
	staff    *mockStaffRepo
	services *mockServiceRepo
	appts    *mockAppointmentRepo
	sessions *session.Store
	svc      *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	f := &fixture{
		shops:    new(mockShopRepo),
		staff:    new(mockStaffRepo),
		services: new(mockServiceRepo),
		appts:    new(mockAppointmentRepo),
		sessions: session.NewStore(session.NewMemoryBackend(), time.Hour),
	}
	f.svc = NewService(f.shops, f.staff, f.services, f.appts, f.sessions, inlineTx{}, hash, logger.Nop())
	return f
}

func TestService_LoginLogout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Login(ctx, "sid", "wrong")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	isAdmin, err := f.sessions.IsAdmin(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	newID, err := f.svc.Login(ctx, "sid", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "sid", newID)

	isAdmin, err = f.sessions.IsAdmin(ctx, newID)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	require.NoError(t, f.svc.Logout(ctx, newID))
	isAdmin, err = f.sessions.IsAdmin(ctx, newID)
	require.NoError(t, err)
	assert.False(t, isAdmin)
}

func TestService_LoginRotatesPlantedSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	const planted = "11111111-1111-1111-1111-111111111111"

	require.NoError(t, f.sessions.SaveDraft(ctx, planted, &domain.BookingDraft{ShopID: 3}))

	newID, err := f.svc.Login(ctx, planted, "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, planted, newID)

	isAdmin, err := f.sessions.IsAdmin(ctx, planted)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	draft, err := f.sessions.GetDraft(ctx, newID)
	require.NoError(t, err)
	require.NotNil(t, draft)
	assert.Equal(t, int64(3), draft.ShopID)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("admin")))
}

func TestParsePriceCents(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"12,50", 1250},
		{"12.50", 1250},
		{" 8 ", 800},
		{"", 0},
		{"abc", 0},
		{"-5", 0},
		{"NaN", 0},
		{"Inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePriceCents(tt.raw))
		})
	}
}

func TestService_CreateShop(t *testing.T) {
	f := newFixture(t)
	f.shops.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Shop) bool {
		return s.Name == "Fade Lab" && s.City == domain.DefaultCity && s.Category == domain.CategoryHair && s.IsOpen
	})).Return(&domain.Shop{ID: 4, Name: "Fade Lab", City: domain.DefaultCity, Category: domain.CategoryHair, IsOpen: true}, nil)
	f.shops.On("ReplaceHours", mock.Anything, int64(4), mock.MatchedBy(func(h []domain.WorkingInterval) bool {
		return len(h) == 6 && h[0].Weekday == 0 && h[5].Weekday == 5 && h[0].Start == "10:00" && h[0].End == "18:00"
	})).Return(nil)

	resp, err := f.svc.CreateShop(context.Background(), &models.CreateShopRequest{Name: " Fade Lab ", Category: "Salon"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.ID)
	f.shops.AssertExpectations(t)
}

func TestService_CreateShop_MissingName(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.CreateShop(context.Background(), &models.CreateShopRequest{Name: "  "})
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestService_CreateStaff(t *testing.T) {
	f := newFixture(t)
	f.shops.On("GetByID", mock.Anything, int64(1)).Return(&domain.Shop{ID: 1}, nil)
	f.staff.On("Create", mock.Anything, mock.Anything).Return(&domain.Staff{ID: 8, ShopID: 1, Name: "Ελένη", IsActive: true}, nil)
	f.staff.On("ReplaceHours", mock.Anything, int64(8), domain.DefaultIntervals([]int{1, 2, 3, 4, 5})).Return(nil)

	resp, err := f.svc.CreateStaff(context.Background(), &models.CreateStaffRequest{ShopID: 1, Name: "Ελένη"})
	require.NoError(t, err)
	assert.Equal(t, int64(8), resp.ID)
	f.staff.AssertExpectations(t)
}

func TestService_CreateStaff_Validation(t *testing.T) {
	f := newFixture(t)
	f.shops.On("GetByID", mock.Anything, int64(9)).Return(nil, shopRepo.ErrShopNotFound)

	_, err := f.svc.CreateStaff(context.Background(), &models.CreateStaffRequest{Name: "Ελένη"})
	assert.ErrorIs(t, err, ErrMissingShop)

	_, err = f.svc.CreateStaff(context.Background(), &models.CreateStaffRequest{ShopID: 1})
	assert.ErrorIs(t, err, ErrMissingName)

	_, err = f.svc.CreateStaff(context.Background(), &models.CreateStaffRequest{ShopID: 9, Name: "Ελένη"})
	assert.ErrorIs(t, err, ErrShopNotFound)
}

func TestService_CreateService(t *testing.T) {
	f := newFixture(t)
	f.shops.On("GetByID", mock.Anything, int64(1)).Return(&domain.Shop{ID: 1}, nil)
	f.services.On("Create", mock.Anything, &domain.Service{
		ShopID: 1, Name: "Βαφή", DurationMin: 30, PriceCents: 2550, IsActive: true,
	}).Return(&domain.Service{ID: 3, ShopID: 1, Name: "Βαφή", DurationMin: 30, PriceCents: 2550, IsActive: true}, nil)

	resp, err := f.svc.CreateService(context.Background(), &models.CreateServiceRequest{ShopID: 1, Name: "Βαφή", Price: "25,50"})
	require.NoError(t, err)
	assert.Equal(t, "25.50", resp.Price)
}

func TestService_Dashboard(t *testing.T) {
	f := newFixture(t)
	f.shops.On("ListAll", mock.Anything).Return([]*domain.Shop{{ID: 2, Name: "A"}, {ID: 1, Name: "B"}}, nil)
	f.shops.On("GetByID", mock.Anything, int64(2)).Return(&domain.Shop{ID: 2, Name: "A"}, nil)
	f.staff.On("ListActiveByShop", mock.Anything, int64(2)).Return([]*domain.Staff{{ID: 1, Name: "Νίκος"}}, nil)
	f.services.On("ListActiveByShop", mock.Anything, int64(2)).Return([]*domain.Service{}, nil)
	f.shops.On("ListHours", mock.Anything, int64(2)).
		Return([]domain.WorkingInterval{{Weekday: 0, Start: "10:00", End: "18:00"}}, nil)
	f.appts.On("ListRecent", mock.Anything, uint64(100)).Return([]*domain.Appointment{}, nil)

	resp, err := f.svc.Dashboard(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, ptr.Ptr(int64(2)), resp.SelectedShopID)
	assert.Equal(t, "A", resp.SelectedShop.Name)
	assert.Len(t, resp.Staff, 1)
	assert.Len(t, resp.Hours, 1)
}

func TestService_Dashboard_NoShops(t *testing.T) {
	f := newFixture(t)
	f.shops.On("ListAll", mock.Anything).Return([]*domain.Shop{}, nil)
	f.appts.On("ListRecent", mock.Anything, uint64(100)).Return([]*domain.Appointment{}, nil)

	resp, err := f.svc.Dashboard(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, resp.SelectedShopID)
	assert.Nil(t, resp.SelectedShop)
	assert.Empty(t, resp.Staff)
}

func TestService_ShopActions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.shops.On("ToggleOpen", mock.Anything, int64(1)).Return(false, nil)
	f.shops.On("ToggleOpen", mock.Anything, int64(9)).Return(false, shopRepo.ErrShopNotFound)
	f.shops.On("Delete", mock.Anything, int64(9)).Return(shopRepo.ErrShopNotFound)
	f.shops.On("GetByID", mock.Anything, int64(1)).Return(&domain.Shop{ID: 1, Category: domain.CategoryBarber}, nil)
	f.shops.On("UpdateCategory", mock.Anything, int64(1), domain.CategoryBoth).Return(nil)

	toggled, err := f.svc.ToggleOpen(ctx, 1)
	require.NoError(t, err)
	assert.False(t, toggled.IsOpen)

	_, err = f.svc.ToggleOpen(ctx, 9)
	assert.ErrorIs(t, err, ErrShopNotFound)

	assert.ErrorIs(t, f.svc.DeleteShop(ctx, 9), ErrShopNotFound)

	updated, err := f.svc.UpdateCategory(ctx, 1, "Both")
	require.NoError(t, err)
	assert.Equal(t, "Both", updated.Category)
}
