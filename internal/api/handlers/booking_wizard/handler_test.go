package booking_wizard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HairBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HairBooking/internal/api/middleware"
	"github.com/m04kA/SMC-HairBooking/internal/domain"
	bookingWizard "github.com/m04kA/SMC-HairBooking/internal/usecase/booking_wizard"
	createBooking "github.com/m04kA/SMC-HairBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HairBooking/pkg/logger"
	"github.com/m04kA/SMC-HairBooking/pkg/types"
)

const testSession = "session-1"

type mockWizard struct {
	mock.Mock
}

func (m *mockWizard) Start(ctx context.Context, sessionID string, shopID int64) error {
	return m.Called(sessionID, shopID).Error(0)
}

func (m *mockWizard) View(ctx context.Context, sessionID string, shopID int64, step domain.BookingStep) (*bookingWizard.StepView, error) {
	args := m.Called(sessionID, shopID, step)
	if v := args.Get(0); v != nil {
		return v.(*bookingWizard.StepView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockWizard) SubmitDate(ctx context.Context, sessionID string, shopID int64, isoDate string) error {
	return m.Called(sessionID, shopID, isoDate).Error(0)
}

func (m *mockWizard) SubmitService(ctx context.Context, sessionID string, shopID, serviceID int64) error {
	return m.Called(sessionID, shopID, serviceID).Error(0)
}

func (m *mockWizard) SubmitStaff(ctx context.Context, sessionID string, shopID, staffID int64) error {
	return m.Called(sessionID, shopID, staffID).Error(0)
}

func (m *mockWizard) SubmitTime(ctx context.Context, sessionID string, shopID int64, hm string) error {
	return m.Called(sessionID, shopID, hm).Error(0)
}

func (m *mockWizard) Confirm(ctx context.Context, sessionID string, shopID int64, c bookingWizard.Contact) (*createBooking.Response, error) {
	args := m.Called(sessionID, shopID, c)
	if v := args.Get(0); v != nil {
		return v.(*createBooking.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func newRouter(uc BookingWizardUseCase) *mux.Router {
	h := NewHandler(uc, logger.Nop())
	r := mux.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithSessionID(req.Context(), testSession)))
		})
	})
	r.HandleFunc("/api/v1/shops/{shopId}/book", h.Start).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/shops/{shopId}/book/{step}", h.View).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/shops/{shopId}/book/{step}", h.Submit).Methods(http.MethodPost)
	return r
}

func serve(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	return rec
}

func TestHandler_Start(t *testing.T) {
	uc := new(mockWizard)
	uc.On("Start", testSession, int64(1)).Return(nil)

	rec := serve(newRouter(uc), http.MethodPost, "/api/v1/shops/1/book", "")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/api/v1/shops/1/book/date", rec.Header().Get("Location"))
}

func TestHandler_Start_ShopNotFound(t *testing.T) {
	uc := new(mockWizard)
	uc.On("Start", testSession, int64(9)).Return(bookingWizard.ErrShopNotFound)

	rec := serve(newRouter(uc), http.MethodPost, "/api/v1/shops/9/book", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_View_RedirectsToEarlierStep(t *testing.T) {
	uc := new(mockWizard)
	uc.On("View", testSession, int64(1), domain.StepTime).
		Return(nil, &bookingWizard.StepRedirectError{Step: domain.StepService})

	rec := serve(newRouter(uc), http.MethodGet, "/api/v1/shops/1/book/time", "")

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/api/v1/shops/1/book/service", rec.Header().Get("Location"))
}

func TestHandler_View_TimeStep(t *testing.T) {
	uc := new(mockWizard)
	uc.On("View", testSession, int64(1), domain.StepTime).Return(&bookingWizard.StepView{
		Step:        domain.StepTime,
		Shop:        &domain.Shop{ID: 1, Name: "Barber Craft"},
		Draft:       domain.BookingDraft{ShopID: 1, ApptDate: "2024-01-01", ServiceID: 2, StaffID: 3},
		Service:     &domain.Service{ID: 2, Name: "Κούρεμα", PriceCents: 1500},
		StaffMember: &domain.Staff{ID: 3, Name: "Νίκος"},
		Slots:       []types.TimeString{"10:00", "10:30"},
	}, nil)

	rec := serve(newRouter(uc), http.MethodGet, "/api/v1/shops/1/book/time", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body StepResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "time", body.Step)
	assert.Equal(t, []string{"10:00", "10:30"}, body.Slots)
	assert.Equal(t, "15.00", body.Service.Price)
	assert.Equal(t, "Νίκος", body.StaffMember.Name)
}

func TestHandler_UnknownStep(t *testing.T) {
	rec := serve(newRouter(new(mockWizard)), http.MethodGet, "/api/v1/shops/1/book/payment", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Submit(t *testing.T) {
	tests := []struct {
		name     string
		step     string
		body     string
		setup    func(uc *mockWizard)
		wantCode int
		wantLoc  string
	}{
		{
			name:     "date",
			step:     "date",
			body:     `{"date":"2024-01-01"}`,
			setup:    func(uc *mockWizard) { uc.On("SubmitDate", testSession, int64(1), "2024-01-01").Return(nil) },
			wantCode: http.StatusSeeOther,
			wantLoc:  "/api/v1/shops/1/book/service",
		},
		{
			name:     "invalid date",
			step:     "date",
			body:     `{"date":"2024-02-30"}`,
			setup:    func(uc *mockWizard) { uc.On("SubmitDate", testSession, int64(1), "2024-02-30").Return(bookingWizard.ErrInvalidDate) },
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "service",
			step:     "service",
			body:     `{"serviceId":2}`,
			setup:    func(uc *mockWizard) { uc.On("SubmitService", testSession, int64(1), int64(2)).Return(nil) },
			wantCode: http.StatusSeeOther,
			wantLoc:  "/api/v1/shops/1/book/staff",
		},
		{
			name:     "staff",
			step:     "staff",
			body:     `{"staffId":3}`,
			setup:    func(uc *mockWizard) { uc.On("SubmitStaff", testSession, int64(1), int64(3)).Return(nil) },
			wantCode: http.StatusSeeOther,
			wantLoc:  "/api/v1/shops/1/book/time",
		},
		{
			name:     "time",
			step:     "time",
			body:     `{"time":"10:30"}`,
			setup:    func(uc *mockWizard) { uc.On("SubmitTime", testSession, int64(1), "10:30").Return(nil) },
			wantCode: http.StatusSeeOther,
			wantLoc:  "/api/v1/shops/1/book/confirm",
		},
		{
			name: "time not available",
			step: "time",
			body: `{"time":"11:00"}`,
			setup: func(uc *mockWizard) {
				uc.On("SubmitTime", testSession, int64(1), "11:00").Return(bookingWizard.ErrSlotUnavailable)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "broken body",
			step:     "staff",
			body:     `{`,
			setup:    func(uc *mockWizard) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockWizard)
			tt.setup(uc)

			rec := serve(newRouter(uc), http.MethodPost, "/api/v1/shops/1/book/"+tt.step, tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantLoc != "" {
				assert.Equal(t, tt.wantLoc, rec.Header().Get("Location"))
			}
			uc.AssertExpectations(t)
		})
	}
}

func TestHandler_Confirm(t *testing.T) {
	contact := bookingWizard.Contact{Name: "Μαρία", Phone: "6900000000", Email: "m@example.gr", Payment: "online", AcceptTerms: true}
	body := `{"name":"Μαρία","phone":"6900000000","email":"m@example.gr","payment":"online","acceptTerms":true}`

	t.Run("created", func(t *testing.T) {
		uc := new(mockWizard)
		uc.On("Confirm", testSession, int64(1), contact).Return(&createBooking.Response{
			ID:            77,
			ShopID:        1,
			StaffID:       3,
			ApptDate:      "2024-01-01",
			StartHM:       "10:00",
			EndHM:         "10:30",
			PaymentMethod: domain.PaymentOnline,
			Status:        domain.StatusNew,
			CreatedAt:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		}, nil)

		rec := serve(newRouter(uc), http.MethodPost, "/api/v1/shops/1/book/confirm", body)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/v1/appointments/77", rec.Header().Get("Location"))

		var resp ConfirmResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, int64(77), resp.AppointmentID)
		assert.Equal(t, "10:30", resp.EndTime)
	})

	t.Run("slot taken", func(t *testing.T) {
		uc := new(mockWizard)
		uc.On("Confirm", testSession, int64(1), contact).
			Return(nil, &bookingWizard.StepRedirectError{Step: domain.StepTime, Cause: createBooking.ErrSlotTaken})

		rec := serve(newRouter(uc), http.MethodPost, "/api/v1/shops/1/book/confirm", body)
		require.Equal(t, http.StatusConflict, rec.Code)

		var resp handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "/api/v1/shops/1/book/time", resp.Redirect)
	})

	t.Run("terms not accepted", func(t *testing.T) {
		uc := new(mockWizard)
		uc.On("Confirm", testSession, int64(1), mock.Anything).Return(nil, createBooking.ErrTermsNotAccepted)

		rec := serve(newRouter(uc), http.MethodPost, "/api/v1/shops/1/book/confirm", `{"name":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
