package get_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HairBooking/internal/service/appointments"
	"github.com/m04kA/SMC-HairBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-HairBooking/pkg/logger"
)

type mockAppointmentService struct {
	mock.Mock
}

func (m *mockAppointmentService) GetSummary(ctx context.Context, id int64) (*models.SummaryResponse, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.SummaryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc AppointmentService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/appointments/{appointmentId}", NewHandler(svc, logger.Nop()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := new(mockAppointmentService)
	svc.On("GetSummary", int64(7)).Return(&models.SummaryResponse{
		Appointment: models.AppointmentResponse{ID: 7},
		ShopName:    "Barber Craft",
		Price:       "15.00",
	}, nil)
	svc.On("GetSummary", int64(8)).Return(nil, appointments.ErrAppointmentNotFound)

	rec := serve(svc, "/api/v1/appointments/7")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"shopName":"Barber Craft"`)

	assert.Equal(t, http.StatusNotFound, serve(svc, "/api/v1/appointments/8").Code)
	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/appointments/zero").Code)
}
