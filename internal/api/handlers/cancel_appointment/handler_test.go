package cancel_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	"github.com/m04kA/SMC-HairBooking/internal/service/appointments"
	"github.com/m04kA/SMC-HairBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-HairBooking/pkg/logger"
)

type mockAppointmentService struct {
	mock.Mock
}

func (m *mockAppointmentService) Cancel(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	args := m.Called(id)
	if v := args.Get(0); v != nil {
		return v.(*models.AppointmentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc AppointmentService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/appointments/{appointmentId}/cancel", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPatch)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	svc := new(mockAppointmentService)
	svc.On("Cancel", int64(5)).Return(&models.AppointmentResponse{ID: 5, Status: string(domain.StatusCancelled)}, nil)
	svc.On("Cancel", int64(6)).Return(nil, appointments.ErrAppointmentNotFound)

	rec := serve(svc, "/api/v1/admin/appointments/5/cancel")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Ακυρωμένο"`)

	assert.Equal(t, http.StatusNotFound, serve(svc, "/api/v1/admin/appointments/6/cancel").Code)
}
