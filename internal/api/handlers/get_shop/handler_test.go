package get_shop

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HairBooking/internal/service/shops"
	"github.com/m04kA/SMC-HairBooking/internal/service/shops/models"
	"github.com/m04kA/SMC-HairBooking/pkg/logger"
)

type mockShopService struct {
	mock.Mock
}

func (m *mockShopService) Detail(ctx context.Context, shopID int64) (*models.ShopDetailResponse, error) {
	args := m.Called(shopID)
	if v := args.Get(0); v != nil {
		return v.(*models.ShopDetailResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc ShopService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/shops/{shopId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodGet)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	avg := 4.5
	svc := new(mockShopService)
	svc.On("Detail", int64(1)).Return(&models.ShopDetailResponse{
		Shop:      models.ShopResponse{ID: 1, Name: "Studio Hair", IsOpen: true},
		Services:  []models.ServiceResponse{},
		Staff:     []models.StaffResponse{},
		Reviews:   []models.ReviewResponse{},
		AvgRating: &avg,
	}, nil)
	svc.On("Detail", int64(404)).Return(nil, shops.ErrShopNotFound)
	svc.On("Detail", int64(500)).Return(nil, errors.New("db down"))

	t.Run("found", func(t *testing.T) {
		rec := serve(svc, "/api/v1/shops/1")
		require.Equal(t, http.StatusOK, rec.Code)

		var got models.ShopDetailResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "Studio Hair", got.Shop.Name)
		require.NotNil(t, got.AvgRating)
		assert.Equal(t, 4.5, *got.AvgRating)
	})

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{name: "not found", target: "/api/v1/shops/404", want: http.StatusNotFound},
		{name: "service error", target: "/api/v1/shops/500", want: http.StatusInternalServerError},
		{name: "bad id", target: "/api/v1/shops/abc", want: http.StatusBadRequest},
		{name: "zero id", target: "/api/v1/shops/0", want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(svc, tt.target).Code)
		})
	}
}
