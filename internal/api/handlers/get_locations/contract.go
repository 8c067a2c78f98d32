package get_locations

import (
	"github.com/m04kA/SMC-HairBooking/internal/service/shops/models"
)

type LocationService interface {
	Locations(query string) []models.Location
}
