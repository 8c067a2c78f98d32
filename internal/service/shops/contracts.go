package shops

import (
	"context"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

// ShopRepository интерфейс репозитория салонов
type ShopRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
	Search(ctx context.Context, filter domain.ShopFilter) ([]*domain.Shop, error)
	DistinctCities(ctx context.Context) ([]string, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	ListActiveByShop(ctx context.Context, shopID int64) ([]*domain.Service, error)
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	ListActiveByShop(ctx context.Context, shopID int64) ([]*domain.Staff, error)
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) (*domain.Review, error)
	ListLatestByShop(ctx context.Context, shopID int64, limit uint64) ([]*domain.Review, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
