package shops

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
	shopRepo "github.com/m04kA/SMC-HairBooking/internal/infra/storage/shop"
	"github.com/m04kA/SMC-HairBooking/internal/service/shops/models"
)

// Service витрина салонов: поиск, карточка салона и отзывы
type Service struct {
	shopRepo    ShopRepository
	serviceRepo ServiceRepository
	staffRepo   StaffRepository
	reviewRepo  ReviewRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса салонов
func NewService(
	shopRepo ShopRepository,
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	reviewRepo ReviewRepository,
	logger Logger,
) *Service {
	return &Service{
		shopRepo:    shopRepo,
		serviceRepo: serviceRepo,
		staffRepo:   staffRepo,
		reviewRepo:  reviewRepo,
		logger:      logger,
	}
}

// List ищет салоны: открытые первыми, затем по названию.
// Категория Hair включает салоны Both, Barber тоже.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.ShopListResponse, error) {
	city := strings.TrimSpace(req.Where)
	if city == "" {
		city = strings.TrimSpace(req.City)
	}
	category := strings.TrimSpace(req.Category)

	filter := domain.ShopFilter{
		Query:      strings.TrimSpace(req.Query),
		City:       city,
		Categories: categoriesFor(category),
	}

	shops, err := s.shopRepo.Search(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to search shops: %v", err)
		return nil, fmt.Errorf("%w: List - search shops: %v", ErrInternal, err)
	}

	cities, err := s.shopRepo.DistinctCities(ctx)
	if err != nil {
		s.logger.Error("List: failed to list cities: %v", err)
		return nil, fmt.Errorf("%w: List - distinct cities: %v", ErrInternal, err)
	}

	categories, err := s.shopRepo.DistinctCategories(ctx)
	if err != nil {
		s.logger.Error("List: failed to list categories: %v", err)
		return nil, fmt.Errorf("%w: List - distinct categories: %v", ErrInternal, err)
	}

	return &models.ShopListResponse{
		Shops:      models.FromDomainShops(shops),
		Cities:     cities,
		Categories: categories,
		Query:      filter.Query,
		City:       city,
		Category:   category,
	}, nil
}

// Detail возвращает карточку салона с активными услугами, мастерами и последними отзывами
func (s *Service) Detail(ctx context.Context, shopID int64) (*models.ShopDetailResponse, error) {
	shop, err := s.getShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	services, err := s.serviceRepo.ListActiveByShop(ctx, shopID)
	if err != nil {
		s.logger.Error("Detail: failed to list services of shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: Detail - services: %v", ErrInternal, err)
	}

	staff, err := s.staffRepo.ListActiveByShop(ctx, shopID)
	if err != nil {
		s.logger.Error("Detail: failed to list staff of shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: Detail - staff: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.ListLatestByShop(ctx, shopID, domain.ShopDetailReviews)
	if err != nil {
		s.logger.Error("Detail: failed to list reviews of shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: Detail - reviews: %v", ErrInternal, err)
	}

	return &models.ShopDetailResponse{
		Shop:      models.FromDomainShop(shop),
		Services:  models.FromDomainServices(services),
		Staff:     models.FromDomainStaff(staff),
		Reviews:   models.FromDomainReviews(reviews),
		AvgRating: models.AverageRating(reviews),
	}, nil
}

// AddReview добавляет отзыв. Пустое имя заменяется на имя по умолчанию,
// оценка ограничивается диапазоном 1..5.
func (s *Service) AddReview(ctx context.Context, req *models.AddReviewRequest) (*models.ReviewResponse, error) {
	if _, err := s.getShop(ctx, req.ShopID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = domain.DefaultReviewerName
	}

	rating := domain.DefaultReviewRating
	if req.Rating != nil {
		rating = min(max(*req.Rating, domain.MinRating), domain.MaxRating)
	}

	review, err := s.reviewRepo.Create(ctx, &domain.Review{
		ShopID:       req.ShopID,
		CustomerName: truncate(name, domain.MaxCustomerNameLength),
		Rating:       rating,
		Comment:      truncate(strings.TrimSpace(req.Comment), domain.MaxCommentLength),
	})
	if err != nil {
		s.logger.Error("AddReview: failed to create review for shop=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: AddReview - create: %v", ErrInternal, err)
	}

	s.logger.Info("AddReview: review id=%d added to shop=%d, rating=%d", review.ID, req.ShopID, rating)
	result := models.FromDomainReviews([]*domain.Review{review})[0]
	return &result, nil
}

func (s *Service) getShop(ctx context.Context, shopID int64) (*domain.Shop, error) {
	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			s.logger.Warn("shop id=%d not found", shopID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("failed to get shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: get shop: %v", ErrInternal, err)
	}
	return shop, nil
}

// categoriesFor разворачивает категорию фильтра в список категорий салонов
func categoriesFor(category string) []domain.ShopCategory {
	switch domain.ShopCategory(category) {
	case "":
		return nil
	case domain.CategoryHair:
		return []domain.ShopCategory{domain.CategoryHair, domain.CategoryBoth}
	case domain.CategoryBarber:
		return []domain.ShopCategory{domain.CategoryBarber, domain.CategoryBoth}
	default:
		return []domain.ShopCategory{domain.ShopCategory(category)}
	}
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
