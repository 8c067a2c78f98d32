package models

import (
	"math"
	"time"

	"github.com/m04kA/SMC-HairBooking/internal/domain"
)

// ListRequest параметры поиска салонов.
// Where и City взаимозаменяемы, Where имеет приоритет.
type ListRequest struct {
	Query    string
	Where    string
	City     string
	Category string
}

// ShopResponse салон
type ShopResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Area        string `json:"area"`
	Category    string `json:"category"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description,omitempty"`
	IsOpen      bool   `json:"isOpen"`
}

// ShopListResponse результат поиска вместе со значениями для фильтров
type ShopListResponse struct {
	Shops      []ShopResponse `json:"shops"`
	Cities     []string       `json:"cities"`
	Categories []string       `json:"categories"`
	Query      string         `json:"q"`
	City       string         `json:"city"`
	Category   string         `json:"category"`
}

// ServiceResponse услуга салона
type ServiceResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DurationMin int    `json:"durationMin"`
	PriceCents  int    `json:"priceCents"`
	Price       string `json:"price"`
}

// StaffResponse мастер салона
type StaffResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
}

// ReviewResponse отзыв
type ReviewResponse struct {
	ID           int64     `json:"id"`
	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ShopDetailResponse карточка салона
type ShopDetailResponse struct {
	Shop     ShopResponse      `json:"shop"`
	Services []ServiceResponse `json:"services"`
	Staff    []StaffResponse   `json:"staff"`
	Reviews  []ReviewResponse  `json:"reviews"`
	// AvgRating средняя оценка по последним отзывам, nil если отзывов нет
	AvgRating *float64 `json:"avgRating"`
}

// AddReviewRequest новый отзыв. Rating nil означает оценку по умолчанию.
type AddReviewRequest struct {
	ShopID  int64
	Name    string
	Rating  *int
	Comment string
}

// Location подсказка для поля "где"
type Location struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FromDomainShop конвертирует салон
func FromDomainShop(s *domain.Shop) ShopResponse {
	return ShopResponse{
		ID:          s.ID,
		Name:        s.Name,
		City:        s.City,
		Area:        s.Area,
		Category:    string(s.Category),
		Address:     s.Address,
		Phone:       s.Phone,
		Description: s.Description,
		IsOpen:      s.IsOpen,
	}
}

// FromDomainShops конвертирует список салонов
func FromDomainShops(shops []*domain.Shop) []ShopResponse {
	result := make([]ShopResponse, 0, len(shops))
	for _, s := range shops {
		result = append(result, FromDomainShop(s))
	}
	return result
}

// FromDomainServices конвертирует список услуг
func FromDomainServices(services []*domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, ServiceResponse{
			ID:          s.ID,
			Name:        s.Name,
			DurationMin: s.DurationMin,
			PriceCents:  s.PriceCents,
			Price:       domain.CentsToEuro(s.PriceCents),
		})
	}
	return result
}

// FromDomainStaff конвертирует список мастеров
func FromDomainStaff(staff []*domain.Staff) []StaffResponse {
	result := make([]StaffResponse, 0, len(staff))
	for _, s := range staff {
		result = append(result, StaffResponse{ID: s.ID, Name: s.Name, Title: s.Title})
	}
	return result
}

// FromDomainReviews конвертирует список отзывов
func FromDomainReviews(reviews []*domain.Review) []ReviewResponse {
	result := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, ReviewResponse{
			ID:           r.ID,
			CustomerName: r.CustomerName,
			Rating:       r.Rating,
			Comment:      r.Comment,
			CreatedAt:    r.CreatedAt,
		})
	}
	return result
}

// AverageRating средняя оценка, округлённая до одного знака
func AverageRating(reviews []*domain.Review) *float64 {
	if len(reviews) == 0 {
		return nil
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := math.Round(float64(sum)/float64(len(reviews))*10) / 10
	return &avg
}
