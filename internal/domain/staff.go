package domain

import "fmt"

// Staff мастер салона
type Staff struct {
	ID       int64
	ShopID   int64
	Name     string
	Title    string
	IsActive bool
}

// Service услуга салона
type Service struct {
	ID          int64
	ShopID      int64
	Name        string
	DurationMin int
	PriceCents  int
	IsActive    bool
}

// CentsToEuro форматирует цену в центах как "12.50"
func CentsToEuro(cents int) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
