package admin

import (
	"math"
	"strconv"
	"strings"
)

// ParsePriceCents переводит цену вида "12,50" или "12.50" в центы.
// Некорректная цена даёт 0, отрицательная тоже.
func ParsePriceCents(raw string) int {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	cents := math.Round(f * 100)
	if cents <= 0 || cents > math.MaxInt32 {
		return 0
	}
	return int(cents)
}
