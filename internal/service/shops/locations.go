package shops

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/m04kA/SMC-HairBooking/internal/service/shops/models"
)

const (
	minLocationQuery = 2
	maxLocations     = 10
	locationSuffix   = " Ελλάδα"
)

// knownLocations города для подсказок в поле "где"
var knownLocations = []string{
	"Χανιά", "Ρέθυμνο", "Ηράκλειο", "Άγιος Νικόλαος",
	"Αθήνα", "Θεσσαλονίκη", "Πάτρα", "Λάρισα",
	"Ιωάννινα", "Βόλος", "Καβάλα", "Ξάνθη",
	"Χαλκίδα", "Χαλάνδρι", "Χαϊδάρι",
}

// Locations подсказывает города по подстроке без учёта регистра и ударений.
// Запрос короче двух символов даёт пустой список.
func (s *Service) Locations(query string) []models.Location {
	q := strings.TrimSpace(query)
	result := make([]models.Location, 0)
	if len([]rune(q)) < minLocationQuery {
		return result
	}

	nq := foldGreek(q)
	for _, loc := range knownLocations {
		if strings.Contains(foldGreek(loc), nq) {
			result = append(result, models.Location{Label: loc + locationSuffix, Value: loc})
			if len(result) == maxLocations {
				break
			}
		}
	}
	return result
}

// foldGreek убирает тоны и диалитики и переводит строку в нижний регистр
func foldGreek(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
