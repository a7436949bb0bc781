package policy

import "math"

// MaxStars - количество звезд в шкале рейтинга
const MaxStars = 5

// RatingStars округляет рейтинг до 0.5 и возвращает число закрашенных звезд
func RatingStars(rating float64) int {
	if math.IsNaN(rating) || rating <= 0 {
		return 0
	}
	rounded := math.Round(rating*2) / 2

	filled := 0
	for i := 1; i <= MaxStars; i++ {
		if float64(i) <= rounded {
			filled++
		}
	}
	return filled
}

// TruncateText обрезает текст до maxLength символов, добавляя многоточие
func TruncateText(text string, maxLength int) string {
	runes := []rune(text)
	if maxLength <= 3 || len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength-3]) + "..."
}
