// Package policy содержит правила подбора заведений по времени суток
// и по перемещению пользователя.
package policy

import (
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/chelwa/internal/models"
)

// DefaultMovementThreshold - минимальное перемещение (в метрах) для повторного запроса
const DefaultMovementThreshold = 50.0

var (
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrUnknownEatingTime  = errors.New("unknown eating time")
)

var allowedCategories = map[models.EatingTime][]string{
	models.Breakfast: {models.CategoryRestaurant, models.CategoryCafe},
	models.Lunch:     {models.CategoryRestaurant, models.CategoryCafe, models.CategoryBar},
	// кафе вечером не предлагаем
	models.Dinner: {models.CategoryRestaurant, models.CategoryBar},
}

// ClassifyTime возвращает интервал приема пищи для часа 0-23
func ClassifyTime(hour int) models.EatingTime {
	switch {
	case hour >= 7 && hour < 12:
		return models.Breakfast
	case hour >= 12 && hour < 18:
		return models.Lunch
	default:
		return models.Dinner
	}
}

// ClassifyAt классифицирует момент времени по локальному часу t
func ClassifyAt(t time.Time) models.EatingTime {
	return ClassifyTime(t.Hour())
}

// AllowedCategories возвращает копию набора категорий для интервала
func AllowedCategories(et models.EatingTime) ([]string, error) {
	categories, ok := allowedCategories[et]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEatingTime, et)
	}
	out := make([]string, len(categories))
	copy(out, categories)
	return out, nil
}

// FilterVenues оставляет заведения, у которых есть хотя бы одна разрешенная категория.
// Порядок входа сохраняется.
func FilterVenues(venues []models.Venue, et models.EatingTime) ([]models.Venue, error) {
	categories, ok := allowedCategories[et]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEatingTime, et)
	}

	allowed := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		allowed[c] = struct{}{}
	}

	filtered := make([]models.Venue, 0, len(venues))
	for _, v := range venues {
		for _, c := range v.Categories {
			if _, ok := allowed[c]; ok {
				filtered = append(filtered, v)
				break
			}
		}
	}
	return filtered, nil
}

// ShouldRefetch решает, нужно ли заново запрашивать рекомендации после нового наблюдения.
// Первое наблюдение никогда не вызывает запрос. Последняя точка обновляется всегда.
// Вызовы для одного состояния должны быть последовательными.
func ShouldRefetch(state models.MovementState, p models.GeoPoint, threshold float64) (bool, models.MovementState, error) {
	if err := Validate(p); err != nil {
		return false, state, err
	}

	next := models.MovementState{LastKnown: &p, Moving: true}

	if !state.Moving || state.LastKnown == nil {
		return false, next, nil
	}

	distance, err := GreatCircleDistance(*state.LastKnown, p)
	if err != nil {
		return false, state, err
	}
	return distance > threshold, next, nil
}

// Greeting возвращает текст уведомления для интервала
func Greeting(et models.EatingTime) string {
	switch et {
	case models.Breakfast:
		return "Good morning! It's breakfast time. Here are some places for breakfast near you."
	case models.Lunch:
		return "Hello! It's lunchtime. Check out these lunch spots around you."
	default:
		return "Good evening! It's dinner time. Explore these dinner options near you."
	}
}
