package v1

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationQuery параметры запроса начальной подборки
// @Description Параметры запроса начальной подборки
type RecommendationQuery struct {
	SessionID string   `form:"session_id" validate:"required,uuid"`
	Latitude  *float64 `form:"lat" validate:"required,latitude"`
	Longitude *float64 `form:"lon" validate:"required,longitude"`
}

// PlaceDetailsQuery параметры запроса карточки заведения
// @Description Параметры запроса карточки заведения
type PlaceDetailsQuery struct {
	SessionID string `form:"session_id" validate:"omitempty,uuid"`
}

// HistoryQuery параметры запроса истории сессии
// @Description Параметры запроса истории сессии
type HistoryQuery struct {
	Limit *int `form:"limit" validate:"omitempty,min=1,max=100"`
}

// LocationUpdateRequest DTO наблюдения геолокации
// @Description DTO наблюдения геолокации
type LocationUpdateRequest struct {
	Latitude       *float64 `json:"latitude" validate:"required,latitude"`
	Longitude      *float64 `json:"longitude" validate:"required,longitude"`
	AccuracyMeters float64  `json:"accuracy_meters" validate:"gte=0"`
}

// SearchedPlace DTO места из поисковой строки клиента
// @Description DTO места из поисковой строки клиента
type SearchedPlace struct {
	ID         string   `json:"id" validate:"max=255"`
	Name       string   `json:"name" validate:"max=255"`
	Latitude   *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude  *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Categories []string `json:"categories,omitempty"`
}

// PlacesChangedRequest DTO результатов поиска мест
// @Description DTO результатов поиска мест
type PlacesChangedRequest struct {
	Places []SearchedPlace `json:"places" validate:"max=60,dive"`
}

// EatingTimeResponse DTO текущего времени приема пищи
// @Description DTO текущего времени приема пищи
type EatingTimeResponse struct {
	EatingTime        string   `json:"eating_time"`
	Greeting          string   `json:"greeting"`
	AllowedCategories []string `json:"allowed_categories"`
}

// VenueResponse DTO рекомендованного заведения
// @Description DTO рекомендованного заведения
type VenueResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	Categories []string `json:"categories"`
}

// RecommendationResponse DTO подборки заведений
// @Description DTO подборки заведений
type RecommendationResponse struct {
	SessionID  string          `json:"session_id"`
	EatingTime string          `json:"eating_time"`
	Greeting   string          `json:"greeting"`
	Latitude   float64         `json:"latitude"`
	Longitude  float64         `json:"longitude"`
	Trigger    string          `json:"trigger"`
	Venues     []VenueResponse `json:"venues"`
}

// LocationUpdateResponse DTO ответа на наблюдение геолокации
// @Description DTO ответа на наблюдение геолокации
type LocationUpdateResponse struct {
	Refetched      bool                    `json:"refetched"`
	Recommendation *RecommendationResponse `json:"recommendation,omitempty"`
}

// ReviewResponse DTO отзыва
// @Description DTO отзыва
type ReviewResponse struct {
	AuthorName string `json:"author_name"`
	Stars      int    `json:"stars"`
	Text       string `json:"text"`
}

// PlaceDetailsResponse DTO карточки заведения
// @Description DTO карточки заведения
type PlaceDetailsResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Address        string           `json:"address"`
	PhotoReference string           `json:"photo_reference,omitempty"`
	Rating         float64          `json:"rating"`
	Stars          int              `json:"stars"`
	MaxStars       int              `json:"max_stars"`
	Reviews        []ReviewResponse `json:"reviews"`
}

// HistoryEntryResponse DTO записи истории рекомендаций
// @Description DTO записи истории рекомендаций
type HistoryEntryResponse struct {
	ID         uuid.UUID `json:"id"`
	EatingTime string    `json:"eating_time"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	VenueCount int       `json:"venue_count"`
	Trigger    string    `json:"trigger"`
	CreatedAt  time.Time `json:"created_at"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	SessionCount int `json:"session_count"`
}
