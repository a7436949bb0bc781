package models

import (
	"time"

	"github.com/google/uuid"
)

// EatingTime - временной интервал приема пищи
type EatingTime string

const (
	Breakfast EatingTime = "breakfast"
	Lunch     EatingTime = "lunch"
	Dinner    EatingTime = "dinner"
)

// Категории заведений
const (
	CategoryRestaurant = "restaurant"
	CategoryCafe       = "cafe"
	CategoryBar        = "bar"
)

type Venue struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Location   GeoPoint `json:"location"`
	Categories []string `json:"categories"`
}

type Review struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
}

// VenueDetails - расширенная информация о заведении
type VenueDetails struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	PhotoReferences []string `json:"photo_references"`
	Reviews         []Review `json:"reviews"`
	Rating          float64  `json:"rating"`
}

// Trigger - причина запуска подбора рекомендаций
type Trigger string

const (
	TriggerInitial Trigger = "initial"
	TriggerMoved   Trigger = "moved"
	TriggerSearch  Trigger = "search"
)

// Recommendation - результат одного цикла подбора заведений
type Recommendation struct {
	SessionID  string     `json:"session_id"`
	EatingTime EatingTime `json:"eating_time"`
	Center     GeoPoint   `json:"center"`
	Venues     []Venue    `json:"venues"`
	Trigger    Trigger    `json:"trigger"`
}

// RecommendationLog представляет запись о выданной рекомендации
type RecommendationLog struct {
	ID         uuid.UUID  `json:"id"`
	SessionID  string     `json:"session_id"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	EatingTime EatingTime `json:"eating_time"`
	VenueCount int        `json:"venue_count"`
	Trigger    Trigger    `json:"trigger"`
	CreatedAt  time.Time  `json:"created_at"`
}

// LocationResult - итог обработки наблюдения геолокации
type LocationResult struct {
	Refetched      bool            `json:"refetched"`
	Recommendation *Recommendation `json:"recommendation,omitempty"`
}

// ReviewCard - отзыв в подготовленном для карточки виде
type ReviewCard struct {
	AuthorName string `json:"author_name"`
	Stars      int    `json:"stars"`
	Text       string `json:"text"`
}

// PlaceCard - данные для всплывающей карточки заведения
type PlaceCard struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Address        string       `json:"address"`
	PhotoReference string       `json:"photo_reference,omitempty"`
	Reviews        []ReviewCard `json:"reviews"`
	Rating         float64      `json:"rating"`
	Stars          int          `json:"stars"`
}
