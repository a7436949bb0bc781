package v1

import (
	"github.com/shenikar/chelwa/internal/models"
	"github.com/shenikar/chelwa/internal/policy"
)

// SearchedPlacesToVenues преобразует результаты поиска клиента в доменные модели.
// Места без координат пропускаются.
func SearchedPlacesToVenues(places []SearchedPlace) []models.Venue {
	venues := make([]models.Venue, 0, len(places))
	for _, p := range places {
		if p.Latitude == nil || p.Longitude == nil {
			continue
		}
		venues = append(venues, models.Venue{
			ID:         p.ID,
			Name:       p.Name,
			Location:   models.GeoPoint{Latitude: *p.Latitude, Longitude: *p.Longitude},
			Categories: p.Categories,
		})
	}
	return venues
}

// ModelToRecommendationResponse преобразует подборку в DTO для ответа
func ModelToRecommendationResponse(rec *models.Recommendation) *RecommendationResponse {
	if rec == nil {
		return nil
	}
	venues := make([]VenueResponse, len(rec.Venues))
	for i, v := range rec.Venues {
		venues[i] = VenueResponse{
			ID:         v.ID,
			Name:       v.Name,
			Latitude:   v.Location.Latitude,
			Longitude:  v.Location.Longitude,
			Categories: v.Categories,
		}
	}
	return &RecommendationResponse{
		SessionID:  rec.SessionID,
		EatingTime: string(rec.EatingTime),
		Greeting:   policy.Greeting(rec.EatingTime),
		Latitude:   rec.Center.Latitude,
		Longitude:  rec.Center.Longitude,
		Trigger:    string(rec.Trigger),
		Venues:     venues,
	}
}

// ModelToPlaceDetailsResponse преобразует карточку заведения в DTO
func ModelToPlaceDetailsResponse(card *models.PlaceCard) *PlaceDetailsResponse {
	reviews := make([]ReviewResponse, len(card.Reviews))
	for i, r := range card.Reviews {
		reviews[i] = ReviewResponse{AuthorName: r.AuthorName, Stars: r.Stars, Text: r.Text}
	}
	return &PlaceDetailsResponse{
		ID:             card.ID,
		Name:           card.Name,
		Address:        card.Address,
		PhotoReference: card.PhotoReference,
		Rating:         card.Rating,
		Stars:          card.Stars,
		MaxStars:       policy.MaxStars,
		Reviews:        reviews,
	}
}

// ModelsToHistoryResponses преобразует слайс записей истории в слайс DTO
func ModelsToHistoryResponses(logs []*models.RecommendationLog) []*HistoryEntryResponse {
	responses := make([]*HistoryEntryResponse, len(logs))
	for i, l := range logs {
		responses[i] = &HistoryEntryResponse{
			ID:         l.ID,
			EatingTime: string(l.EatingTime),
			Latitude:   l.Latitude,
			Longitude:  l.Longitude,
			VenueCount: l.VenueCount,
			Trigger:    string(l.Trigger),
			CreatedAt:  l.CreatedAt,
		}
	}
	return responses
}
