package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shenikar/chelwa/internal/config"
	"github.com/shenikar/chelwa/internal/models"
	"github.com/shenikar/chelwa/internal/places"
	"github.com/shenikar/chelwa/internal/policy"
	"github.com/shenikar/chelwa/internal/session"
	"github.com/shenikar/chelwa/internal/webhook"
	"github.com/shenikar/chelwa/pkg/metrics"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=recommendation.go -destination=mocks/mock_recommendation.go -package=mocks

const (
	maxPopupReviews    = 3
	maxReviewLength    = 300
	defaultHistorySize = 20
)

// Поиск всегда идет по всем категориям, отбор по времени суток делается после
var searchCategories = []string{models.CategoryRestaurant, models.CategoryBar, models.CategoryCafe}

// RecommendationRepository определяет контракт для хранения истории рекомендаций и кеша
type RecommendationRepository interface {
	SaveRecommendationLog(ctx context.Context, entry *models.RecommendationLog) error
	ListSessionLogs(ctx context.Context, sessionID string, limit int) ([]*models.RecommendationLog, error)
	GetSessionStats(ctx context.Context, minutes int) (int, error)
	GetDetailsFromCache(ctx context.Context, placeID string) (*models.VenueDetails, error)
	SetDetailsCache(ctx context.Context, details *models.VenueDetails, ttl time.Duration) error
	GetVenuesFromCache(ctx context.Context, center models.GeoPoint, radiusMeters int) ([]models.Venue, bool, error)
	SetVenuesCache(ctx context.Context, center models.GeoPoint, radiusMeters int, venues []models.Venue, ttl time.Duration) error
}

// RecommendationService определяет контракт бизнес-логики подбора заведений
type RecommendationService interface {
	CurrentEatingTime(ctx context.Context) models.EatingTime
	Recommend(ctx context.Context, sessionID string, center models.GeoPoint, trigger models.Trigger) (*models.Recommendation, error)
	ObserveLocation(ctx context.Context, sessionID string, obs models.LocationObservation) (*models.LocationResult, error)
	PlacesChanged(ctx context.Context, sessionID string, venues []models.Venue) (*models.Recommendation, error)
	PlaceDetails(ctx context.Context, placeID string) (*models.PlaceCard, error)
	SessionHistory(ctx context.Context, sessionID string, limit int) ([]*models.RecommendationLog, error)
	GetStats(ctx context.Context) (int, error)
}

type recommendationService struct {
	repo      RecommendationRepository
	searcher  places.Searcher
	details   places.DetailsFetcher
	store     *session.Store
	publisher webhook.WebhookPublisher
	logger    *logrus.Logger
	cfg       *config.Config
	now       func() time.Time
}

func NewRecommendationService(
	repo RecommendationRepository,
	searcher places.Searcher,
	details places.DetailsFetcher,
	store *session.Store,
	publisher webhook.WebhookPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) RecommendationService {
	return &recommendationService{
		repo:      repo,
		searcher:  searcher,
		details:   details,
		store:     store,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		now:       time.Now,
	}
}

// CurrentEatingTime определяет интервал приема пищи по часовому поясу сервиса
func (s *recommendationService) CurrentEatingTime(_ context.Context) models.EatingTime {
	return policy.ClassifyAt(s.now().In(s.cfg.Location()))
}

// Recommend подбирает заведения рядом с точкой с учетом времени суток.
// Ошибка поиска дает пустую подборку без запасного списка.
func (s *recommendationService) Recommend(ctx context.Context, sessionID string, center models.GeoPoint, trigger models.Trigger) (*models.Recommendation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "recommendation",
		"method":     "Recommend",
		"session_id": sessionID,
		"trigger":    trigger,
	})

	if err := policy.Validate(center); err != nil {
		log.WithError(err).Warn("Rejected recommendation for invalid center")
		return nil, fmt.Errorf("service: invalid center: %w", err)
	}

	eatingTime := s.CurrentEatingTime(ctx)
	log = log.WithField("eating_time", eatingTime)
	log.Info("Recommending eating spots")

	venues := s.searchVenues(ctx, log, center)

	filtered, err := policy.FilterVenues(venues, eatingTime)
	if err != nil {
		log.WithError(err).Error("Failed to filter venues")
		return nil, fmt.Errorf("service: could not filter venues: %w", err)
	}

	rec := &models.Recommendation{
		SessionID:  sessionID,
		EatingTime: eatingTime,
		Center:     center,
		Venues:     filtered,
		Trigger:    trigger,
	}
	metrics.RecordRecommendation(string(eatingTime), string(trigger), len(filtered))

	entry := &models.RecommendationLog{
		SessionID:  sessionID,
		Latitude:   center.Latitude,
		Longitude:  center.Longitude,
		EatingTime: eatingTime,
		VenueCount: len(filtered),
		Trigger:    trigger,
	}
	if err := s.repo.SaveRecommendationLog(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to save recommendation log")
	}

	event := webhook.RecommendationEvent{
		SessionID:  sessionID,
		Latitude:   center.Latitude,
		Longitude:  center.Longitude,
		EatingTime: eatingTime,
		Greeting:   policy.Greeting(eatingTime),
		Trigger:    trigger,
		Timestamp:  s.now().UTC(),
		Venues:     filtered,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Error("Failed to publish recommendation event")
	}

	log.WithField("count", len(filtered)).Info("Recommendation completed")
	return rec, nil
}

// searchVenues ищет заведения сначала в кеше, затем во внешнем сервисе
func (s *recommendationService) searchVenues(ctx context.Context, log *logrus.Entry, center models.GeoPoint) []models.Venue {
	radius := s.cfg.SearchRadiusMeters

	cached, hit, err := s.repo.GetVenuesFromCache(ctx, center, radius)
	if err != nil {
		log.WithError(err).Warn("Failed to read venues from cache")
	}
	metrics.RecordCacheLookup("nearby", hit)
	if hit {
		return cached
	}

	started := time.Now()
	venues, err := s.searcher.NearbySearch(ctx, center, radius, searchCategories)
	metrics.ObservePlacesLatency("nearby_search", started)
	if err != nil {
		metrics.RecordPlacesError("nearby_search")
		log.WithError(err).Error("Nearby search failed, no recommendations this cycle")
		return nil
	}

	if err := s.repo.SetVenuesCache(ctx, center, radius, venues, s.cfg.SearchCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache venues")
	}
	return venues
}

// ObserveLocation обрабатывает новое наблюдение геолокации и при заметном перемещении
// запрашивает новые рекомендации
func (s *recommendationService) ObserveLocation(ctx context.Context, sessionID string, obs models.LocationObservation) (*models.LocationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "recommendation",
		"method":     "ObserveLocation",
		"session_id": sessionID,
		"accuracy":   obs.AccuracyMeters,
	})
	log.Debug("Processing location observation")

	state := s.store.Get(sessionID)
	refetch, next, err := policy.ShouldRefetch(state, obs.Point, s.cfg.MovementThresholdMeters)
	if err != nil {
		log.WithError(err).Warn("Rejected invalid location observation")
		return nil, fmt.Errorf("service: invalid observation: %w", err)
	}
	s.store.Set(sessionID, next)
	metrics.RecordRefetchDecision(refetch)

	result := &models.LocationResult{Refetched: refetch}
	if !refetch {
		return result, nil
	}

	log.Info("User moved beyond threshold, refetching recommendations")
	rec, err := s.Recommend(ctx, sessionID, obs.Point, models.TriggerMoved)
	if err != nil {
		return nil, err
	}
	result.Recommendation = rec
	return result, nil
}

// PlacesChanged центрирует подборку по результатам поиска пользователя.
// Пустой список ничего не меняет.
func (s *recommendationService) PlacesChanged(ctx context.Context, sessionID string, venues []models.Venue) (*models.Recommendation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "recommendation",
		"method":     "PlacesChanged",
		"session_id": sessionID,
		"count":      len(venues),
	})

	points := make([]models.GeoPoint, 0, len(venues))
	for _, v := range venues {
		if err := policy.Validate(v.Location); err != nil {
			log.WithField("place_id", v.ID).Debug("Returned place contains no valid geometry")
			continue
		}
		points = append(points, v.Location)
	}

	center, ok := policy.BoundsCenter(points)
	if !ok {
		log.Info("No searched places with geometry, nothing to recommend")
		return nil, nil
	}

	return s.Recommend(ctx, sessionID, center, models.TriggerSearch)
}

// PlaceDetails возвращает данные для карточки заведения
func (s *recommendationService) PlaceDetails(ctx context.Context, placeID string) (*models.PlaceCard, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "recommendation",
		"method":   "PlaceDetails",
		"place_id": placeID,
	})
	log.Info("Fetching place details")

	details, err := s.repo.GetDetailsFromCache(ctx, placeID)
	if err != nil {
		log.WithError(err).Warn("Failed to read place details from cache")
	}
	metrics.RecordCacheLookup("details", details != nil)

	if details == nil {
		started := time.Now()
		details, err = s.details.Details(ctx, placeID)
		metrics.ObservePlacesLatency("details", started)
		if err != nil {
			metrics.RecordPlacesError("details")
			log.WithError(err).Error("Error fetching place details")
			return nil, fmt.Errorf("service: could not get place details: %w", err)
		}

		if err := s.repo.SetDetailsCache(ctx, details, s.cfg.DetailsCacheTTL); err != nil {
			log.WithError(err).Warn("Failed to cache place details")
		}
	}

	return buildPlaceCard(details), nil
}

// buildPlaceCard оставляет первое фото и не больше трех отзывов
func buildPlaceCard(details *models.VenueDetails) *models.PlaceCard {
	card := &models.PlaceCard{
		ID:      details.ID,
		Name:    details.Name,
		Address: details.Address,
		Rating:  details.Rating,
		Stars:   policy.RatingStars(details.Rating),
		Reviews: make([]models.ReviewCard, 0, maxPopupReviews),
	}
	if len(details.PhotoReferences) > 0 {
		card.PhotoReference = details.PhotoReferences[0]
	}
	for i, r := range details.Reviews {
		if i >= maxPopupReviews {
			break
		}
		card.Reviews = append(card.Reviews, models.ReviewCard{
			AuthorName: r.AuthorName,
			Stars:      policy.RatingStars(r.Rating),
			Text:       policy.TruncateText(r.Text, maxReviewLength),
		})
	}
	return card
}

// SessionHistory возвращает последние рекомендации сессии
func (s *recommendationService) SessionHistory(ctx context.Context, sessionID string, limit int) ([]*models.RecommendationLog, error) {
	if limit < 1 || limit > 100 {
		limit = defaultHistorySize
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":    "recommendation",
		"method":     "SessionHistory",
		"session_id": sessionID,
		"limit":      limit,
	})

	logs, err := s.repo.ListSessionLogs(ctx, sessionID, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list session history from repository")
		return nil, fmt.Errorf("service: could not list session history: %w", err)
	}
	return logs, nil
}

// GetStats возвращает количество сессий, получивших рекомендации за окно статистики
func (s *recommendationService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "recommendation",
		"method":  "GetStats",
		"window":  s.cfg.StatsTimeWindowMinutes,
	})

	count, err := s.repo.GetSessionStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get session stats from repository")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}

// IsContractViolation сообщает, что ошибка вызвана некорректными входными данными
func IsContractViolation(err error) bool {
	return errors.Is(err, policy.ErrInvalidCoordinates) || errors.Is(err, policy.ErrUnknownEatingTime)
}
