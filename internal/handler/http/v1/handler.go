package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/chelwa/internal/config"
	"github.com/shenikar/chelwa/internal/models"
	"github.com/shenikar/chelwa/internal/places"
	"github.com/shenikar/chelwa/internal/policy"
	"github.com/shenikar/chelwa/internal/service"
	"github.com/shenikar/chelwa/internal/session"
	"github.com/sirupsen/logrus"
)

const defaultHistoryLimit = 20

// EventSubmitter передает события сессии в очередь обработки
type EventSubmitter interface {
	Submit(ctx context.Context, ev session.Event) (*session.Outcome, error)
}

type Handler struct {
	recommendationService service.RecommendationService
	events                EventSubmitter
	logger                *logrus.Logger
	validate              *validator.Validate
	cfg                   *config.Config
}

func NewHandler(recommendationService service.RecommendationService, events EventSubmitter, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		recommendationService: recommendationService,
		events:                events,
		logger:                logger,
		validate:              validator.New(),
		cfg:                   cfg,
	}
}

// respondError переводит ошибку сервиса в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case service.IsContractViolation(err):
		log.WithError(err).Warn("Request violates recommendation contract")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, places.ErrDetailsUnavailable):
		log.WithError(err).Warn("Place details unavailable")
		c.JSON(http.StatusBadGateway, gin.H{"error": "place details unavailable"})
	case errors.Is(err, session.ErrQueueFull), errors.Is(err, session.ErrStopped):
		log.WithError(err).Error("Event queue rejected request")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service busy, try again later"})
	default:
		log.WithError(err).Error("Failed to process request in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseSessionID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return "", false
	}
	return id.String(), true
}

// @Summary Get current eating time
// @Description Get the eating-time bucket for the service clock with its greeting and allowed venue categories. Requires API key.
// @Tags Recommendations
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} EatingTimeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /eating-time [get]
func (h *Handler) getEatingTime(c *gin.Context) {
	log := h.logger.WithField("method", "getEatingTime")

	eatingTime := h.recommendationService.CurrentEatingTime(c.Request.Context())
	categories, err := policy.AllowedCategories(eatingTime)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, EatingTimeResponse{
		EatingTime:        string(eatingTime),
		Greeting:          policy.Greeting(eatingTime),
		AllowedCategories: categories,
	})
}

// @Summary Get initial recommendation
// @Description Recommend eating spots around the given point for the current eating time. Requires API key.
// @Tags Recommendations
// @Produce json
// @Security ApiKeyAuth
// @Param session_id query string true "Session ID (UUID)"
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} RecommendationResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /recommendations [get]
func (h *Handler) getRecommendations(c *gin.Context) {
	var query RecommendationQuery
	log := h.logger.WithField("method", "getRecommendations")

	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}

	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	center := models.GeoPoint{Latitude: *query.Latitude, Longitude: *query.Longitude}
	rec, err := h.recommendationService.Recommend(c.Request.Context(), query.SessionID, center, models.TriggerInitial)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToRecommendationResponse(rec))
}

// @Summary Report a location observation
// @Description Report a new location for the session. A recommendation is returned only when the user moved beyond the threshold. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID (UUID)"
// @Param observation body LocationUpdateRequest true "Location observation"
// @Success 200 {object} LocationUpdateResponse
// @Failure 400 {object} map[string]string "Invalid session ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Event queue is full"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions/{id}/location [post]
func (h *Handler) updateLocation(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "updateLocation").WithField("session_id", sessionID)

	var input LocationUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.events.Submit(c.Request.Context(), session.Event{
		Type:      session.LocationUpdated,
		SessionID: sessionID,
		Observation: models.LocationObservation{
			Point:          models.GeoPoint{Latitude: *input.Latitude, Longitude: *input.Longitude},
			AccuracyMeters: input.AccuracyMeters,
		},
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	resp := LocationUpdateResponse{}
	if outcome != nil && outcome.Location != nil {
		resp.Refetched = outcome.Location.Refetched
		resp.Recommendation = ModelToRecommendationResponse(outcome.Location.Recommendation)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Report changed search results
// @Description Recommend eating spots around the center of the places found by the client search. An empty list yields no content. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID (UUID)"
// @Param places body PlacesChangedRequest true "Searched places"
// @Success 200 {object} RecommendationResponse
// @Success 204 "No places to center on"
// @Failure 400 {object} map[string]string "Invalid session ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Event queue is full"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions/{id}/places [post]
func (h *Handler) placesChanged(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "placesChanged").WithField("session_id", sessionID)

	var input PlacesChangedRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome, err := h.events.Submit(c.Request.Context(), session.Event{
		Type:      session.PlacesChanged,
		SessionID: sessionID,
		Places:    SearchedPlacesToVenues(input.Places),
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	if outcome == nil || outcome.Recommendation == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ModelToRecommendationResponse(outcome.Recommendation))
}

// @Summary Get place details
// @Description Get the popup card of a place: address, first photo, up to three reviews and star rating. With session_id the request is ordered with that session's events. Requires API key.
// @Tags Places
// @Produce json
// @Security ApiKeyAuth
// @Param placeId path string true "Place ID"
// @Param session_id query string false "Session ID (UUID)"
// @Success 200 {object} PlaceDetailsResponse
// @Failure 400 {object} map[string]string "Invalid place ID or session ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Place details unavailable"
// @Failure 503 {object} map[string]string "Event queue is full"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /places/{placeId} [get]
func (h *Handler) getPlaceDetails(c *gin.Context) {
	placeID := c.Param("placeId")
	if err := h.validate.Var(placeID, "required,max=255"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid place ID"})
		return
	}
	log := h.logger.WithField("method", "getPlaceDetails").WithField("place_id", placeID)

	var query PlaceDetailsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	outcome, err := h.events.Submit(c.Request.Context(), session.Event{
		Type:      session.DetailsFetched,
		SessionID: query.SessionID,
		PlaceID:   placeID,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if outcome == nil || outcome.Place == nil {
		log.Error("Details event returned no place")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelToPlaceDetailsResponse(outcome.Place))
}

// @Summary Get session history
// @Description Get the latest recommendations made for a session. Requires API key.
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID (UUID)"
// @Param limit query int false "Number of entries (1-100)" default(20)
// @Success 200 {array} HistoryEntryResponse
// @Failure 400 {object} map[string]string "Invalid session ID or limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sessions/{id}/history [get]
func (h *Handler) getHistory(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getHistory").WithField("session_id", sessionID)

	var query HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	if err := h.validate.Struct(query); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	limit := defaultHistoryLimit
	if query.Limit != nil {
		limit = *query.Limit
	}

	logs, err := h.recommendationService.SessionHistory(c.Request.Context(), sessionID, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToHistoryResponses(logs))
}

// @Summary Get session statistics
// @Description Get the number of unique sessions that received recommendations in the configured time window. Requires API key.
// @Tags Stats
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	count, err := h.recommendationService.GetStats(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{SessionCount: count})
}

// @Summary Health check
// @Description Check if the service is up and running.
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Service is healthy"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
