package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/chelwa/internal/config"
	"github.com/shenikar/chelwa/internal/models"
	"github.com/shenikar/chelwa/internal/places"
	"github.com/shenikar/chelwa/internal/policy"
	"github.com/shenikar/chelwa/internal/service"
	"github.com/shenikar/chelwa/internal/service/mocks"
	"github.com/shenikar/chelwa/internal/session"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var apiKeyHeader = map[string]string{"X-API-Key": "test-api-key"}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func newTestConfig() *config.Config {
	return &config.Config{
		APIKeys:                []string{"test-api-key"},
		StatsTimeWindowMinutes: 60,
	}
}

func newTestRouter(handler *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

// newTestHandler создает Handler с мокированным сервисом и настоящей очередью событий
func newTestHandler(t *testing.T) (*Handler, *mocks.MockRecommendationService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockRecommendationService(ctrl)
	logger := newTestLogger()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	dispatcher := session.NewDispatcher(service.EventHandler(mockService), 16, 4, logger)
	dispatcher.Start(ctx)

	handler := NewHandler(mockService, dispatcher, logger, newTestConfig())
	return handler, mockService, newTestRouter(handler)
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(raw)
}

func ptr(v float64) *float64 { return &v }

func sampleRecommendation(sessionID string, trigger models.Trigger) *models.Recommendation {
	return &models.Recommendation{
		SessionID:  sessionID,
		EatingTime: models.Dinner,
		Center:     models.GeoPoint{Latitude: 55.75, Longitude: 37.61},
		Trigger:    trigger,
		Venues: []models.Venue{
			{ID: "p1", Name: "Bar One", Location: models.GeoPoint{Latitude: 55.751, Longitude: 37.611}, Categories: []string{"bar"}},
		},
	}
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProtectedRoutes_Unauthorized(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/eating-time", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/stats", nil, map[string]string{"X-API-Key": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = makeRequest(router, http.MethodGet, "/api/v1/stats", nil, map[string]string{"Authorization": "Token test-api-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetEatingTime_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().CurrentEatingTime(gomock.Any()).Return(models.Dinner)

	w := makeRequest(router, http.MethodGet, "/api/v1/eating-time", nil, map[string]string{"Authorization": "Bearer test-api-key"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp EatingTimeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "dinner", resp.EatingTime)
	assert.Equal(t, policy.Greeting(models.Dinner), resp.Greeting)
	assert.Equal(t, []string{"restaurant", "bar"}, resp.AllowedCategories)
}

func TestGetRecommendations_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	sessionID := uuid.New().String()
	center := models.GeoPoint{Latitude: 55.75, Longitude: 37.61}

	mockService.EXPECT().
		Recommend(gomock.Any(), sessionID, center, models.TriggerInitial).
		Return(sampleRecommendation(sessionID, models.TriggerInitial), nil)

	url := fmt.Sprintf("/api/v1/recommendations?session_id=%s&lat=55.75&lon=37.61", sessionID)
	w := makeRequest(router, http.MethodGet, url, nil, apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sessionID, resp.SessionID)
	assert.Equal(t, "dinner", resp.EatingTime)
	assert.Equal(t, "initial", resp.Trigger)
	require.Len(t, resp.Venues, 1)
	assert.Equal(t, "p1", resp.Venues[0].ID)
	assert.Equal(t, []string{"bar"}, resp.Venues[0].Categories)
}

func TestGetRecommendations_ValidationError(t *testing.T) {
	_, _, router := newTestHandler(t)
	sessionID := uuid.New().String()

	cases := map[string]string{
		"missing lon":        fmt.Sprintf("session_id=%s&lat=55.75", sessionID),
		"latitude too large": fmt.Sprintf("session_id=%s&lat=91&lon=37.61", sessionID),
		"not a number":       fmt.Sprintf("session_id=%s&lat=abc&lon=37.61", sessionID),
		"bad session id":     "session_id=not-a-uuid&lat=55.75&lon=37.61",
	}
	for name, query := range cases {
		t.Run(name, func(t *testing.T) {
			w := makeRequest(router, http.MethodGet, "/api/v1/recommendations?"+query, nil, apiKeyHeader)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetRecommendations_ZeroCoordinatesAccepted(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	sessionID := uuid.New().String()

	mockService.EXPECT().
		Recommend(gomock.Any(), sessionID, models.GeoPoint{}, models.TriggerInitial).
		Return(&models.Recommendation{SessionID: sessionID, EatingTime: models.Lunch, Trigger: models.TriggerInitial}, nil)

	url := fmt.Sprintf("/api/v1/recommendations?session_id=%s&lat=0&lon=0", sessionID)
	w := makeRequest(router, http.MethodGet, url, nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetRecommendations_ServiceErrors(t *testing.T) {
	sessionID := uuid.New().String()
	url := fmt.Sprintf("/api/v1/recommendations?session_id=%s&lat=55.75&lon=37.61", sessionID)

	t.Run("contract violation", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)
		mockService.EXPECT().
			Recommend(gomock.Any(), sessionID, gomock.Any(), models.TriggerInitial).
			Return(nil, fmt.Errorf("service: invalid center: %w", policy.ErrInvalidCoordinates))

		w := makeRequest(router, http.MethodGet, url, nil, apiKeyHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("internal", func(t *testing.T) {
		_, mockService, router := newTestHandler(t)
		mockService.EXPECT().
			Recommend(gomock.Any(), sessionID, gomock.Any(), models.TriggerInitial).
			Return(nil, errors.New("boom"))

		w := makeRequest(router, http.MethodGet, url, nil, apiKeyHeader)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	})
}

func TestUpdateLocation_Refetched(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	sessionID := uuid.New().String()
	obs := models.LocationObservation{
		Point:          models.GeoPoint{Latitude: 55.76, Longitude: 37.62},
		AccuracyMeters: 12,
	}

	mockService.EXPECT().
		ObserveLocation(gomock.Any(), sessionID, obs).
		Return(&models.LocationResult{
			Refetched:      true,
			Recommendation: sampleRecommendation(sessionID, models.TriggerMoved),
		}, nil)

	body := jsonBody(t, LocationUpdateRequest{Latitude: ptr(55.76), Longitude: ptr(37.62), AccuracyMeters: 12})
	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+sessionID+"/location", body, apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp LocationUpdateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Refetched)
	require.NotNil(t, resp.Recommendation)
	assert.Equal(t, "moved", resp.Recommendation.Trigger)
}

func TestUpdateLocation_NotRefetched(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	sessionID := uuid.New().String()

	mockService.EXPECT().
		ObserveLocation(gomock.Any(), sessionID, gomock.Any()).
		Return(&models.LocationResult{}, nil)

	body := jsonBody(t, LocationUpdateRequest{Latitude: ptr(55.76), Longitude: ptr(37.62)})
	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+sessionID+"/location", body, apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"refetched":false}`, w.Body.String())
}

func TestUpdateLocation_BadRequest(t *testing.T) {
	_, _, router := newTestHandler(t)
	sessionID := uuid.New().String()

	t.Run("invalid session id", func(t *testing.T) {
		body := jsonBody(t, LocationUpdateRequest{Latitude: ptr(1), Longitude: ptr(1)})
		w := makeRequest(router, http.MethodPost, "/api/v1/sessions/abc/location", body, apiKeyHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid session ID"}`, w.Body.String())
	})

	t.Run("invalid json", func(t *testing.T) {
		w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+sessionID+"/location", bytes.NewBufferString("{"), apiKeyHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
	})

	t.Run("missing longitude", func(t *testing.T) {
		body := jsonBody(t, LocationUpdateRequest{Latitude: ptr(1)})
		w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+sessionID+"/location", body, apiKeyHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		body := jsonBody(t, LocationUpdateRequest{Latitude: ptr(1), Longitude: ptr(181)})
		w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+sessionID+"/location", body, apiKeyHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative accuracy", func(t *testing.T) {
		body := jsonBody(t, LocationUpdateRequest{Latitude: ptr(1), Longitude: ptr(1), AccuracyMeters: -1})
		w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+sessionID+"/location", body, apiKeyHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

type rejectingSubmitter struct{ err error }

func (r rejectingSubmitter) Submit(context.Context, session.Event) (*session.Outcome, error) {
	return nil, r.err
}

func TestUpdateLocation_QueueUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockRecommendationService(ctrl)
	sessionID := uuid.New().String()

	for _, queueErr := range []error{session.ErrQueueFull, session.ErrStopped} {
		handler := NewHandler(mockService, rejectingSubmitter{err: queueErr}, newTestLogger(), newTestConfig())
		router := newTestRouter(handler)

		body := jsonBody(t, LocationUpdateRequest{Latitude: ptr(1), Longitude: ptr(1)})
		w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+sessionID+"/location", body, apiKeyHeader)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	}
}

func TestPlacesChanged_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	sessionID := uuid.New().String()

	expectedVenues := []models.Venue{
		{ID: "a", Name: "A", Location: models.GeoPoint{Latitude: 10, Longitude: 20}, Categories: []string{"cafe"}},
	}
	mockService.EXPECT().
		PlacesChanged(gomock.Any(), sessionID, expectedVenues).
		Return(sampleRecommendation(sessionID, models.TriggerSearch), nil)

	body := jsonBody(t, PlacesChangedRequest{Places: []SearchedPlace{
		{ID: "a", Name: "A", Latitude: ptr(10), Longitude: ptr(20), Categories: []string{"cafe"}},
		{ID: "b", Name: "No geometry"},
	}})
	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+sessionID+"/places", body, apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp RecommendationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "search", resp.Trigger)
}

func TestPlacesChanged_EmptyList(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	sessionID := uuid.New().String()

	mockService.EXPECT().
		PlacesChanged(gomock.Any(), sessionID, []models.Venue{}).
		Return(nil, nil)

	body := jsonBody(t, PlacesChangedRequest{Places: []SearchedPlace{}})
	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+sessionID+"/places", body, apiKeyHeader)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPlacesChanged_ValidationError(t *testing.T) {
	_, _, router := newTestHandler(t)
	sessionID := uuid.New().String()

	body := jsonBody(t, PlacesChangedRequest{Places: []SearchedPlace{
		{ID: "a", Latitude: ptr(100), Longitude: ptr(20)},
	}})
	w := makeRequest(router, http.MethodPost, "/api/v1/sessions/"+sessionID+"/places", body, apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPlaceDetails_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		PlaceDetails(gomock.Any(), "place-1").
		Return(&models.PlaceCard{
			ID:             "place-1",
			Name:           "Cafe",
			Address:        "Main st. 1",
			PhotoReference: "photo-1",
			Rating:         4.3,
			Stars:          4,
			Reviews:        []models.ReviewCard{{AuthorName: "Ann", Stars: 5, Text: "Great"}},
		}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/places/place-1", nil, apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp PlaceDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Main st. 1", resp.Address)
	assert.Equal(t, 4, resp.Stars)
	assert.Equal(t, policy.MaxStars, resp.MaxStars)
	require.Len(t, resp.Reviews, 1)
	assert.Equal(t, "Ann", resp.Reviews[0].AuthorName)
}

func TestGetPlaceDetails_Unavailable(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		PlaceDetails(gomock.Any(), "place-1").
		Return(nil, fmt.Errorf("service: %w: NOT_FOUND", places.ErrDetailsUnavailable))

	w := makeRequest(router, http.MethodGet, "/api/v1/places/place-1", nil, apiKeyHeader)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGetHistory_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	sessionID := uuid.New().String()
	createdAt := time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)
	logID := uuid.New()

	mockService.EXPECT().
		SessionHistory(gomock.Any(), sessionID, 5).
		Return([]*models.RecommendationLog{{
			ID:         logID,
			SessionID:  sessionID,
			Latitude:   55.75,
			Longitude:  37.61,
			EatingTime: models.Dinner,
			VenueCount: 3,
			Trigger:    models.TriggerMoved,
			CreatedAt:  createdAt,
		}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+sessionID+"/history?limit=5", nil, apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []HistoryEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, logID, resp[0].ID)
	assert.Equal(t, 3, resp[0].VenueCount)
	assert.True(t, createdAt.Equal(resp[0].CreatedAt))
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().GetStats(gomock.Any()).Return(7, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/stats", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"session_count":7}`, w.Body.String())
}

func TestGetStats_ServiceError(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	mockService.EXPECT().GetStats(gomock.Any()).Return(0, errors.New("db down"))

	w := makeRequest(router, http.MethodGet, "/api/v1/stats", nil, apiKeyHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "****", maskKey("abc"))
	assert.Equal(t, "test****", maskKey("test-api-key"))
}

func TestGetHistory_DefaultLimit(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	sessionID := uuid.New().String()

	mockService.EXPECT().
		SessionHistory(gomock.Any(), sessionID, 20).
		Return([]*models.RecommendationLog{}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+sessionID+"/history", nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetHistory_InvalidLimit(t *testing.T) {
	_, _, router := newTestHandler(t)
	sessionID := uuid.New().String()

	for _, limit := range []string{"abc", "0", "-5", "101", "2.5"} {
		t.Run(limit, func(t *testing.T) {
			w := makeRequest(router, http.MethodGet, "/api/v1/sessions/"+sessionID+"/history?limit="+limit, nil, apiKeyHeader)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetPlaceDetails_WithSession(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	sessionID := uuid.New().String()

	mockService.EXPECT().
		PlaceDetails(gomock.Any(), "place-2").
		Return(&models.PlaceCard{ID: "place-2", Name: "Bar", Reviews: []models.ReviewCard{}}, nil)

	w := makeRequest(router, http.MethodGet, "/api/v1/places/place-2?session_id="+sessionID, nil, apiKeyHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetPlaceDetails_InvalidSession(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/places/place-2?session_id=nope", nil, apiKeyHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid session ID"}`, w.Body.String())
}

type recordingSubmitter struct{ events []session.Event }

func (r *recordingSubmitter) Submit(_ context.Context, ev session.Event) (*session.Outcome, error) {
	r.events = append(r.events, ev)
	return &session.Outcome{Place: &models.PlaceCard{ID: ev.PlaceID}}, nil
}

func TestGetPlaceDetails_EventCarriesSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := &recordingSubmitter{}
	handler := NewHandler(mocks.NewMockRecommendationService(ctrl), submitter, newTestLogger(), newTestConfig())
	router := newTestRouter(handler)
	sessionID := uuid.New().String()

	w := makeRequest(router, http.MethodGet, "/api/v1/places/place-3?session_id="+sessionID, nil, apiKeyHeader)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, submitter.events, 1)
	assert.Equal(t, session.DetailsFetched, submitter.events[0].Type)
	assert.Equal(t, sessionID, submitter.events[0].SessionID)
	assert.Equal(t, "place-3", submitter.events[0].PlaceID)
}
