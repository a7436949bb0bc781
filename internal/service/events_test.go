package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/chelwa/internal/models"
	"github.com/shenikar/chelwa/internal/service/mocks"
	"github.com/shenikar/chelwa/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventHandler_Routes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockRecommendationService(ctrl)
	handler := EventHandler(svc)
	ctx := context.Background()

	obs := models.LocationObservation{Point: models.GeoPoint{Latitude: 1, Longitude: 2}}
	svc.EXPECT().ObserveLocation(ctx, "s1", obs).Return(&models.LocationResult{Refetched: true}, nil).Times(1)
	outcome, err := handler(ctx, session.Event{Type: session.LocationUpdated, SessionID: "s1", Observation: obs})
	require.NoError(t, err)
	assert.True(t, outcome.Location.Refetched)

	venues := []models.Venue{{ID: "v"}}
	svc.EXPECT().PlacesChanged(ctx, "s1", venues).Return(&models.Recommendation{SessionID: "s1"}, nil).Times(1)
	outcome, err = handler(ctx, session.Event{Type: session.PlacesChanged, SessionID: "s1", Places: venues})
	require.NoError(t, err)
	assert.Equal(t, "s1", outcome.Recommendation.SessionID)

	svc.EXPECT().PlaceDetails(ctx, "p1").Return(&models.PlaceCard{ID: "p1"}, nil).Times(1)
	outcome, err = handler(ctx, session.Event{Type: session.DetailsFetched, PlaceID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, "p1", outcome.Place.ID)
}

func TestEventHandler_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockRecommendationService(ctrl)
	handler := EventHandler(svc)
	ctx := context.Background()
	detailsErr := errors.New("unavailable")

	svc.EXPECT().PlaceDetails(ctx, "p1").Return(nil, detailsErr).Times(1)
	_, err := handler(ctx, session.Event{Type: session.DetailsFetched, PlaceID: "p1"})
	assert.ErrorIs(t, err, detailsErr)

	_, err = handler(ctx, session.Event{Type: "unknown"})
	assert.ErrorContains(t, err, "unknown event type")
}
