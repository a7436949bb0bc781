package service

import (
	"context"
	"fmt"

	"github.com/shenikar/chelwa/internal/session"
)

// EventHandler направляет события сессии в сервис рекомендаций
func EventHandler(svc RecommendationService) session.HandlerFunc {
	return func(ctx context.Context, ev session.Event) (*session.Outcome, error) {
		switch ev.Type {
		case session.LocationUpdated:
			result, err := svc.ObserveLocation(ctx, ev.SessionID, ev.Observation)
			if err != nil {
				return nil, err
			}
			return &session.Outcome{Location: result}, nil
		case session.PlacesChanged:
			rec, err := svc.PlacesChanged(ctx, ev.SessionID, ev.Places)
			if err != nil {
				return nil, err
			}
			return &session.Outcome{Recommendation: rec}, nil
		case session.DetailsFetched:
			card, err := svc.PlaceDetails(ctx, ev.PlaceID)
			if err != nil {
				return nil, err
			}
			return &session.Outcome{Place: card}, nil
		default:
			return nil, fmt.Errorf("service: unknown event type %q", ev.Type)
		}
	}
}
