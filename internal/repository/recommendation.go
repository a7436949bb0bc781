package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/chelwa/internal/models"
	"github.com/shenikar/chelwa/internal/service"
)

type RecommendationRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewRecommendationRepository(db *pgxpool.Pool, redisClient *redis.Client) service.RecommendationRepository {
	return &RecommendationRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// SaveRecommendationLog сохраняет запись о выданной рекомендации в бд
func (r *RecommendationRepository) SaveRecommendationLog(ctx context.Context, entry *models.RecommendationLog) error {
	query := `
		INSERT INTO recommendation_logs (session_id, location, eating_time, venue_count, trigger)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326), $4, $5, $6) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		entry.SessionID,
		entry.Longitude,
		entry.Latitude,
		string(entry.EatingTime),
		entry.VenueCount,
		string(entry.Trigger),
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save recommendation log: %w", err)
	}
	return nil
}

// ListSessionLogs возвращает последние рекомендации сессии
func (r *RecommendationRepository) ListSessionLogs(ctx context.Context, sessionID string, limit int) ([]*models.RecommendationLog, error) {
	query := `
		SELECT
			id,
			session_id,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			eating_time,
			venue_count,
			trigger,
			created_at
		FROM recommendation_logs
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendation logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*models.RecommendationLog, 0)
	for rows.Next() {
		entry := &models.RecommendationLog{}
		var eatingTime, trigger string
		err := rows.Scan(
			&entry.ID,
			&entry.SessionID,
			&entry.Latitude,
			&entry.Longitude,
			&eatingTime,
			&entry.VenueCount,
			&trigger,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recommendation log row: %w", err)
		}
		entry.EatingTime = models.EatingTime(eatingTime)
		entry.Trigger = models.Trigger(trigger)
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return logs, nil
}

// GetSessionStats возвращает количество уникальных сессий, получивших рекомендации
func (r *RecommendationRepository) GetSessionStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT session_id)
		FROM recommendation_logs
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get session stats: %w", err)
	}
	return count, nil
}

// GetDetailsFromCache пытается получить детали заведения из Redis
func (r *RecommendationRepository) GetDetailsFromCache(ctx context.Context, placeID string) (*models.VenueDetails, error) {
	val, err := r.redisClient.Get(ctx, detailsKey(placeID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get details from cache: %w", err)
	}

	details := &models.VenueDetails{}
	if err := json.Unmarshal(val, details); err != nil {
		return nil, fmt.Errorf("failed to unmarshal details from cache: %w", err)
	}
	return details, nil
}

// SetDetailsCache сохраняет детали заведения в Redis
func (r *RecommendationRepository) SetDetailsCache(ctx context.Context, details *models.VenueDetails, ttl time.Duration) error {
	val, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal details for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, detailsKey(details.ID), val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set details in cache: %w", err)
	}
	return nil
}

// GetVenuesFromCache возвращает закешированный результат поиска рядом с точкой.
// Второе значение false означает промах кеша.
func (r *RecommendationRepository) GetVenuesFromCache(ctx context.Context, center models.GeoPoint, radiusMeters int) ([]models.Venue, bool, error) {
	val, err := r.redisClient.Get(ctx, venuesKey(center, radiusMeters)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get venues from cache: %w", err)
	}

	venues := make([]models.Venue, 0)
	if err := json.Unmarshal(val, &venues); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal venues from cache: %w", err)
	}
	return venues, true, nil
}

// SetVenuesCache сохраняет результат поиска рядом с точкой
func (r *RecommendationRepository) SetVenuesCache(ctx context.Context, center models.GeoPoint, radiusMeters int, venues []models.Venue, ttl time.Duration) error {
	val, err := json.Marshal(venues)
	if err != nil {
		return fmt.Errorf("failed to marshal venues for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, venuesKey(center, radiusMeters), val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set venues in cache: %w", err)
	}
	return nil
}

func detailsKey(placeID string) string {
	return fmt.Sprintf("place_details:%s", placeID)
}

// venuesKey округляет координаты до 4 знаков (~11 м), чтобы близкие точки попадали в один ключ
func venuesKey(center models.GeoPoint, radiusMeters int) string {
	return fmt.Sprintf("nearby:%.4f:%.4f:%d", center.Latitude, center.Longitude, radiusMeters)
}
