// Package places - клиент к внешнему сервису поиска заведений (Google Places Web Service).
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shenikar/chelwa/internal/models"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=client.go -destination=mocks/mock_client.go -package=mocks

const DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

const detailsFields = "name,formatted_address,photos,reviews,rating"

var (
	// ErrDetailsUnavailable возвращается, когда сервис деталей ответил неуспешным статусом
	ErrDetailsUnavailable = errors.New("place details unavailable")
	// ErrSearchUnavailable возвращается, когда поиск отклонен (ключ, квота, неверный запрос)
	ErrSearchUnavailable = errors.New("nearby search unavailable")
)

// Searcher ищет заведения рядом с точкой
type Searcher interface {
	NearbySearch(ctx context.Context, center models.GeoPoint, radiusMeters int, categories []string) ([]models.Venue, error)
}

// DetailsFetcher получает расширенную информацию о заведении
type DetailsFetcher interface {
	Details(ctx context.Context, placeID string) (*models.VenueDetails, error)
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// NearbySearch выполняет поиск по каждой категории и объединяет результаты без повторов.
// ZERO_RESULTS дает пустой результат для категории, любой другой неуспешный статус - ошибку.
func (c *Client) NearbySearch(ctx context.Context, center models.GeoPoint, radiusMeters int, categories []string) ([]models.Venue, error) {
	log := c.logger.WithFields(logrus.Fields{
		"client": "places",
		"method": "NearbySearch",
		"lat":    center.Latitude,
		"lon":    center.Longitude,
	})

	seen := make(map[string]struct{})
	venues := make([]models.Venue, 0)

	for _, category := range categories {
		params := url.Values{}
		params.Set("location", fmt.Sprintf("%f,%f", center.Latitude, center.Longitude))
		params.Set("radius", strconv.Itoa(radiusMeters))
		params.Set("type", category)

		var resp nearbySearchResponse
		if err := c.get(ctx, "/nearbysearch/json", params, &resp); err != nil {
			return nil, fmt.Errorf("nearby search for %q: %w", category, err)
		}

		switch resp.Status {
		case statusOK:
		case statusZeroResults:
			continue
		default:
			log.WithField("status", resp.Status).WithField("category", category).
				Warnf("Nearby search returned non-success status: %s", resp.ErrorMessage)
			return nil, fmt.Errorf("%w: status %s for %q", ErrSearchUnavailable, resp.Status, category)
		}

		for _, r := range resp.Results {
			if r.Geometry == nil || r.Geometry.Location == nil {
				log.WithField("place_id", r.PlaceID).Debug("Returned place contains no geometry")
				continue
			}
			if _, dup := seen[r.PlaceID]; dup {
				continue
			}
			seen[r.PlaceID] = struct{}{}
			venues = append(venues, models.Venue{
				ID:   r.PlaceID,
				Name: r.Name,
				Location: models.GeoPoint{
					Latitude:  r.Geometry.Location.Lat,
					Longitude: r.Geometry.Location.Lng,
				},
				Categories: r.Types,
			})
		}
	}

	log.WithField("count", len(venues)).Debug("Nearby search completed")
	return venues, nil
}

// Details возвращает имя, адрес, фото, отзывы и рейтинг заведения
func (c *Client) Details(ctx context.Context, placeID string) (*models.VenueDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)

	var resp detailsResponse
	if err := c.get(ctx, "/details/json", params, &resp); err != nil {
		return nil, fmt.Errorf("details for %s: %w", placeID, err)
	}

	if resp.Status != statusOK || resp.Result == nil {
		return nil, fmt.Errorf("%w: status %s for %s", ErrDetailsUnavailable, resp.Status, placeID)
	}

	r := resp.Result
	details := &models.VenueDetails{
		ID:              placeID,
		Name:            r.Name,
		Address:         r.FormattedAddress,
		Rating:          r.Rating,
		PhotoReferences: make([]string, 0, len(r.Photos)),
		Reviews:         make([]models.Review, 0, len(r.Reviews)),
	}
	for _, p := range r.Photos {
		details.PhotoReferences = append(details.PhotoReferences, p.PhotoReference)
	}
	for _, rv := range r.Reviews {
		details.Reviews = append(details.Reviews, models.Review{
			AuthorName: rv.AuthorName,
			Rating:     rv.Rating,
			Text:       rv.Text,
		})
	}
	return details, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
