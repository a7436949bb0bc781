package policy

import (
	"fmt"
	"math"

	"github.com/golang/geo/s2"

	"github.com/shenikar/chelwa/internal/models"
)

// EarthRadiusMeters - средний радиус Земли
const EarthRadiusMeters = 6371000.0

// Validate проверяет, что координаты конечны и лежат в допустимых пределах
func Validate(p models.GeoPoint) error {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) ||
		math.IsInf(p.Latitude, 0) || math.IsInf(p.Longitude, 0) {
		return fmt.Errorf("%w: non-finite value (%v, %v)", ErrInvalidCoordinates, p.Latitude, p.Longitude)
	}
	if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("%w: out of range (%v, %v)", ErrInvalidCoordinates, p.Latitude, p.Longitude)
	}
	return nil
}

// GreatCircleDistance возвращает расстояние между точками в метрах (формула гаверсинусов)
func GreatCircleDistance(a, b models.GeoPoint) (float64, error) {
	if err := Validate(a); err != nil {
		return 0, err
	}
	if err := Validate(b); err != nil {
		return 0, err
	}

	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLon := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// погрешность округления может вывести h за пределы [0,1]
	root := math.Min(1, math.Max(0, math.Sqrt(math.Max(0, h))))

	return 2 * EarthRadiusMeters * math.Asin(root), nil
}

// BoundsCenter возвращает центр ограничивающего прямоугольника точек.
// Для пустого набора ok == false.
func BoundsCenter(points []models.GeoPoint) (center models.GeoPoint, ok bool) {
	if len(points) == 0 {
		return models.GeoPoint{}, false
	}
	rect := s2.EmptyRect()
	for _, p := range points {
		rect = rect.AddPoint(s2.LatLngFromDegrees(p.Latitude, p.Longitude))
	}
	c := rect.Center()
	return models.GeoPoint{Latitude: c.Lat.Degrees(), Longitude: c.Lng.Degrees()}, true
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
