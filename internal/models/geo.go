package models

// GeoPoint - координаты в градусах
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationObservation - одно наблюдение от источника геолокации
type LocationObservation struct {
	Point          GeoPoint `json:"point"`
	AccuracyMeters float64  `json:"accuracy_meters"`
}

// MovementState хранит последнюю известную точку сессии.
// Moving становится true только после обработки первого наблюдения.
type MovementState struct {
	LastKnown *GeoPoint `json:"last_known,omitempty"`
	Moving    bool      `json:"moving"`
}
