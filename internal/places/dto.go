package places

// Статусы ответа Places API
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geometry struct {
	Location *latLng `json:"location"`
}

type placeResult struct {
	PlaceID  string    `json:"place_id"`
	Name     string    `json:"name"`
	Geometry *geometry `json:"geometry"`
	Types    []string  `json:"types"`
}

type nearbySearchResponse struct {
	Results      []placeResult `json:"results"`
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
}

type review struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
}

type detailsResult struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Photos           []photo  `json:"photos"`
	Reviews          []review `json:"reviews"`
	Rating           float64  `json:"rating"`
}

type detailsResponse struct {
	Result       *detailsResult `json:"result"`
	Status       string         `json:"status"`
	ErrorMessage string         `json:"error_message,omitempty"`
}
