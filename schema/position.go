package schema

const (
	FarmerPositionCollection = "farmerPosition"
)

// GeoJSON is a mongodb geospatial point. Coordinates are [longitude, latitude].
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// FarmerPosition keeps the last reported position of a farmer account. It
// feeds the default origin of the ranked nearby view and the broadcast
// radius of new-request notifications.
type FarmerPosition struct {
	AccountNumber string  `bson:"account_number"`
	Location      GeoJSON `bson:"location"`
	Timestamp     int64   `bson:"ts"`
}
