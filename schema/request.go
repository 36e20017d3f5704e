package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestRejected  RequestStatus = "rejected"
	RequestFulfilled RequestStatus = "fulfilled"
)

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// ParseUrgency normalizes an urgency value submitted by a client.
func ParseUrgency(value string) (Urgency, bool) {
	switch Urgency(value) {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return Urgency(value), true
	}
	return "", false
}

type RequestItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type RequestItems []RequestItem

func (i RequestItems) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (i *RequestItems) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, i)
}

// Location is a named coordinate pair. Country and District are filled
// by reverse geocoding when the submitted name is blank.
type Location struct {
	Name      string  `json:"name,omitempty" bson:"name,omitempty"`
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Country   string  `json:"country,omitempty" bson:"country,omitempty"`
	District  string  `json:"district,omitempty" bson:"district,omitempty"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, l)
}

// NecessityRequest is a consumer's declared need for quantities of named
// items at a location. Status only ever moves along
// pending -> {accepted|rejected} -> fulfilled; AcceptedBy and DeliveryTime
// are written once by the accepting transition.
type NecessityRequest struct {
	ID           uuid.UUID     `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ConsumerID   string        `json:"consumer_id"`
	ConsumerName string        `json:"consumer_name"`
	Items        RequestItems  `json:"items" gorm:"type:jsonb;not null;default '[]'"`
	Urgency      Urgency       `json:"urgency"`
	TimeNeeded   string        `json:"time_needed"`
	Location     Location      `json:"location" gorm:"type:jsonb;not null;default '{}'"`
	Status       RequestStatus `json:"status" sql:"default:'pending'"`
	AcceptedBy   string        `json:"accepted_by,omitempty"`
	DeliveryTime string        `json:"delivery_time,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}
