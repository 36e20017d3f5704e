package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MessageCollection = "message"
)

type SenderType string

const (
	SenderConsumer SenderType = "consumer"
	SenderFarmer   SenderType = "farmer"
)

// ParseSenderType normalizes a sender type submitted by a client.
func ParseSenderType(value string) (SenderType, bool) {
	switch SenderType(value) {
	case SenderConsumer, SenderFarmer:
		return SenderType(value), true
	}
	return "", false
}

// Message is a single entry of the conversation thread attached to a
// necessity request. Only the Read flag is ever mutated.
type Message struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RequestID  string             `json:"request_id" bson:"request_id"`
	SenderID   string             `json:"sender_id" bson:"sender_id"`
	ReceiverID string             `json:"receiver_id" bson:"receiver_id"`
	SenderType SenderType         `json:"sender_type" bson:"sender_type"`
	Text       string             `json:"message" bson:"text"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	Read       bool               `json:"read" bson:"read"`
}
