package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/anjith1/harvest-demand-link/schema"
)

// AppendMessage stores a new message on a request thread. The message id
// and creation time are assigned here.
func (m *mongoDB) AppendMessage(message *schema.Message) error {
	c := m.client.Database(m.database).Collection(schema.MessageCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	message.ID = primitive.NewObjectID()
	message.CreatedAt = time.Now().UTC()
	message.Read = false

	if _, err := c.InsertOne(ctx, message); nil != err {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"request_id": message.RequestID,
			"sender_id":  message.SenderID,
			"error":      err,
		}).Error("append message")
		return err
	}

	return nil
}

// ListMessagesByRequest returns the whole thread of a request, oldest first.
func (m *mongoDB) ListMessagesByRequest(requestID string) ([]schema.Message, error) {
	c := m.client.Database(m.database).Collection(schema.MessageCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"request_id": requestID,
	}
	opts := options.Find().SetSort(bson.M{"created_at": 1})

	cur, err := c.Find(ctx, query, opts)
	if nil != err {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"request_id": requestID,
			"error":      err,
		}).Error("list request messages")
		return nil, err
	}

	result := make([]schema.Message, 0)
	for cur.Next(ctx) {
		var msg schema.Message
		if err = cur.Decode(&msg); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}

	return result, nil
}

// MarkMessagesRead flips the read flag of every unread message addressed to
// a receiver on a thread.
func (m *mongoDB) MarkMessagesRead(requestID, receiverID string) error {
	c := m.client.Database(m.database).Collection(schema.MessageCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query := bson.M{
		"request_id":  requestID,
		"receiver_id": receiverID,
		"read":        false,
	}

	if _, err := c.UpdateMany(ctx, query, bson.M{
		"$set": bson.M{"read": true},
	}); nil != err {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"request_id":  requestID,
			"receiver_id": receiverID,
			"error":       err,
		}).Error("mark request messages read")
		return err
	}

	return nil
}
