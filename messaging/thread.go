package messaging

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/anjith1/harvest-demand-link/schema"
	"github.com/anjith1/harvest-demand-link/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "messaging")
}

var (
	ErrEmptyMessage       = fmt.Errorf("message text is required")
	ErrUnknownSenderType  = fmt.Errorf("unknown sender type")
	ErrNotParty           = fmt.Errorf("sender is not a party to the request")
	ErrRequestNotAccepted = fmt.Errorf("request has no accepted farmer to message with")
)

// Thread is the conversation log attached to a necessity request. A thread
// opens once a farmer accepts the request; its only parties are the
// consumer who submitted it and the farmer who accepted it, and the
// receiver of every message is always the other party.
type Thread struct {
	requests store.DemandStore
	messages store.MessageStore
}

func NewThread(requests store.DemandStore, messages store.MessageStore) *Thread {
	return &Thread{
		requests: requests,
		messages: messages,
	}
}

// Append adds a message to the thread of a request. The sender must match
// the request party its sender type claims, which keeps a spoofed or
// stale sender id from entering the log no matter what the boundary
// already checked.
func (t *Thread) Append(requestID, senderID string, senderType schema.SenderType, text string) (*schema.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	request, err := t.requests.GetRequest(requestID)
	if err != nil {
		return nil, err
	}

	if request.AcceptedBy == "" {
		return nil, ErrRequestNotAccepted
	}

	var receiverID string
	switch senderType {
	case schema.SenderConsumer:
		if senderID != request.ConsumerID {
			return nil, ErrNotParty
		}
		receiverID = request.AcceptedBy
	case schema.SenderFarmer:
		if senderID != request.AcceptedBy {
			return nil, ErrNotParty
		}
		receiverID = request.ConsumerID
	default:
		return nil, ErrUnknownSenderType
	}

	message := &schema.Message{
		RequestID:  requestID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		SenderType: senderType,
		Text:       text,
	}

	if err := t.messages.AppendMessage(message); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"request_id": requestID,
		"sender_id":  senderID,
	}).Debug("message appended")

	return message, nil
}

// List returns the whole thread of a request, oldest first.
func (t *Thread) List(requestID string) ([]schema.Message, error) {
	if _, err := t.requests.GetRequest(requestID); err != nil {
		return nil, err
	}
	return t.messages.ListMessagesByRequest(requestID)
}

// MarkRead flips the read flag on every unread message addressed to the
// receiver on the thread. Messages appended afterwards stay unread.
func (t *Thread) MarkRead(requestID, receiverID string) error {
	if _, err := t.requests.GetRequest(requestID); err != nil {
		return err
	}
	return t.messages.MarkMessagesRead(requestID, receiverID)
}
