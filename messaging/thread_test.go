package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anjith1/harvest-demand-link/schema"
	"github.com/anjith1/harvest-demand-link/store"
)

func acceptedRequest(t *testing.T, s *store.MemoryStore) *schema.NecessityRequest {
	t.Helper()

	r := &schema.NecessityRequest{
		ConsumerID:   "consumer-1",
		ConsumerName: "Sita",
		Items:        schema.RequestItems{{Name: "Rice", Quantity: 10, Unit: "kg"}},
		Urgency:      schema.UrgencyMedium,
		TimeNeeded:   "this week",
		Location:     schema.Location{Latitude: 27.7, Longitude: 85.3},
	}
	require.NoError(t, s.CreateRequest(r))

	updated, err := s.CompareAndSetStatus(r.ID.String(), schema.RequestPending, store.StatusChange{
		Status:       schema.RequestAccepted,
		AcceptedBy:   "farmer-1",
		DeliveryTime: "2 days",
	})
	require.NoError(t, err)
	return updated
}

func TestAppendBothDirections(t *testing.T) {
	s := store.NewMemoryStore()
	thread := NewThread(s, s)
	r := acceptedRequest(t, s)

	fromConsumer, err := thread.Append(r.ID.String(), "consumer-1", schema.SenderConsumer, "still available?")
	require.NoError(t, err)
	assert.Equal(t, "farmer-1", fromConsumer.ReceiverID)
	assert.False(t, fromConsumer.Read)

	fromFarmer, err := thread.Append(r.ID.String(), "farmer-1", schema.SenderFarmer, "yes, delivering tomorrow")
	require.NoError(t, err)
	assert.Equal(t, "consumer-1", fromFarmer.ReceiverID)

	messages, err := thread.List(r.ID.String())
	require.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "still available?", messages[0].Text)
	assert.Equal(t, "yes, delivering tomorrow", messages[1].Text)
}

func TestAppendRejectsMismatchedSender(t *testing.T) {
	s := store.NewMemoryStore()
	thread := NewThread(s, s)
	r := acceptedRequest(t, s)

	// a farmer who is not the accepter cannot write to the thread
	_, err := thread.Append(r.ID.String(), "farmer-2", schema.SenderFarmer, "hello")
	assert.Equal(t, ErrNotParty, err)

	// nor can a consumer identity that does not own the request
	_, err = thread.Append(r.ID.String(), "consumer-2", schema.SenderConsumer, "hello")
	assert.Equal(t, ErrNotParty, err)
}

func TestAppendRejectsUnknownSenderType(t *testing.T) {
	s := store.NewMemoryStore()
	thread := NewThread(s, s)
	r := acceptedRequest(t, s)

	_, err := thread.Append(r.ID.String(), "consumer-1", schema.SenderType("admin"), "hello")
	assert.Equal(t, ErrUnknownSenderType, err)
}

func TestAppendRejectsEmptyText(t *testing.T) {
	s := store.NewMemoryStore()
	thread := NewThread(s, s)
	r := acceptedRequest(t, s)

	_, err := thread.Append(r.ID.String(), "consumer-1", schema.SenderConsumer, "   ")
	assert.Equal(t, ErrEmptyMessage, err)
}

func TestAppendRequiresAcceptedRequest(t *testing.T) {
	s := store.NewMemoryStore()
	thread := NewThread(s, s)

	r := &schema.NecessityRequest{
		ConsumerID: "consumer-1",
		Items:      schema.RequestItems{{Name: "Rice", Quantity: 10, Unit: "kg"}},
		Urgency:    schema.UrgencyLow,
		Location:   schema.Location{Latitude: 27.7, Longitude: 85.3},
	}
	require.NoError(t, s.CreateRequest(r))

	_, err := thread.Append(r.ID.String(), "consumer-1", schema.SenderConsumer, "anyone?")
	assert.Equal(t, ErrRequestNotAccepted, err)
}

func TestAppendUnknownRequest(t *testing.T) {
	s := store.NewMemoryStore()
	thread := NewThread(s, s)

	_, err := thread.Append("no-such-id", "consumer-1", schema.SenderConsumer, "hello")
	assert.Equal(t, store.ErrRequestNotFound, err)
}

func TestMarkRead(t *testing.T) {
	s := store.NewMemoryStore()
	thread := NewThread(s, s)
	r := acceptedRequest(t, s)

	_, err := thread.Append(r.ID.String(), "consumer-1", schema.SenderConsumer, "first")
	require.NoError(t, err)
	_, err = thread.Append(r.ID.String(), "consumer-1", schema.SenderConsumer, "second")
	require.NoError(t, err)

	require.NoError(t, thread.MarkRead(r.ID.String(), "farmer-1"))

	// a message arriving after the mark stays unread
	_, err = thread.Append(r.ID.String(), "consumer-1", schema.SenderConsumer, "third")
	require.NoError(t, err)

	messages, err := thread.List(r.ID.String())
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.True(t, messages[0].Read)
	assert.True(t, messages[1].Read)
	assert.False(t, messages[2].Read)
}

func TestMarkReadUnknownRequest(t *testing.T) {
	s := store.NewMemoryStore()
	thread := NewThread(s, s)

	err := thread.MarkRead("no-such-id", "farmer-1")
	assert.Equal(t, store.ErrRequestNotFound, err)
}
