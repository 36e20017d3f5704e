package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/anjith1/harvest-demand-link/schema"
)

// MemoryStore is an in-memory DemandStore and MessageStore. It backs tests
// and local development without a database; the compare-and-set guard runs
// under a single mutex so its semantics match the conditional UPDATE of the
// postgres store.
type MemoryStore struct {
	mu       sync.RWMutex
	requests map[string]schema.NecessityRequest
	messages []schema.Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		requests: make(map[string]schema.NecessityRequest),
	}
}

func (s *MemoryStore) Ping() error {
	return nil
}

func (s *MemoryStore) CreateRequest(request *schema.NecessityRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	request.ID = uuid.New()
	request.Status = schema.RequestPending
	request.CreatedAt = time.Now().UTC()

	s.requests[request.ID.String()] = *request
	return nil
}

func (s *MemoryStore) GetRequest(id string) (*schema.NecessityRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.requests[id]
	if !ok {
		return nil, ErrRequestNotFound
	}
	return &r, nil
}

func (s *MemoryStore) ListRequests() ([]schema.NecessityRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(schema.NecessityRequest) bool { return true }), nil
}

func (s *MemoryStore) ListByConsumer(consumerID string) ([]schema.NecessityRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(r schema.NecessityRequest) bool {
		return r.ConsumerID == consumerID
	}), nil
}

func (s *MemoryStore) ListAcceptedBy(actorID string, statuses []schema.RequestStatus) ([]schema.NecessityRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(r schema.NecessityRequest) bool {
		if r.AcceptedBy != actorID {
			return false
		}
		for _, status := range statuses {
			if r.Status == status {
				return true
			}
		}
		return false
	}), nil
}

func (s *MemoryStore) ListActive() ([]schema.NecessityRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.collect(func(r schema.NecessityRequest) bool {
		return r.Status == schema.RequestPending || r.Status == schema.RequestAccepted
	}), nil
}

// collect returns matching requests newest first. Callers must hold mu.
func (s *MemoryStore) collect(match func(schema.NecessityRequest) bool) []schema.NecessityRequest {
	requests := make([]schema.NecessityRequest, 0)
	for _, r := range s.requests {
		if match(r) {
			requests = append(requests, r)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests
}

func (s *MemoryStore) CompareAndSetStatus(id string, expected schema.RequestStatus, change StatusChange) (*schema.NecessityRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.requests[id]
	if !ok {
		return nil, ErrRequestNotFound
	}
	if r.Status != expected {
		return nil, ErrStatusConflict
	}

	r.Status = change.Status
	if change.AcceptedBy != "" {
		r.AcceptedBy = change.AcceptedBy
		r.DeliveryTime = change.DeliveryTime
	}
	s.requests[id] = r

	return &r, nil
}

func (s *MemoryStore) AppendMessage(message *schema.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	message.ID = primitive.NewObjectID()
	message.CreatedAt = time.Now().UTC()
	message.Read = false

	s.messages = append(s.messages, *message)
	return nil
}

func (s *MemoryStore) ListMessagesByRequest(requestID string) ([]schema.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]schema.Message, 0)
	for _, msg := range s.messages {
		if msg.RequestID == requestID {
			messages = append(messages, msg)
		}
	}
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (s *MemoryStore) MarkMessagesRead(requestID, receiverID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.messages {
		if s.messages[i].RequestID == requestID && s.messages[i].ReceiverID == receiverID {
			s.messages[i].Read = true
		}
	}
	return nil
}
