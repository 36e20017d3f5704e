package store

import (
	"fmt"

	"github.com/anjith1/harvest-demand-link/schema"
)

var (
	ErrRequestNotFound = fmt.Errorf("request not found")
	ErrStatusConflict  = fmt.Errorf("request status has already changed")
)

// StatusChange carries the fields written by a lifecycle transition.
// AcceptedBy and DeliveryTime are only set by the accepting transition and
// are never overwritten afterwards.
type StatusChange struct {
	Status       schema.RequestStatus
	AcceptedBy   string
	DeliveryTime string
}

// DemandStore is the persistence port for necessity requests. The lifecycle
// controller is the only writer; everything else reads snapshots.
type DemandStore interface {
	Ping() error

	// CreateRequest assigns an id and creation time and persists the request.
	CreateRequest(request *schema.NecessityRequest) error
	GetRequest(id string) (*schema.NecessityRequest, error)
	ListRequests() ([]schema.NecessityRequest, error)
	ListByConsumer(consumerID string) ([]schema.NecessityRequest, error)
	ListAcceptedBy(actorID string, statuses []schema.RequestStatus) ([]schema.NecessityRequest, error)
	ListActive() ([]schema.NecessityRequest, error)

	// CompareAndSetStatus applies change only if the stored status still
	// equals expected at the instant of the write. It returns
	// ErrStatusConflict when another transition won the race and
	// ErrRequestNotFound for an unknown id. This single conditional write
	// is what guarantees at most one farmer wins a contested accept.
	CompareAndSetStatus(id string, expected schema.RequestStatus, change StatusChange) (*schema.NecessityRequest, error)
}

// MessageStore is the persistence port for request conversation threads.
type MessageStore interface {
	AppendMessage(message *schema.Message) error
	ListMessagesByRequest(requestID string) ([]schema.Message, error)
	MarkMessagesRead(requestID, receiverID string) error
}
