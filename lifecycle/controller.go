package lifecycle

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/anjith1/harvest-demand-link/geo"
	"github.com/anjith1/harvest-demand-link/schema"
	"github.com/anjith1/harvest-demand-link/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "lifecycle")
}

var (
	ErrNoItems           = fmt.Errorf("at least one item is required")
	ErrInvalidItem       = fmt.Errorf("item name and a positive quantity are required")
	ErrInvalidUrgency    = fmt.Errorf("urgency must be low, medium or high")
	ErrEmptyTimeNeeded   = fmt.Errorf("time needed is required")
	ErrEmptyDeliveryTime = fmt.Errorf("delivery time is required")
	ErrInvalidTransition = fmt.Errorf("request is not in a state that allows this transition")
	ErrNotAcceptedFarmer = fmt.Errorf("only the accepting farmer can fulfill the request")
)

// CreateParams is a validated-upstream necessity request submission. The
// controller re-checks the domain invariants anyway before anything is
// persisted.
type CreateParams struct {
	ConsumerID   string
	ConsumerName string
	Items        []schema.RequestItem
	Urgency      string
	TimeNeeded   string
	Location     schema.Location
}

// Controller owns every mutation of a necessity request. All status
// transitions go through the store's compare-and-set primitive, so a
// transition that lost a race surfaces store.ErrStatusConflict instead of
// overwriting the winner. The controller never retries a conflict; the
// caller re-fetches and decides.
type Controller struct {
	store store.DemandStore
}

func NewController(s store.DemandStore) *Controller {
	return &Controller{
		store: s,
	}
}

// CreateRequest validates and persists a new pending request.
func (ctl *Controller) CreateRequest(params CreateParams) (*schema.NecessityRequest, error) {
	if len(params.Items) == 0 {
		return nil, ErrNoItems
	}
	for _, item := range params.Items {
		if item.Name == "" || item.Quantity <= 0 {
			return nil, ErrInvalidItem
		}
	}

	urgency, ok := schema.ParseUrgency(strings.ToLower(params.Urgency))
	if !ok {
		return nil, ErrInvalidUrgency
	}

	if strings.TrimSpace(params.TimeNeeded) == "" {
		return nil, ErrEmptyTimeNeeded
	}

	if err := geo.Validate(params.Location); err != nil {
		return nil, err
	}

	request := &schema.NecessityRequest{
		ConsumerID:   params.ConsumerID,
		ConsumerName: params.ConsumerName,
		Items:        params.Items,
		Urgency:      urgency,
		TimeNeeded:   params.TimeNeeded,
		Location:     params.Location,
	}

	if err := ctl.store.CreateRequest(request); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"request_id":  request.ID,
		"consumer_id": request.ConsumerID,
	}).Info("created necessity request")

	return request, nil
}

// Accept moves a pending request to accepted and commits the acting farmer
// as its accepter. Exactly one of any number of concurrent accepts wins;
// the rest get store.ErrStatusConflict.
func (ctl *Controller) Accept(requestID, actorID, deliveryTime string) (*schema.NecessityRequest, error) {
	if strings.TrimSpace(deliveryTime) == "" {
		return nil, ErrEmptyDeliveryTime
	}

	request, err := ctl.store.CompareAndSetStatus(requestID, schema.RequestPending, store.StatusChange{
		Status:       schema.RequestAccepted,
		AcceptedBy:   actorID,
		DeliveryTime: deliveryTime,
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"request_id":  requestID,
		"accepted_by": actorID,
	}).Info("request accepted")

	return request, nil
}

// Reject moves a pending request to its rejected terminal state. Any
// farmer may reject; nothing else about the request changes.
func (ctl *Controller) Reject(requestID, actorID string) (*schema.NecessityRequest, error) {
	request, err := ctl.store.CompareAndSetStatus(requestID, schema.RequestPending, store.StatusChange{
		Status: schema.RequestRejected,
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"request_id": requestID,
		"actor_id":   actorID,
	}).Info("request rejected")

	return request, nil
}

// Fulfill moves an accepted request to fulfilled. Only the farmer who
// accepted it may fulfill it.
func (ctl *Controller) Fulfill(requestID, actorID string) (*schema.NecessityRequest, error) {
	request, err := ctl.store.GetRequest(requestID)
	if err != nil {
		return nil, err
	}

	if request.Status != schema.RequestAccepted {
		return nil, ErrInvalidTransition
	}
	if request.AcceptedBy != actorID {
		return nil, ErrNotAcceptedFarmer
	}

	request, err = ctl.store.CompareAndSetStatus(requestID, schema.RequestAccepted, store.StatusChange{
		Status: schema.RequestFulfilled,
	})
	if err != nil {
		return nil, err
	}

	log.WithField("request_id", requestID).Info("request fulfilled")

	return request, nil
}

// Get returns a single request.
func (ctl *Controller) Get(requestID string) (*schema.NecessityRequest, error) {
	return ctl.store.GetRequest(requestID)
}

// ListAll returns every request, newest first.
func (ctl *Controller) ListAll() ([]schema.NecessityRequest, error) {
	return ctl.store.ListRequests()
}

// ListByConsumer returns the requests a consumer submitted, newest first.
func (ctl *Controller) ListByConsumer(consumerID string) ([]schema.NecessityRequest, error) {
	return ctl.store.ListByConsumer(consumerID)
}

// ListAcceptedBy returns the accepted and fulfilled requests a farmer has
// committed to. This is a snapshot query, not guarded by the transition
// lock.
func (ctl *Controller) ListAcceptedBy(actorID string) ([]schema.NecessityRequest, error) {
	return ctl.store.ListAcceptedBy(actorID, []schema.RequestStatus{
		schema.RequestAccepted,
		schema.RequestFulfilled,
	})
}

// ListActive returns the requests still carrying demand, i.e. the input of
// clustering and ranking.
func (ctl *Controller) ListActive() ([]schema.NecessityRequest, error) {
	return ctl.store.ListActive()
}
