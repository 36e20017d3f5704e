package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/anjith1/harvest-demand-link/schema"
)

// HarvestStore is the postgres-backed DemandStore.
type HarvestStore struct {
	ormDB *gorm.DB
}

func NewHarvestStore(ormDB *gorm.DB) *HarvestStore {
	return &HarvestStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *HarvestStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// CreateRequest persists a new necessity request in pending state
func (s *HarvestStore) CreateRequest(request *schema.NecessityRequest) error {
	request.ID = uuid.New()
	request.Status = schema.RequestPending
	request.CreatedAt = time.Now().UTC()

	return s.ormDB.Create(request).Error
}

func (s *HarvestStore) GetRequest(id string) (*schema.NecessityRequest, error) {
	var r schema.NecessityRequest
	if err := s.ormDB.Where("id = ?", id).First(&r).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &r, nil
}

// ListRequests returns every request, newest first. This backs the
// consumer-side map feed.
func (s *HarvestStore) ListRequests() ([]schema.NecessityRequest, error) {
	requests := []schema.NecessityRequest{}
	if err := s.ormDB.Order("created_at desc").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *HarvestStore) ListByConsumer(consumerID string) ([]schema.NecessityRequest, error) {
	requests := []schema.NecessityRequest{}
	if err := s.ormDB.
		Where("consumer_id = ?", consumerID).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *HarvestStore) ListAcceptedBy(actorID string, statuses []schema.RequestStatus) ([]schema.NecessityRequest, error) {
	states := make([]string, 0, len(statuses))
	for _, status := range statuses {
		states = append(states, string(status))
	}

	requests := []schema.NecessityRequest{}
	if err := s.ormDB.Raw(
		`SELECT * FROM necessity_requests
		WHERE accepted_by = ? AND status = ANY(?::text[])
		ORDER BY created_at DESC;`,
		actorID,
		pq.Array(states),
	).Scan(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// ListActive returns the requests that still carry demand, i.e. pending and
// accepted ones. Rejected and fulfilled requests are excluded from all
// demand signals.
func (s *HarvestStore) ListActive() ([]schema.NecessityRequest, error) {
	requests := []schema.NecessityRequest{}
	if err := s.ormDB.
		Where("status IN (?)", []schema.RequestStatus{schema.RequestPending, schema.RequestAccepted}).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// CompareAndSetStatus updates the status of a request only when its current
// status matches the expected one. The guard runs inside the UPDATE itself,
// so a transition that lost a race fails instead of silently overwriting
// the winner.
func (s *HarvestStore) CompareAndSetStatus(id string, expected schema.RequestStatus, change StatusChange) (*schema.NecessityRequest, error) {
	updates := map[string]interface{}{
		"status": change.Status,
	}
	if change.AcceptedBy != "" {
		updates["accepted_by"] = change.AcceptedBy
		updates["delivery_time"] = change.DeliveryTime
	}

	result := s.ormDB.Model(schema.NecessityRequest{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		// either the request is unknown or its status moved on; look at
		// the row to tell the two apart
		if _, err := s.GetRequest(id); err != nil {
			return nil, err
		}
		return nil, ErrStatusConflict
	}

	return s.GetRequest(id)
}
