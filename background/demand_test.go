package background

import (
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/anjith1/harvest-demand-link/api/mocks"
	"github.com/anjith1/harvest-demand-link/demand"
	"github.com/anjith1/harvest-demand-link/schema"
)

type stubNotificationCenter struct {
	accounts    []string
	templateIDs []string
	data        []map[string]interface{}
}

func (s *stubNotificationCenter) NotifyAccountByText(accountNumber string, headings, contents map[string]string, data map[string]interface{}) error {
	return nil
}

func (s *stubNotificationCenter) NotifyAccountsByTemplate(accountNumbers []string, templateID string, data map[string]interface{}) error {
	s.accounts = append(s.accounts, accountNumbers...)
	s.templateIDs = append(s.templateIDs, templateID)
	s.data = append(s.data, data)
	return nil
}

func testManager(demandMock *mocks.MockDemandStore, mongoMock *mocks.MockMongoStore, notification *stubNotificationCenter) *BackgroundManager {
	return &BackgroundManager{
		store:        demandMock,
		mongo:        mongoMock,
		notification: notification,
	}
}

func TestBroadcastNewRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	demandMock := mocks.NewMockDemandStore(ctl)
	mongoMock := mocks.NewMockMongoStore(ctl)
	notification := &stubNotificationCenter{}
	m := testManager(demandMock, mongoMock, notification)

	request := &schema.NecessityRequest{
		ID: uuid.New(),
		Items: schema.RequestItems{
			{Name: "Rice", Quantity: 10, Unit: "kg"},
			{Name: "Maize", Quantity: 5, Unit: "kg"},
		},
		Status: schema.RequestPending,
		Location: schema.Location{
			Latitude:  27.70,
			Longitude: 85.30,
		},
	}

	demandMock.EXPECT().
		GetRequest(gomock.Eq(request.ID.String())).
		Return(request, nil)
	mongoMock.EXPECT().
		NearbyFarmerAccounts(request.Location.Latitude, request.Location.Longitude, demand.ClusterRadiusKm).
		Return([]string{"farmer-1", "farmer-2"}, nil)

	err := m.BroadcastNewRequest(request.ID.String())
	assert.NoError(t, err)

	assert.Equal(t, []string{"farmer-1", "farmer-2"}, notification.accounts)
	assert.Equal(t, []string{BROADCAST_NEW_REQUEST}, notification.templateIDs)
	assert.Equal(t, "Rice, Maize", notification.data[0]["items"])
	assert.Equal(t, request.ID.String(), notification.data[0]["request_id"])
}

func TestBroadcastNewRequestWithoutNearbyFarmers(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	demandMock := mocks.NewMockDemandStore(ctl)
	mongoMock := mocks.NewMockMongoStore(ctl)
	notification := &stubNotificationCenter{}
	m := testManager(demandMock, mongoMock, notification)

	request := &schema.NecessityRequest{
		ID:     uuid.New(),
		Items:  schema.RequestItems{{Name: "Rice", Quantity: 10, Unit: "kg"}},
		Status: schema.RequestPending,
		Location: schema.Location{
			Latitude:  27.70,
			Longitude: 85.30,
		},
	}

	demandMock.EXPECT().
		GetRequest(gomock.Eq(request.ID.String())).
		Return(request, nil)
	mongoMock.EXPECT().
		NearbyFarmerAccounts(request.Location.Latitude, request.Location.Longitude, demand.ClusterRadiusKm).
		Return([]string{}, nil)

	err := m.BroadcastNewRequest(request.ID.String())
	assert.NoError(t, err)

	assert.Empty(t, notification.templateIDs)
}

func TestNotifyRequestAccepted(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	demandMock := mocks.NewMockDemandStore(ctl)
	mongoMock := mocks.NewMockMongoStore(ctl)
	notification := &stubNotificationCenter{}
	m := testManager(demandMock, mongoMock, notification)

	request := &schema.NecessityRequest{
		ID:         uuid.New(),
		ConsumerID: "consumer-1",
		Items:      schema.RequestItems{{Name: "Rice", Quantity: 10, Unit: "kg"}},
		Status:     schema.RequestAccepted,
		AcceptedBy: "farmer-1",
	}

	demandMock.EXPECT().
		GetRequest(gomock.Eq(request.ID.String())).
		Return(request, nil)

	err := m.NotifyRequestAccepted(request.ID.String())
	assert.NoError(t, err)

	assert.Equal(t, []string{"consumer-1"}, notification.accounts)
	assert.Equal(t, []string{NOTIFY_REQUEST_ACCEPTED}, notification.templateIDs)
	assert.Equal(t, "Rice", notification.data[0]["items"])
}

func TestNotifyNewMessage(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	notification := &stubNotificationCenter{}
	m := testManager(nil, nil, notification)

	err := m.NotifyNewMessage("request-1", "farmer-1")
	assert.NoError(t, err)

	assert.Equal(t, []string{"farmer-1"}, notification.accounts)
	assert.Equal(t, []string{NOTIFY_NEW_MESSAGE}, notification.templateIDs)
}
