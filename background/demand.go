package background

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/anjith1/harvest-demand-link/demand"
	"github.com/anjith1/harvest-demand-link/utils"
)

const (
	BROADCAST_NEW_REQUEST   = "1f9c6d7a-33fd-44a5-9f42-0b6f1f1f3f01"
	NOTIFY_REQUEST_ACCEPTED = "c4a3fbd1-8b0e-4f2f-97ad-3fb1f29c8e02"
	NOTIFY_NEW_MESSAGE      = "7d2c5a90-5f7e-45c1-8c22-6a90d1d3bb03"
)

var log = logrus.WithField("prefix", "background")

// BroadcastNewRequest is a background job to notify the farmers around a
// freshly submitted necessity request
func (m *BackgroundManager) BroadcastNewRequest(requestID string) error {
	request, err := m.store.GetRequest(requestID)
	if err != nil {
		return err
	}

	accountNumbers, err := m.mongo.NearbyFarmerAccounts(
		request.Location.Latitude,
		request.Location.Longitude,
		demand.ClusterRadiusKm,
	)
	if err != nil {
		return err
	}

	if len(accountNumbers) == 0 {
		log.WithField("request_id", requestID).Info("no farmers nearby to notify")
		return nil
	}

	// make sure every farmer in reach has a demand alert workflow running
	if m.cadenceClient != nil {
		if err := utils.TriggerDemandAlert(*m.cadenceClient, context.Background(), accountNumbers); err != nil {
			log.WithError(err).Error("trigger demand alert workflows")
		}
	}

	return m.notification.NotifyAccountsByTemplate(accountNumbers, BROADCAST_NEW_REQUEST, map[string]interface{}{
		"notification_type": "BROADCAST_NEW_REQUEST",
		"request_id":        requestID,
		"items":             CommaSeparatedItems(request.Items),
	})
}

// NotifyRequestAccepted is a background job to tell a consumer their
// request was taken by a farmer
func (m *BackgroundManager) NotifyRequestAccepted(requestID string) error {
	request, err := m.store.GetRequest(requestID)
	if err != nil {
		return err
	}

	return m.notification.NotifyAccountsByTemplate([]string{request.ConsumerID}, NOTIFY_REQUEST_ACCEPTED, map[string]interface{}{
		"notification_type": "NOTIFY_REQUEST_ACCEPTED",
		"request_id":        requestID,
		"items":             CommaSeparatedItems(request.Items),
	})
}

// NotifyNewMessage is a background job to tell the other party of a thread
// that a new message arrived
func (m *BackgroundManager) NotifyNewMessage(requestID, receiverID string) error {
	return m.notification.NotifyAccountsByTemplate([]string{receiverID}, NOTIFY_NEW_MESSAGE, map[string]interface{}{
		"notification_type": "NOTIFY_NEW_MESSAGE",
		"request_id":        requestID,
	})
}
