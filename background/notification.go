package background

import (
	"context"

	"github.com/anjith1/harvest-demand-link/external/onesignal"
)

const alertChannelID = "important_alert"

// onesignal caps a request at 200 filter entries; with OR separators
// that leaves room for 100 account tags per request
const accountFilterBatch = 100

type NotificationCenter interface {
	NotifyAccountByText(accountNumber string, headings, contents map[string]string, data map[string]interface{}) error
	NotifyAccountsByTemplate(accountNumbers []string, templateID string, data map[string]interface{}) error
}

func accountTagFilter(accountNumber string) map[string]string {
	return map[string]string{
		"field":    "tag",
		"key":      "account_number",
		"relation": "=",
		"value":    accountNumber,
	}
}

// batchAccountFilters turns account numbers into OR-joined tag filter
// groups of at most accountFilterBatch accounts each.
func batchAccountFilters(accountNumbers []string) [][]map[string]string {
	batches := [][]map[string]string{}
	filters := []map[string]string{}

	for i, a := range accountNumbers {
		if i%accountFilterBatch == 0 {
			if len(filters) > 0 {
				batches = append(batches, filters)
			}
			filters = []map[string]string{accountTagFilter(a)}
			continue
		}
		filters = append(filters, map[string]string{"operator": "OR"}, accountTagFilter(a))
	}

	// a request without filters would go out to every subscribed player
	if len(filters) == 0 {
		return batches
	}

	return append(batches, filters)
}

type OnesignalNotificationCenter struct {
	appID  string
	client *onesignal.OneSignalClient
}

func NewOnesignalNotificationCenter(appID string, client *onesignal.OneSignalClient) *OnesignalNotificationCenter {
	return &OnesignalNotificationCenter{
		appID:  appID,
		client: client,
	}
}

// NotifyAccountByText pushes raw headings and contents to one account.
func (o *OnesignalNotificationCenter) NotifyAccountByText(accountNumber string, headings, contents map[string]string, data map[string]interface{}) error {
	req := &onesignal.NotificationRequest{
		AppID:          o.appID,
		Headings:       headings,
		Contents:       contents,
		Filters:        []map[string]string{accountTagFilter(accountNumber)},
		Data:           data,
		LocalChannelID: alertChannelID,
	}
	return o.client.SendNotification(context.Background(), req)
}

// NotifyAccountsByTemplate fans a template notification out to many
// accounts, batching the tag filters to stay under the onesignal limit.
func (o *OnesignalNotificationCenter) NotifyAccountsByTemplate(accountNumbers []string, templateID string, data map[string]interface{}) error {
	for _, filters := range batchAccountFilters(accountNumbers) {
		req := &onesignal.NotificationRequest{
			AppID:          o.appID,
			TemplateID:     templateID,
			Filters:        filters,
			Data:           data,
			LocalChannelID: alertChannelID,
		}
		if err := o.client.SendNotification(context.Background(), req); err != nil {
			return err
		}
	}
	return nil
}
