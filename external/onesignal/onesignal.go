package onesignal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	logPrefix = "onesignal"
	apiURL    = "https://onesignal.com/api/v1/notifications"
)

// ErrAllPlayersNotSubscribed is returned when every targeted device has
// unsubscribed. Callers normally treat it as a warning, not a failure.
var ErrAllPlayersNotSubscribed = fmt.Errorf("all included players are not subscribed")

func IsErrAllPlayersNotSubscribed(err error) bool {
	return err == ErrAllPlayersNotSubscribed
}

// NotificationRequest is the payload of a onesignal notification creation.
// Either TemplateID or Headings/Contents must be present.
type NotificationRequest struct {
	AppID          string                 `json:"app_id"`
	TemplateID     string                 `json:"template_id,omitempty"`
	Headings       map[string]string      `json:"headings,omitempty"`
	Contents       map[string]string      `json:"contents,omitempty"`
	Filters        []map[string]string    `json:"filters,omitempty"`
	Data           map[string]interface{} `json:"data,omitempty"`
	LocalChannelID string                 `json:"android_channel_id,omitempty"`
}

type OneSignalClient struct {
	client *http.Client
	apiKey string
}

func NewClient(client *http.Client) *OneSignalClient {
	return &OneSignalClient{
		client: client,
		apiKey: viper.GetString("onesignal.key"),
	}
}

// SendNotification submits a notification creation request.
func (c *OneSignalClient) SendNotification(ctx context.Context, notification *NotificationRequest) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Basic %s", c.apiKey))

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := ioutil.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Error("send notification")
		return fmt.Errorf("onesignal responded with status %d", resp.StatusCode)
	}

	var result struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(respBody, &result); err == nil {
		for _, e := range result.Errors {
			if e == "All included players are not subscribed" {
				return ErrAllPlayersNotSubscribed
			}
		}
	}

	return nil
}
