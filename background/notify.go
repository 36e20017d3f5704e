package background

import (
	"context"

	"github.com/spf13/viper"

	"github.com/anjith1/harvest-demand-link/external/onesignal"
)

// OneSignalLanguageCode maps onesignal language codes to i18n bundle codes
var OneSignalLanguageCode = map[string]string{
	"en": "en",
	"ne": "ne",
}

// NotifyAccountByText sends raw headings, contents and data to one account
func (b *Background) NotifyAccountByText(accountNumber string, headings, contents map[string]string, data map[string]interface{}) error {
	req := &onesignal.NotificationRequest{
		AppID:          viper.GetString("onesignal.appid"),
		Headings:       headings,
		Contents:       contents,
		Filters:        []map[string]string{accountTagFilter(accountNumber)},
		Data:           data,
		LocalChannelID: alertChannelID,
	}
	return b.Onesignal.SendNotification(context.Background(), req)
}
