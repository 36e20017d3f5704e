package alert

import (
	"context"
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/cadence/activity"
	"go.uber.org/zap"

	"github.com/anjith1/harvest-demand-link/background"
	"github.com/anjith1/harvest-demand-link/demand"
	"github.com/anjith1/harvest-demand-link/external/onesignal"
	"github.com/anjith1/harvest-demand-link/geo"
	"github.com/anjith1/harvest-demand-link/schema"
	"github.com/anjith1/harvest-demand-link/utils"
)

// NearbyHighPriorityClustersActivity computes the demand clusters over the
// active requests and returns the high priority ones within clustering
// range of the farmer's last reported position
func (a *AlertWorker) NearbyHighPriorityClustersActivity(ctx context.Context, accountNumber string) ([]schema.Cluster, error) {
	logger := activity.GetLogger(ctx)

	position, err := a.mongo.LastFarmerPosition(accountNumber)
	if err != nil {
		return nil, err
	}
	if position == nil {
		// a broadcast restarts the workflow once the farmer reports a
		// position again
		logger.Info("No known position for farmer", zap.String("accountNumber", accountNumber))
		return nil, background.ErrStopRenewWorkflow
	}

	requests, err := a.demands.ListActive()
	if err != nil {
		return nil, err
	}

	clusters, err := demand.ComputeClusters(requests)
	if err != nil {
		return nil, err
	}

	origin := schema.Location{
		Latitude:  position.Location.Coordinates[1],
		Longitude: position.Location.Coordinates[0],
	}

	nearby := make([]schema.Cluster, 0)
	for _, c := range clusters {
		if c.Priority != schema.ClusterPriorityHigh {
			continue
		}
		if geo.Distance(origin, c.Center) <= demand.ClusterRadiusKm {
			nearby = append(nearby, c)
		}
	}

	return nearby, nil
}

// DemandAlertMessage returns headings and contents in a map where its keys are languages
func DemandAlertMessage(clusters []schema.Cluster) (map[string]string, map[string]string, error) {
	headings := map[string]string{}
	contents := map[string]string{}

	if len(clusters) == 0 {
		return nil, nil, fmt.Errorf("no clusters in list")
	}

	top := clusters[0]

	for key, lang := range background.OneSignalLanguageCode {
		loc := utils.NewLocalizer(lang)

		// translate heading
		heading, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "notification.demand_alert.heading",
		})
		if err != nil {
			return nil, nil, err
		}

		headings[key] = heading

		// translate content
		content, err := loc.Localize(&i18n.LocalizeConfig{
			MessageID: "notification.demand_alert.content",
			TemplateData: map[string]interface{}{
				"Item":        top.Item,
				"Count":       top.MemberCount,
				"TotalDemand": fmt.Sprintf("%.0f", top.TotalDemand),
			},
		})
		if err != nil {
			return nil, nil, err
		}

		contents[key] = content
	}

	return headings, contents, nil
}

// NotifyDemandClustersActivity sends a demand alert to the farmer for the
// strongest cluster around them
func (a *AlertWorker) NotifyDemandClustersActivity(ctx context.Context, accountNumber string, clusters []schema.Cluster) error {
	logger := activity.GetLogger(ctx)

	logger.Info("Prepare the message context for demand alert", zap.Any("clusters", clusters))

	headings, contents, err := DemandAlertMessage(clusters)
	if err != nil {
		logger.Error("can not generate demand alert message", zap.Error(err))
		return err
	}

	items := make([]string, 0)
	for _, c := range clusters {
		items = append(items, c.Item)
	}

	if err := a.Background.NotifyAccountByText(accountNumber,
		headings, contents,
		map[string]interface{}{
			"notification_type": "DEMAND_ALERT",
			"items":             items,
		},
	); err != nil {
		if !onesignal.IsErrAllPlayersNotSubscribed(err) {
			return err
		} else {
			logger.Warn("account is not subscribed in onesignal", zap.String("accountNumber", accountNumber))
		}
	}

	return nil
}
