package alert

import (
	"time"

	"github.com/getsentry/sentry-go"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/anjith1/harvest-demand-link/background"
	"github.com/anjith1/harvest-demand-link/schema"
)

const (
	DemandCheckInterval = time.Hour
)

var activityOptions = workflow.ActivityOptions{
	ScheduleToStartTimeout: time.Minute,
	StartToCloseTimeout:    time.Minute,
	HeartbeatTimeout:       time.Second * 20,
}

// DemandAlertWorkflow periodically checks the demand clusters around a
// given farmer and notifies them when a high priority cluster is within
// reach
func (a *AlertWorker) DemandAlertWorkflow(ctx workflow.Context, accountNumber string) error {

	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	logger := workflow.GetLogger(ctx)

	selector := workflow.NewSelector(ctx)

	timerCancelCtx, _ := workflow.WithCancel(ctx)
	timerFuture := workflow.NewTimer(timerCancelCtx, DemandCheckInterval)
	selector.AddFuture(timerFuture, func(f workflow.Future) {
		logger.Info("Start periodical demand cluster check")
	})

	selector.Select(ctx)

	logger.Info("Check nearby demand clusters")
	clusters := make([]schema.Cluster, 0)
	err := workflow.ExecuteActivity(ctx, a.NearbyHighPriorityClustersActivity, accountNumber).Get(ctx, &clusters)
	if err != nil {
		if err.Error() == background.ErrStopRenewWorkflow.Error() {
			logger.Info("Stop demand alert renewal for farmer", zap.String("accountNumber", accountNumber))
			return nil
		}
		logger.Error("Fail to check demand clusters for farmer", zap.Error(err), zap.String("accountNumber", accountNumber))
		sentry.CaptureException(err)
		return workflow.NewContinueAsNewError(ctx, a.DemandAlertWorkflow, accountNumber)
	}

	if len(clusters) > 0 {
		err := workflow.ExecuteActivity(ctx, a.NotifyDemandClustersActivity, accountNumber, clusters).Get(ctx, nil)
		if err != nil {
			logger.Error("Fail to notify farmer", zap.Error(err))
			sentry.CaptureException(err)
			return workflow.NewContinueAsNewError(ctx, a.DemandAlertWorkflow, accountNumber)
		}
	}

	return workflow.NewContinueAsNewError(ctx, a.DemandAlertWorkflow, accountNumber)
}
