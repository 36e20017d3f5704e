package alert

import (
	"net/http"
	"time"

	"github.com/uber-go/tally"
	"go.uber.org/cadence/.gen/go/cadence/workflowserviceclient"
	"go.uber.org/cadence/activity"
	"go.uber.org/cadence/worker"
	"go.uber.org/cadence/workflow"
	"go.uber.org/zap"

	"github.com/anjith1/harvest-demand-link/background"
	"github.com/anjith1/harvest-demand-link/external/onesignal"
	"github.com/anjith1/harvest-demand-link/store"
)

const TaskListName = "harvest-demand-alert-tasks"

// AlertWorker runs the periodic per-farmer demand alert workflows. Each
// workflow watches the active requests around one farmer and pings them
// when a high priority cluster forms nearby.
type AlertWorker struct {
	background.Background
	domain  string
	demands store.DemandStore
	mongo   store.MongoStore
}

func NewAlertWorker(domain string, demands store.DemandStore, mongo store.MongoStore) *AlertWorker {
	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	b := background.Background{Onesignal: o}
	return &AlertWorker{
		Background: b,
		domain:     domain,
		demands:    demands,
		mongo:      mongo,
	}
}

func (a *AlertWorker) Register() {
	workflow.RegisterWithOptions(a.DemandAlertWorkflow, workflow.RegisterOptions{Name: "DemandAlertWorkflow"})

	activity.RegisterWithOptions(a.NearbyHighPriorityClustersActivity, activity.RegisterOptions{Name: "NearbyHighPriorityClustersActivity"})
	activity.RegisterWithOptions(a.NotifyDemandClustersActivity, activity.RegisterOptions{Name: "NotifyDemandClustersActivity"})
}

func (a *AlertWorker) Start(service workflowserviceclient.Interface, logger *zap.Logger) {
	// TaskListName identifies set of client workflows, activities, and workers.
	// It could be your group or client or application name.
	workerOptions := worker.Options{
		Logger:       logger,
		MetricsScope: tally.NewTestScope(TaskListName, map[string]string{}),
	}

	worker := worker.New(
		service,
		a.domain,
		TaskListName,
		workerOptions)

	if err := worker.Start(); err != nil {
		panic("Failed to start worker")
	}

	logger.Info("Started Worker.", zap.String("worker", TaskListName))

	select {}
}
