package background

import (
	"errors"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anjith1/harvest-demand-link/external/cadence"
	"github.com/anjith1/harvest-demand-link/external/onesignal"
	"github.com/anjith1/harvest-demand-link/store"
)

// BackgroundManager runs the queue-driven notification jobs of the demand
// matching service
type BackgroundManager struct {
	store store.DemandStore
	mongo store.MongoStore

	notification NotificationCenter

	cadenceClient *cadence.CadenceClient

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	o := onesignal.NewClient(&http.Client{
		Timeout: 15 * time.Second,
	})

	return &BackgroundManager{
		store: store.NewHarvestStore(ormDB),
		mongo: store.NewMongoStore(
			mongoClient,
			viper.GetString("mongo.database"),
		),
		notification:  NewOnesignalNotificationCenter(viper.GetString("onesignal.appid"), o),
		cadenceClient: cadence.NewClient(),
		taskServer:    taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("harvest-worker", 5)
	return m.worker.Launch()
}
