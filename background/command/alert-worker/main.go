package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	alertWorker "github.com/anjith1/harvest-demand-link/background/alert"
	cadence "github.com/anjith1/harvest-demand-link/external/cadence"
	"github.com/anjith1/harvest-demand-link/store"
	"github.com/anjith1/harvest-demand-link/utils"
)

var logger *zap.Logger

func init() {
	logger = buildLogger()
}

func buildLogger() *zap.Logger {
	config := zap.NewDevelopmentConfig()
	config.Level.SetLevel(zapcore.InfoLevel)

	var err error
	logger, err := config.Build()
	if err != nil {
		panic("Failed to setup logger")
	}

	return logger
}

func initSentry() {
	// Sentry
	logger.Info("Initializing sentry")
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		logger.Panic("fail to initialize sentry", zap.Error(err))
	}
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("harvest")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string
	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)
	initSentry()
	utils.InitI18NBundle()

	ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		logger.Panic("open postgres connection with error", zap.Error(err))
	}

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		logger.Panic("create mongo client with error", zap.Error(err))
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		logger.Panic("connect mongo database with error", zap.Error(err))
	}

	demandStore := store.NewHarvestStore(ormDB)
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	worker := alertWorker.NewAlertWorker(viper.GetString("cadence.domain"), demandStore, mongoStore)
	worker.Register()
	worker.Start(cadence.BuildCadenceServiceClient(viper.GetString("cadence.conn")), logger)
}
