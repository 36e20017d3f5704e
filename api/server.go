package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/anjith1/harvest-demand-link/lifecycle"
	"github.com/anjith1/harvest-demand-link/logmodule"
	"github.com/anjith1/harvest-demand-link/messaging"
	"github.com/anjith1/harvest-demand-link/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.DemandStore
	mongoStore store.MongoStore

	// Domain services
	lifecycle *lifecycle.Controller
	thread    *messaging.Thread

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey

	// job pool enqueuer
	background *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundServer *machinery.Server,
	jwtKey *rsa.PrivateKey) *Server {
	demandStore := store.NewHarvestStore(ormDB)
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		store:         demandStore,
		mongoStore:    mongoStore,
		lifecycle:     lifecycle.NewController(demandStore),
		thread:        messaging.NewThread(demandStore, mongoStore),
		jwtPrivateKey: jwtKey,
		background:    backgroundServer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))

	apiRoute.POST("/auth", s.requestJWT)

	// api route other than `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.updateGeoPositionMiddleware)

	requestRoute := apiRoute.Group("/requests")
	{
		requestRoute.POST("", s.createRequest)
		requestRoute.GET("", s.listRequests)
		requestRoute.GET("/my-requests", s.myRequests)
		requestRoute.GET("/accepted", s.acceptedRequests)
		requestRoute.GET("/nearby", s.nearbyRequests)
		requestRoute.PATCH("/:requestID/accept", s.acceptRequest)
		requestRoute.PATCH("/:requestID/reject", s.rejectRequest)
		requestRoute.PATCH("/:requestID/fulfill", s.fulfillRequest)
	}

	messageRoute := apiRoute.Group("/messages")
	{
		messageRoute.POST("", s.sendMessage)
		messageRoute.GET("/request/:requestID", s.listMessages)
		messageRoute.PATCH("/read/:requestID", s.markMessagesRead)
	}

	apiRoute.GET("/clusters", s.demandClusters)

	// read-only cluster feed for the admin dashboard
	dashboardRoute := r.Group("/dashboard")
	dashboardRoute.Use(logmodule.Ginrus("Dashboard"))
	dashboardRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	dashboardRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.dashboard")))
	{
		dashboardRoute.GET("/clusters", s.demandClusters)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

// enqueue submits a background task and drops it with a log line when the
// broker is unreachable; notifications are best effort.
func (s *Server) enqueue(name string, args ...tasks.Arg) {
	if s.background == nil {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: name,
		Args: args,
	}); err != nil {
		log.WithError(err).WithField("task", name).Error("enqueue background task")
	}
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
