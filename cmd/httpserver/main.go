package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/SeaCloudHub/enquiry/adapters/event"
	"github.com/SeaCloudHub/enquiry/adapters/event/listeners"
	"github.com/SeaCloudHub/enquiry/adapters/httpserver"
	"github.com/SeaCloudHub/enquiry/adapters/notificationhub"
	"github.com/SeaCloudHub/enquiry/adapters/postgrestore"
	"github.com/SeaCloudHub/enquiry/adapters/redisstore"
	"github.com/SeaCloudHub/enquiry/adapters/services"
	"github.com/SeaCloudHub/enquiry/domain"
	"github.com/SeaCloudHub/enquiry/domain/customer"
	"github.com/SeaCloudHub/enquiry/pkg/config"
	"github.com/SeaCloudHub/enquiry/pkg/logger"
	"github.com/SeaCloudHub/enquiry/pkg/sentry"
	sentrygo "github.com/getsentry/sentry-go"
)

// @title Customer Enquiry APIs
// @version 1.0

// @BasePath /api
// @schemes http https

// @description Customer and transaction enquiry API.
func main() {
	applog, err := logger.NewAppLogger()
	if err != nil {
		log.Fatalf("cannot load config: %v\n", err)
	}
	defer logger.Sync(applog)

	cfg, err := config.LoadConfig()
	if err != nil {
		applog.Fatal(err)
	}

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		applog.Fatalf("cannot init sentry: %v", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := postgrestore.NewConnection(postgrestore.ParseFromConfig(cfg))
	if err != nil {
		applog.Fatal(err)
	}
	defer db.Close()

	gdb, err := postgrestore.NewGorm(db, cfg.Debug)
	if err != nil {
		applog.Fatal(err)
	}

	// event bus
	dispatcher := event.NewEventDispatcher()
	registerListeners(dispatcher, listeners.NewLoggingListener(applog))

	// store adapters
	customerStore := postgrestore.NewCustomerStore(db)
	var readStore customer.Store = customerStore

	// redis store
	if cfg.Redis.Addr != "" {
		redis, err := redisstore.NewConnection(redisstore.ParseFromConfig(cfg))
		if err != nil {
			applog.Fatal(err)
		}
		defer redis.Close()

		cache := redisstore.NewCustomerCache(customerStore, redis, cfg.Redis.CacheTTL, applog)
		readStore = cache

		registerListeners(dispatcher,
			listeners.NewCacheEvictionListener(cache),
			listeners.NewPublishListener(redisstore.NewRedisClient(redis), cfg.Redis.EventChannel),
		)
	}

	// notification hub
	if cfg.NotificationHub.Endpoint != "" {
		hub, err := notificationhub.NewNotificationHub(cfg)
		if err != nil {
			applog.Fatal(err)
		}

		registerListeners(dispatcher, listeners.NewNotificationListener(hub))
	}

	server, err := httpserver.New(cfg, applog, func(s *httpserver.Server) error {
		s.CustomerStore = readStore
		s.MapperService = services.NewMapperService()
		s.CustomerService = services.NewCustomerService(
			postgrestore.NewCommitter(gdb), dispatcher, customerStore)

		return nil
	})
	if err != nil {
		applog.Fatal(err)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	applog.Infow("server started!", "addr", addr)
	applog.Fatal(http.ListenAndServe(addr, server))
}

func registerListeners(bus domain.EventBus, ls ...listeners.EventListener) {
	for _, name := range customer.EventNames {
		for _, l := range ls {
			bus.Register(name, l.EventHandler)
		}
	}
}
