package bootstrap

import (
	"context"
	"log"
	"time"

	"musichub-be/internal/config"
	"musichub-be/internal/controller"
	"musichub-be/internal/pkg/logger"
	"musichub-be/internal/pkg/serverutils"
	"musichub-be/internal/repository/unitofwork"
	"musichub-be/internal/service"
	"musichub-be/pkg/cache"
	pktNats "musichub-be/pkg/nats"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController    controller.INoteController
	CatalogController controller.ICatalogController

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	c := &Container{Logger: sysLogger}

	// 2. Infrastructure
	lookupCache, cacheType := newLookupCache(cfg.Cache, c)

	// a nil interface, not a nil *Publisher, keeps events off
	var eventPublisher service.EventPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Services
	noteService := service.NewNoteService(uowFactory, eventPublisher, sysLogger)
	catalogService := service.NewCatalogService(uowFactory, lookupCache, cacheType, sysLogger)

	// 4. Controllers
	authorize := serverutils.JwtMiddleware(cfg.Auth.JwtSecret)
	c.NoteController = controller.NewNoteController(noteService, authorize, sysLogger)
	c.CatalogController = controller.NewCatalogController(catalogService, sysLogger)

	return c
}

// Close releases external connections and flushes the logger.
func (c *Container) Close() {
	for _, closeFn := range c.closers {
		closeFn()
	}
	_ = c.Logger.Sync()
}

// newLookupCache picks the shared Redis cache when configured and reachable,
// and the in-process cache otherwise.
func newLookupCache(cfg config.CacheConfig, c *Container) (cache.Cache, string) {
	if cfg.Driver == "redis" {
		rdb := cache.NewRedisClient(cfg.RedisURL)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if _, err := rdb.Ping(ctx).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to memory cache", err)
			_ = rdb.Close()
		} else {
			c.closers = append(c.closers, func() { closeRedis(rdb) })
			return cache.NewRedisCache(rdb, cfg.TTL), "redis"
		}
	}
	return cache.NewMemoryCache(cfg.TTL), "memory"
}

func closeRedis(rdb *redis.Client) {
	if err := rdb.Close(); err != nil {
		log.Printf("[WARN] Failed to close Redis client: %v", err)
	}
}
