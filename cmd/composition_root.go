package cmd

import (
	"log/slog"

	httpin "tableorder/internal/adapters/in/http"
	"tableorder/internal/adapters/in/http/auth"
	"tableorder/internal/adapters/out/kafka"
	"tableorder/internal/adapters/out/postgres"
	redisout "tableorder/internal/adapters/out/redis"
	"tableorder/internal/core/application/usecases/commands"
	"tableorder/internal/core/application/usecases/queries"
	"tableorder/internal/core/domain/services"
	"tableorder/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB          *gorm.DB
	uowFactory      postgres.GormUnitOfWorkFactory
	notifier        *kafka.Notifier
	restaurantCache *redisout.RestaurantCache
	authorizer      *services.TransitionAuthorizer
	resolver        *auth.Resolver
	logger          *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisHost,
		Password: config.RedisPassword,
	})

	// The cache fronts the non-transactional restaurant reads; the unit of
	// work still serves them when a command reads inside a transaction.
	restaurantCache := redisout.NewRestaurantCache(
		redisClient,
		uowFactory.Create().RestaurantRepository(),
		config.RestaurantCacheTTL,
		logger,
	)

	return CompositionRoot{
		gormDB:          gormDB,
		uowFactory:      *uowFactory,
		notifier:        kafka.NewNotifier([]string{config.KafkaHost}, config.KafkaOrderCreatedTopic),
		restaurantCache: restaurantCache,
		authorizer:      services.NewTransitionAuthorizer(),
		resolver:        auth.NewResolver([]byte(config.JWTSecret)),
		logger:          logger,
	}
}

// cachedRestaurantUoW swaps the transactional restaurant repository for the
// Redis read-through cache. Restaurant data is read-only reference data here,
// so reading it outside the order transaction is safe.
type cachedRestaurantUoW struct {
	ports.UnitOfWork
	restaurants ports.RestaurantRepository
}

func (u cachedRestaurantUoW) RestaurantRepository() ports.RestaurantRepository {
	return u.restaurants
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return cachedRestaurantUoW{
			UnitOfWork:  c.uowFactory.Create(),
			restaurants: c.restaurantCache,
		}
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersForTableQueryHandler() queries.GetOrdersForTableQueryHandler {
	return queries.NewGetOrdersForTableQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersForRestaurantQueryHandler() queries.GetOrdersForRestaurantQueryHandler {
	return queries.NewGetOrdersForRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.resolver,
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderCommandHandler(),
		c.CreateGetOrdersForTableQueryHandler(),
		c.CreateGetOrdersForRestaurantQueryHandler(),
	)
}

// CloseNotifier releases the Kafka writer during shutdown.
func (c *CompositionRoot) CloseNotifier() error {
	return c.notifier.Close()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
