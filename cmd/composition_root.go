package cmd

import (
	"log/slog"
	"time"

	"tripmanager/internal/adapters/out/identity"
	"tripmanager/internal/adapters/out/notifications"
	"tripmanager/internal/adapters/out/postgres"
	"tripmanager/internal/core/application/usecases/commands"
	"tripmanager/internal/core/application/usecases/queries"
	"tripmanager/internal/core/ports"

	"gorm.io/gorm"
)

const defaultTokenTTL = 24 * time.Hour

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderDetailsCommandHandler() commands.UpdateOrderDetailsCommandHandler {
	return commands.NewUpdateOrderDetailsCommandHandler(c.createOrderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(
		c.createOrderUoWFactory(),
		c.CreateNotifier(),
		time.Now,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetOrderQueryHandler(uow.OrderRepository(), uow.UserRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewListOrdersQueryHandler(uow.OrderRepository(), uow.UserRepository())
}

func (c *CompositionRoot) CreateLoginQueryHandler() queries.LoginQueryHandler {
	return queries.NewLoginQueryHandler(c.CreateIdentityProvider())
}

func (c *CompositionRoot) CreateAuthedUserQueryHandler() queries.AuthedUserQueryHandler {
	return queries.NewAuthedUserQueryHandler(c.CreateIdentityProvider())
}

func (c *CompositionRoot) CreateListDestinationsQueryHandler() queries.ListDestinationsQueryHandler {
	return queries.NewListDestinationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountPendingOrdersQueryHandler() queries.CountPendingOrdersQueryHandler {
	return queries.NewCountPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateIdentityProvider() ports.IdentityProvider {
	return identity.NewJWTProvider(c.gormDB, c.configs.JWTSecret, c.tokenTTL())
}

func (c *CompositionRoot) CreateNotifier() ports.Notifier {
	cfg := notifications.Config{
		Host:     c.configs.SMTPHost,
		Port:     c.configs.SMTPPort,
		Username: c.configs.SMTPUsername,
		Password: c.configs.SMTPPassword,
		From:     c.configs.SMTPFrom,
	}
	return notifications.NewEmailNotifier(cfg, c.logger)
}

func (c *CompositionRoot) createOrderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tokenTTL() time.Duration {
	ttl, err := time.ParseDuration(c.configs.JWTTTL)
	if err != nil || ttl <= 0 {
		return defaultTokenTTL
	}
	return ttl
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
