package cmd

import (
	"log/slog"

	"sitebuilder/internal/adapters/out/jwtauth"
	"sitebuilder/internal/adapters/out/localblob"
	"sitebuilder/internal/adapters/out/postgres"
	"sitebuilder/internal/adapters/out/smtpnotify"
	"sitebuilder/internal/adapters/out/stripepay"
	"sitebuilder/internal/core/application/usecases/commands"
	"sitebuilder/internal/core/application/usecases/queries"
	"sitebuilder/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	authenticator ports.Authenticator
	payments      ports.PaymentProcessor
	notifier      ports.Notifier
	blobs         ports.BlobStore
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	authenticator, err := jwtauth.NewJWTAuthenticator(config.JWTSecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	payments, err := stripepay.NewStripePaymentProcessor(config.StripeSecretKey)
	if err != nil {
		return CompositionRoot{}, err
	}

	notifier, err := smtpnotify.NewSMTPNotifier(
		config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword, config.SMTPFrom,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	blobs, err := localblob.NewLocalBlobStore(config.BlobDir, config.BlobBaseURL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:        gormDB,
		uowFactory:    *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:        logger,
		authenticator: authenticator,
		payments:      payments,
		notifier:      notifier,
		blobs:         blobs,
	}, nil
}

func (c *CompositionRoot) Authenticator() ports.Authenticator {
	return c.authenticator
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.payments)
}

func (c *CompositionRoot) CreateChangeStatusCommandHandler() commands.ChangeStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeStatusCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateUpdateRequirementsCommandHandler() commands.UpdateRequirementsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRequirementsCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateAdminDetailsCommandHandler() commands.UpdateAdminDetailsCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateAdminDetailsCommandHandler(f)
}

func (c *CompositionRoot) CreateSetPaymentStatusCommandHandler() commands.SetPaymentStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetPaymentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateAddDeliveredFileCommandHandler() commands.AddDeliveredFileCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddDeliveredFileCommandHandler(f, c.blobs)
}

func (c *CompositionRoot) CreateRemindPastDueCommandHandler() commands.RemindPastDueCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemindPastDueCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory.Create().OrderRepository())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAdminListOrdersQueryHandler() queries.AdminListOrdersQueryHandler {
	return queries.NewAdminListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderStatsQueryHandler() queries.GetOrderStatsQueryHandler {
	return queries.NewGetOrderStatsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
